package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lshkit/datakit/matrix"
)

func TestCompressionByExtension(t *testing.T) {
	tests := []struct {
		name     string
		expected Compression
	}{
		{"points.bin", CompressionNone},
		{"points", CompressionNone},
		{"points.bin.lz4", CompressionLZ4},
		{"points.bin.zst", CompressionZSTD},
		{"points.bin.zstd", CompressionZSTD},
		{"s3://bucket/data/points.bin.zst", CompressionZSTD},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CompressionByExtension(tt.name), tt.name)
	}
}

func TestCompressedRoundTrip(t *testing.T) {
	m, err := matrix.New(4, 3, []float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
		10, 11, 12,
	})
	require.NoError(t, err)

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer

			w, err := NewCompressedWriter(&buf, c)
			require.NoError(t, err)
			require.NoError(t, Encode(w, m))
			require.NoError(t, w.Close())

			r, err := NewCompressedReader(bytes.NewReader(buf.Bytes()), c)
			require.NoError(t, err)
			defer r.Close()

			got, err := Decode[float32](r)
			require.NoError(t, err)
			assert.True(t, got.Equal(m))
		})
	}
}

func TestCompression_InnerStreamIsRawFormat(t *testing.T) {
	m, err := matrix.New(1, 2, []float32{1, 2})
	require.NoError(t, err)

	var raw bytes.Buffer
	require.NoError(t, Encode(&raw, m))

	var framed bytes.Buffer
	w, err := NewCompressedWriter(&framed, CompressionZSTD)
	require.NoError(t, err)
	require.NoError(t, Encode(w, m))
	require.NoError(t, w.Close())

	r, err := NewCompressedReader(bytes.NewReader(framed.Bytes()), CompressionZSTD)
	require.NoError(t, err)
	defer r.Close()

	var unframed bytes.Buffer
	_, err = unframed.ReadFrom(r)
	require.NoError(t, err)

	assert.Equal(t, raw.Bytes(), unframed.Bytes())
}
