package codec

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects an optional whole-stream compression container for
// datasets at rest. The inner byte stream is always the raw dataset
// format; compression never changes the encode/decode contract, only the
// bytes that reach the file.
type Compression uint8

const (
	// CompressionNone stores the raw format directly (the default).
	CompressionNone Compression = iota
	// CompressionLZ4 wraps the stream in an LZ4 frame (fast).
	CompressionLZ4
	// CompressionZSTD wraps the stream in a zstd frame (better ratio).
	CompressionZSTD
)

// String returns the stable name of the compression scheme.
func (c Compression) String() string {
	switch c {
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return "none"
	}
}

// CompressionByExtension infers the compression container from a file
// name: ".lz4" and ".zst"/".zstd" select the matching frame format,
// anything else means the file holds the raw format.
func CompressionByExtension(name string) Compression {
	switch {
	case strings.HasSuffix(name, ".lz4"):
		return CompressionLZ4
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"):
		return CompressionZSTD
	default:
		return CompressionNone
	}
}

// NewCompressedWriter wraps w in the selected compression frame. The
// returned writer must be closed to flush the frame; closing it does not
// close w.
func NewCompressedWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	case CompressionZSTD:
		return zstd.NewWriter(w)
	default:
		return nil, fmt.Errorf("codec: unsupported compression %d", c)
	}
}

// NewCompressedReader wraps r in the matching decompressor.
func NewCompressedReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case CompressionZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	default:
		return nil, fmt.Errorf("codec: unsupported compression %d", c)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
