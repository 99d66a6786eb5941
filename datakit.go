package datakit

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lshkit/datakit/arff"
	"github.com/lshkit/datakit/cluster"
	"github.com/lshkit/datakit/codec"
	"github.com/lshkit/datakit/matrix"
)

// GenerateFile generates a clustered dataset and writes it to dest in
// the binary dataset format. dest may be a local path or an object
// storage URL; a ".zst"/".lz4" extension selects the matching
// compression container.
func GenerateFile(ctx context.Context, cfg cluster.Config, dest string, opts ...Option) error {
	o := applyOptions(opts)

	m, err := cluster.Generate(cfg)
	if err != nil {
		o.logger.LogGenerate(ctx, cfg.Samples, cfg.Dims, cfg.Clusters, cfg.Seed, dest, err)
		return err
	}

	err = writeMatrix(ctx, m, dest, o)
	o.logger.LogGenerate(ctx, cfg.Samples, cfg.Dims, cfg.Clusters, cfg.Seed, dest, err)
	return err
}

// ConvertARFF imports an ARFF file from src and writes it to dest in the
// binary dataset format with element type T. dropLast discards the
// trailing column first, the usual treatment for a label column.
func ConvertARFF[T matrix.Element](ctx context.Context, src, dest string, dropLast bool, opts ...Option) error {
	o := applyOptions(opts)

	m, err := importARFF[T](ctx, src, dropLast)
	if err != nil {
		o.logger.LogConvert(ctx, src, dest, 0, 0, err)
		return err
	}

	err = writeMatrix(ctx, m, dest, o)
	o.logger.LogConvert(ctx, src, dest, m.Rows, m.Cols, err)
	return err
}

// ConvertAllARFF converts several ARFF files concurrently into destDir,
// naming each output after its input with the ".arff" suffix replaced by
// ".bin". The first failure cancels the remaining conversions.
func ConvertAllARFF[T matrix.Element](ctx context.Context, srcs []string, destDir string, dropLast bool, opts ...Option) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, src := range srcs {
		src := src
		g.Go(func() error {
			stem := strings.TrimSuffix(filepath.Base(src), ".arff")
			dest := filepath.Join(destDir, stem+".bin")
			return ConvertARFF[T](ctx, src, dest, dropLast, opts...)
		})
	}
	return g.Wait()
}

// Info describes a dataset file without loading its payload.
type Info struct {
	Rows uint32
	Cols uint32
	Kind codec.Kind
	// PayloadBytes is the payload size implied by the header and the
	// element kind supplied out of band.
	PayloadBytes uint64
}

// Describe reads only the shape header of a dataset file. kindName names
// the element type the file was written with; an unknown name fails with
// codec.ErrUnknownType.
func Describe(ctx context.Context, src, kindName string, opts ...Option) (Info, error) {
	o := applyOptions(opts)

	kind, err := codec.KindByName(kindName)
	if err != nil {
		o.logger.LogDescribe(ctx, src, 0, 0, err)
		return Info{}, err
	}

	store, name, err := resolveStore(ctx, src)
	if err != nil {
		return Info{}, err
	}

	rc, err := store.Open(ctx, name)
	if err != nil {
		o.logger.LogDescribe(ctx, src, 0, 0, err)
		return Info{}, err
	}
	defer rc.Close()

	dec, err := codec.NewCompressedReader(rc, o.compressionFor(src))
	if err != nil {
		return Info{}, err
	}
	defer dec.Close()

	rows, cols, err := codec.DecodeHeader(dec)
	o.logger.LogDescribe(ctx, src, rows, cols, err)
	if err != nil {
		return Info{}, err
	}

	return Info{
		Rows:         rows,
		Cols:         cols,
		Kind:         kind,
		PayloadBytes: uint64(rows) * uint64(cols) * uint64(kind.Size),
	}, nil
}

// ReadFile loads a full dataset file with element type T.
func ReadFile[T matrix.Element](ctx context.Context, src string, opts ...Option) (matrix.Matrix[T], error) {
	o := applyOptions(opts)

	store, name, err := resolveStore(ctx, src)
	if err != nil {
		return matrix.Matrix[T]{}, err
	}

	rc, err := store.Open(ctx, name)
	if err != nil {
		return matrix.Matrix[T]{}, err
	}
	defer rc.Close()

	dec, err := codec.NewCompressedReader(rc, o.compressionFor(src))
	if err != nil {
		return matrix.Matrix[T]{}, err
	}
	defer dec.Close()

	return codec.Decode[T](dec)
}

// writeMatrix encodes m, applies the compression container and hands the
// bytes to the destination store in one Put.
func writeMatrix[T matrix.Element](ctx context.Context, m matrix.Matrix[T], dest string, o options) error {
	var buf bytes.Buffer
	cw, err := codec.NewCompressedWriter(&buf, o.compressionFor(dest))
	if err != nil {
		return err
	}
	if err := codec.Encode(cw, m); err != nil {
		_ = cw.Close()
		return err
	}
	if err := cw.Close(); err != nil {
		return err
	}

	store, name, err := resolveStore(ctx, dest)
	if err != nil {
		return err
	}
	return store.Put(ctx, name, bytes.NewReader(buf.Bytes()), int64(buf.Len()))
}

// importARFF reads one ARFF source through the store abstraction.
func importARFF[T matrix.Element](ctx context.Context, src string, dropLast bool) (matrix.Matrix[T], error) {
	store, name, err := resolveStore(ctx, src)
	if err != nil {
		return matrix.Matrix[T]{}, err
	}

	rc, err := store.Open(ctx, name)
	if err != nil {
		return matrix.Matrix[T]{}, err
	}
	defer rc.Close()

	m, err := arff.Import[T](rc)
	if err != nil {
		return matrix.Matrix[T]{}, fmt.Errorf("importing %s: %w", src, err)
	}

	if dropLast {
		return matrix.DropLastColumn(m)
	}
	return m, nil
}
