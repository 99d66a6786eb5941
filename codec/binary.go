package codec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/lshkit/datakit/matrix"
)

// headerSize is the fixed byte length of the rows/cols header.
const headerSize = 8

// Encode writes m to w in the binary dataset format: the uint32 rows and
// cols header followed by the raw row-major payload, everything in host
// byte order with no padding or trailing metadata. A zero-row matrix
// encodes to a header-only stream of exactly 8 bytes.
func Encode[T matrix.Element](w io.Writer, m matrix.Matrix[T]) error {
	if m.Rows < 0 || m.Cols < 0 || len(m.Values) != m.Rows*m.Cols {
		return fmt.Errorf("%w: rows=%d cols=%d values=%d", ErrInvalidShape, m.Rows, m.Cols, len(m.Values))
	}
	if uint64(m.Rows) > math.MaxUint32 || uint64(m.Cols) > math.MaxUint32 {
		return fmt.Errorf("%w: rows=%d cols=%d", ErrTooLarge, m.Rows, m.Cols)
	}

	var hdr [headerSize]byte
	binary.NativeEndian.PutUint32(hdr[0:4], uint32(m.Rows))
	binary.NativeEndian.PutUint32(hdr[4:8], uint32(m.Cols))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}

	return writeRaw(w, m.Values)
}

// Decode reads a matrix of element type T from r. It fails with
// ErrTruncatedStream when fewer bytes are available than the header
// declares. The caller supplies T out of band; decoding with the wrong
// type silently reinterprets the payload, exactly like the consumers of
// the format do.
func Decode[T matrix.Element](r io.Reader) (matrix.Matrix[T], error) {
	rows, cols, err := DecodeHeader(r)
	if err != nil {
		return matrix.Matrix[T]{}, err
	}

	n := uint64(rows) * uint64(cols)
	var zero T
	elemSize := uint64(unsafe.Sizeof(zero))
	if n > math.MaxInt64/elemSize || n > math.MaxInt {
		return matrix.Matrix[T]{}, fmt.Errorf("%w: rows=%d cols=%d", ErrTooLarge, rows, cols)
	}

	values := make([]T, n)
	if err := readRaw(r, values); err != nil {
		return matrix.Matrix[T]{}, fmt.Errorf("%w: want %d payload bytes: %v", ErrTruncatedStream, n*elemSize, err)
	}

	return matrix.New(int(rows), int(cols), values)
}

// DecodeHeader reads only the 8-byte shape header, leaving r positioned
// at the payload.
func DecodeHeader(r io.Reader) (rows, cols uint32, err error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, 0, fmt.Errorf("%w: want %d header bytes: %v", ErrTruncatedStream, headerSize, err)
	}
	rows = binary.NativeEndian.Uint32(hdr[0:4])
	cols = binary.NativeEndian.Uint32(hdr[4:8])
	return rows, cols, nil
}

// writeRaw writes the slice memory directly, so values land in host byte
// order without a per-element encoding pass.
func writeRaw[T matrix.Element](w io.Writer, values []T) error {
	if len(values) == 0 {
		return nil
	}
	if err := validateAlignment(values); err != nil {
		return err
	}
	size := len(values) * int(unsafe.Sizeof(values[0]))
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), size)
	_, err := w.Write(buf)
	return err
}

// readRaw fills the slice memory directly from r.
func readRaw[T matrix.Element](r io.Reader, values []T) error {
	if len(values) == 0 {
		return nil
	}
	if err := validateAlignment(values); err != nil {
		return err
	}
	size := len(values) * int(unsafe.Sizeof(values[0]))
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), size)
	_, err := io.ReadFull(r, buf)
	return err
}

// validateAlignment checks slice alignment before the unsafe conversion.
func validateAlignment[T matrix.Element](values []T) error {
	if len(values) == 0 {
		return nil
	}
	ptr := uintptr(unsafe.Pointer(&values[0]))
	if align := unsafe.Alignof(values[0]); ptr%align != 0 {
		return fmt.Errorf("codec: unaligned slice at address 0x%x", ptr)
	}
	return nil
}

// SaveToFile writes a dataset file through writeFunc. The data is staged
// in a temp file in the destination directory and renamed into place, so
// an interrupted write never leaves a half-written file under the target
// name. The destination is fully replaced on success.
func SaveToFile(filename string, writeFunc func(io.Writer) error) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	_ = tmp.Chmod(0644)

	buf := bufio.NewWriterSize(tmp, 256*1024)
	if err := writeFunc(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return err
	}

	// Best-effort: fsync the directory so the rename is durable on POSIX.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	tmpName = ""
	return nil
}

// LoadFromFile opens a dataset file and passes a buffered reader to
// readFunc, releasing the handle on every exit path.
func LoadFromFile(filename string, readFunc func(io.Reader) error) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := bufio.NewReaderSize(f, 256*1024)
	return readFunc(buf)
}
