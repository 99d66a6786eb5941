// Package codec implements the binary dataset format used to exchange
// sample matrices with the benchmark binaries.
//
// The layout is deliberately minimal:
//
//	offset 0 : uint32 rows   (host byte order)
//	offset 4 : uint32 cols   (host byte order)
//	offset 8 : rows*cols values, row-major, element type agreed out of band
//
// There is no magic number, no version field and no type tag. The format
// is self-describing only in shape: a reader must know the element type
// the file was written with, and both sides must run on platforms with
// the same byte order. Existing benchmark data was written in native
// byte order, so the codec preserves that exactly instead of fixing the
// format to a portable order.
package codec

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/lshkit/datakit/matrix"
)

var (
	// ErrInvalidShape is returned when a matrix violates
	// len(values) == rows*cols before encoding.
	ErrInvalidShape = matrix.ErrInvalidShape

	// ErrTruncatedStream is returned when a stream holds fewer bytes
	// than its header declares.
	ErrTruncatedStream = errors.New("codec: truncated stream")

	// ErrUnknownType is returned when an element type name cannot be
	// resolved. The format carries no type tag, so the type must be
	// supplied by convention between producer and consumer.
	ErrUnknownType = errors.New("codec: unknown element type")

	// ErrTooLarge is returned when a shape does not fit the uint32
	// header fields or the payload would not be addressable.
	ErrTooLarge = errors.New("codec: matrix too large for format")
)

// Kind describes one supported element type by its stable name and
// encoded size in bytes.
type Kind struct {
	Name string
	Size int
}

// KindOf returns the Kind for the element type T.
func KindOf[T matrix.Element]() Kind {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Kind{Name: "float32", Size: 4}
	case float64:
		return Kind{Name: "float64", Size: 8}
	case uint32:
		return Kind{Name: "uint32", Size: 4}
	case int32:
		return Kind{Name: "int32", Size: 4}
	default:
		return Kind{Name: fmt.Sprintf("%T", zero), Size: int(unsafe.Sizeof(zero))}
	}
}

// KindByName resolves a stable element type name.
//
// Command-line shells use this to turn the out-of-band type convention
// into a concrete element size before touching a file.
func KindByName(name string) (Kind, error) {
	switch name {
	case "float32":
		return Kind{Name: "float32", Size: 4}, nil
	case "float64":
		return Kind{Name: "float64", Size: 8}, nil
	case "uint32":
		return Kind{Name: "uint32", Size: 4}, nil
	case "int32":
		return Kind{Name: "int32", Size: 4}, nil
	default:
		return Kind{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

// Kinds returns the names of all supported element types.
func Kinds() []string {
	return []string{"float32", "float64", "uint32", "int32"}
}
