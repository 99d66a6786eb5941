// Package matrix defines the in-memory sample matrix shared by the
// generator, the importer and the binary codec.
//
// A Matrix is a rectangular table of numeric samples: Rows samples with
// Cols features each, backed by a single flattened slice in row-major
// order (all features of one sample are contiguous). Matrices are built
// once and never mutated afterwards.
package matrix

import (
	"errors"
	"fmt"
)

// Element constrains the fixed-width numeric types a matrix can hold.
// A file holds exactly one element type; producer and consumer agree on
// it out of band.
type Element interface {
	~float32 | ~float64 | ~uint32 | ~int32
}

// ErrInvalidShape is returned when a value slice does not match the
// declared rows*cols shape.
var ErrInvalidShape = errors.New("matrix: values length does not match rows*cols")

// Matrix is a rectangular table of Rows x Cols values of type T in
// row-major order. The zero value is an empty 0x0 matrix.
type Matrix[T Element] struct {
	Rows   int
	Cols   int
	Values []T
}

// New creates a matrix and validates the shape invariant
// len(values) == rows*cols. A matrix with zero rows is valid.
func New[T Element](rows, cols int, values []T) (Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return Matrix[T]{}, fmt.Errorf("%w: rows=%d cols=%d", ErrInvalidShape, rows, cols)
	}
	if len(values) != rows*cols {
		return Matrix[T]{}, fmt.Errorf("%w: rows=%d cols=%d values=%d", ErrInvalidShape, rows, cols, len(values))
	}
	return Matrix[T]{Rows: rows, Cols: cols, Values: values}, nil
}

// At returns the value of feature col of sample row.
func (m Matrix[T]) At(row, col int) T {
	return m.Values[row*m.Cols+col]
}

// Row returns the feature vector of one sample. The returned slice
// aliases the matrix backing array.
func (m Matrix[T]) Row(row int) []T {
	return m.Values[row*m.Cols : (row+1)*m.Cols]
}

// Equal reports whether two matrices have the same shape and
// bit-identical values.
func (m Matrix[T]) Equal(other Matrix[T]) bool {
	if m.Rows != other.Rows || m.Cols != other.Cols {
		return false
	}
	for i, v := range m.Values {
		if v != other.Values[i] {
			return false
		}
	}
	return true
}

// DropLastColumn returns a copy of m without its last feature column.
// Converted datasets often carry a trailing label column that must not
// end up in the binary file.
func DropLastColumn[T Element](m Matrix[T]) (Matrix[T], error) {
	if m.Cols < 1 {
		return Matrix[T]{}, fmt.Errorf("%w: no column to drop (cols=%d)", ErrInvalidShape, m.Cols)
	}
	cols := m.Cols - 1
	values := make([]T, m.Rows*cols)
	for i := 0; i < m.Rows; i++ {
		copy(values[i*cols:(i+1)*cols], m.Values[i*m.Cols:i*m.Cols+cols])
	}
	return Matrix[T]{Rows: m.Rows, Cols: cols, Values: values}, nil
}
