// Package arff imports attribute-relation (ARFF) text files into sample
// matrices of one fixed numeric type.
//
// The package only cares about shape and numeric conversion: every
// declared attribute becomes one column and every data row one sample.
// The comma-separated row grammar (quoting included) is delegated to
// encoding/csv; attribute semantics beyond numeric conversion are the
// caller's business, including dropping a trailing label column before
// encoding.
package arff

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/lshkit/datakit/matrix"
)

// ErrEmptyRelation is returned when a file declares zero attributes.
var ErrEmptyRelation = errors.New("arff: relation declares no attributes")

// ErrMalformedInput reports an input row that cannot become a matrix
// row: wrong field count, an unconvertible field, or grammar the
// importer does not accept.
//
// The underlying cause can be accessed via errors.Unwrap.
type ErrMalformedInput struct {
	Line  int
	cause error
}

func (e *ErrMalformedInput) Error() string {
	return fmt.Sprintf("arff: malformed input at line %d: %v", e.Line, e.cause)
}

func (e *ErrMalformedInput) Unwrap() error { return e.cause }

// Import parses an ARFF stream into a matrix of element type T.
//
// Missing-value markers ("?") become NaN for floating-point targets and
// fail for integer targets. Sparse ARFF rows ("{...}") are rejected.
func Import[T matrix.Element](r io.Reader) (matrix.Matrix[T], error) {
	br := bufio.NewReader(r)

	attrs, headerLines, err := scanHeader(br)
	if err != nil {
		return matrix.Matrix[T]{}, err
	}
	if attrs == 0 {
		return matrix.Matrix[T]{}, ErrEmptyRelation
	}

	cr := csv.NewReader(br)
	cr.Comment = '%'
	cr.FieldsPerRecord = attrs
	cr.TrimLeadingSpace = true

	var values []T
	rows := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return matrix.Matrix[T]{}, &ErrMalformedInput{Line: headerLines + csvLine(err), cause: err}
		}
		if strings.HasPrefix(strings.TrimSpace(record[0]), "{") {
			line, _ := cr.FieldPos(0)
			return matrix.Matrix[T]{}, &ErrMalformedInput{
				Line:  headerLines + line,
				cause: errors.New("sparse rows are not supported"),
			}
		}

		for i, field := range record {
			v, err := parseField[T](field)
			if err != nil {
				// FieldPos reports the position in the csv input,
				// counting comment and blank lines the reader skipped.
				line, _ := cr.FieldPos(i)
				return matrix.Matrix[T]{}, &ErrMalformedInput{Line: headerLines + line, cause: err}
			}
			values = append(values, v)
		}
		rows++
	}

	if values == nil {
		values = []T{}
	}
	return matrix.New(rows, attrs, values)
}

// scanHeader consumes the relation header up to and including the @data
// marker and returns the declared attribute count and the number of
// lines consumed.
func scanHeader(br *bufio.Reader) (attrs, lines int, err error) {
	for {
		line, err := br.ReadString('\n')
		if len(line) == 0 && err != nil {
			if err == io.EOF {
				return 0, 0, &ErrMalformedInput{Line: lines, cause: errors.New("missing @data section")}
			}
			return 0, 0, err
		}
		lines++

		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "%"):
			// comment or blank
		case hasPrefixFold(trimmed, "@attribute"):
			attrs++
		case hasPrefixFold(trimmed, "@data"):
			return attrs, lines, nil
		default:
			// @relation and anything else the header may carry
		}

		if err == io.EOF {
			return 0, 0, &ErrMalformedInput{Line: lines, cause: errors.New("missing @data section")}
		}
	}
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// parseField converts one textual field to the target numeric type.
func parseField[T matrix.Element](field string) (T, error) {
	s := strings.TrimSpace(field)
	if s == "?" {
		if isFloat[T]() {
			return T(math.NaN()), nil
		}
		return 0, fmt.Errorf("missing value %q cannot convert to integer type", s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot convert field %q: %w", s, err)
	}
	return T(v), nil
}

func isFloat[T matrix.Element]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

// csvLine extracts the row line number from a csv parse error.
func csvLine(err error) int {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return pe.Line
	}
	return 0
}
