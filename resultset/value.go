// Package resultset renders query results as tab-separated text.
//
// A Cursor walks one or more result sets forward only. RenderAll writes a
// header line for every result set that produced rows, one line per row and
// a blank line after each result set. Cell values are Values: null, a scalar
// with its text form, or a rectangular array of any rank.
package resultset

import (
	"errors"
	"fmt"
)

// Kind tells which variant a Value holds.
type Kind uint8

// Value kinds: null, a scalar with its text form, or a rectangular array.
const (
	KindNull Kind = iota
	KindScalar
	KindArray
)

// ErrMalformedArray is returned by NewArray when the element count does not
// match the declared dimensions.
var ErrMalformedArray = errors.New("malformed array")

// Bound is the inclusive index range of one array dimension.
// Upper < Lower means the dimension is empty.
type Bound struct {
	Lower int
	Upper int
}

// Len returns the number of indexes in the dimension.
func (b Bound) Len() int {
	if b.Upper < b.Lower {
		return 0
	}
	return b.Upper - b.Lower + 1
}

// Value is one cell of a result set. The zero Value is null.
type Value struct {
	kind  Kind
	text  string
	dims  []Bound
	elems []Value
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// Scalar returns a value whose text form is s.
func Scalar(s string) Value {
	return Value{kind: KindScalar, text: s}
}

// NewArray builds an array from its dimension bounds and its elements in
// row-major order (the last dimension varies fastest).
func NewArray(dims []Bound, elems []Value) (Value, error) {
	if len(dims) == 0 {
		return Value{}, fmt.Errorf("%w: rank must be at least 1", ErrMalformedArray)
	}
	want := 1
	for _, d := range dims {
		want *= d.Len()
	}
	if want != len(elems) {
		return Value{}, fmt.Errorf("%w: dimensions %v hold %d elements, got %d", ErrMalformedArray, dims, want, len(elems))
	}
	return Value{
		kind:  KindArray,
		dims:  append([]Bound(nil), dims...),
		elems: append([]Value(nil), elems...),
	}, nil
}

// Vector returns a rank-1 array with lower bound 0.
func Vector(elems ...Value) Value {
	return Value{
		kind:  KindArray,
		dims:  []Bound{{Lower: 0, Upper: len(elems) - 1}},
		elems: append([]Value(nil), elems...),
	}
}

// Kind returns the variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Text returns the text of a scalar. It is empty for other kinds.
func (v Value) Text() string { return v.text }

// Rank returns the number of dimensions of an array, 0 otherwise.
func (v Value) Rank() int { return len(v.dims) }

// Dims returns a copy of the dimension bounds of an array.
func (v Value) Dims() []Bound {
	return append([]Bound(nil), v.dims...)
}

// String implements fmt.Stringer using Format.
func (v Value) String() string {
	return Format(v)
}
