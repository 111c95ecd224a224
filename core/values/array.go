package values

import (
	"fmt"
	"math"
	"slices"

	"github.com/FocuswithJustin/interchange/core/vartype"
)

// elementCount returns the number of elements implied by a shape. An empty
// shape describes a zero-dimensional array holding exactly one element. The
// second result is false when the product does not fit in an int.
func elementCount(shape []int) (int, bool) {
	n := 1
	for _, d := range shape {
		if d > 0 && n > math.MaxInt/d {
			return 0, false
		}
		n *= d
	}
	return n, true
}

// validateShape checks that every dimension is non-negative and that the
// shape's element count matches the buffer length, returning a defensive
// copy of the shape. Arrays are rectangular by construction: the flat buffer
// plus shape model cannot represent a ragged array.
func validateShape(shape []int, buffered int) ([]int, error) {
	for _, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("array dimension %d is negative", d)
		}
	}
	n, ok := elementCount(shape)
	if !ok {
		return nil, fmt.Errorf("array shape %v overflows the element count", shape)
	}
	if n != buffered {
		return nil, fmt.Errorf("array shape %v requires %d elements, got %d", shape, n, buffered)
	}
	return slices.Clone(shape), nil
}

// IntegerArrayValue is a rectangular N-dimensional array of 64-bit integers,
// stored as a flat buffer in row-major order plus an explicit shape.
type IntegerArrayValue struct {
	shape []int
	data  []int64
}

// NewIntegerArray constructs an integer array with the given shape from
// elements in row-major order. An empty shape describes a zero-dimensional
// array of exactly one element.
func NewIntegerArray(shape []int, elems []int64) (*IntegerArrayValue, error) {
	s, err := validateShape(shape, len(elems))
	if err != nil {
		return nil, err
	}
	return &IntegerArrayValue{shape: s, data: slices.Clone(elems)}, nil
}

// NewIntegerArray1D constructs a one-dimensional integer array.
func NewIntegerArray1D(elems ...int64) *IntegerArrayValue {
	return &IntegerArrayValue{shape: []int{len(elems)}, data: slices.Clone(elems)}
}

// Type returns vartype.IntegerArray.
func (*IntegerArrayValue) Type() vartype.VariableType { return vartype.IntegerArray }

// Shape returns a copy of the dimension sizes.
func (a *IntegerArrayValue) Shape() []int { return slices.Clone(a.shape) }

// NDim returns the number of dimensions.
func (a *IntegerArrayValue) NDim() int { return len(a.shape) }

// Len returns the total number of elements.
func (a *IntegerArrayValue) Len() int { return len(a.data) }

// At returns the element at the given flat row-major index.
func (a *IntegerArrayValue) At(i int) int64 { return a.data[i] }

// Values returns a copy of the flat element buffer in row-major order.
func (a *IntegerArrayValue) Values() []int64 { return slices.Clone(a.data) }

// Clone returns an independent deep copy.
func (a *IntegerArrayValue) Clone() Value {
	return &IntegerArrayValue{shape: slices.Clone(a.shape), data: slices.Clone(a.data)}
}

// Equal reports whether other is an IntegerArrayValue with the same shape
// and elements.
func (a *IntegerArrayValue) Equal(other Value) bool {
	o, ok := other.(*IntegerArrayValue)
	return ok && slices.Equal(a.shape, o.shape) && slices.Equal(a.data, o.data)
}

// RealArrayValue is a rectangular N-dimensional array of 64-bit floats,
// stored as a flat buffer in row-major order plus an explicit shape.
type RealArrayValue struct {
	shape []int
	data  []float64
}

// NewRealArray constructs a real array with the given shape from elements in
// row-major order. An empty shape describes a zero-dimensional array of
// exactly one element.
func NewRealArray(shape []int, elems []float64) (*RealArrayValue, error) {
	s, err := validateShape(shape, len(elems))
	if err != nil {
		return nil, err
	}
	return &RealArrayValue{shape: s, data: slices.Clone(elems)}, nil
}

// NewRealArray1D constructs a one-dimensional real array.
func NewRealArray1D(elems ...float64) *RealArrayValue {
	return &RealArrayValue{shape: []int{len(elems)}, data: slices.Clone(elems)}
}

// Type returns vartype.RealArray.
func (*RealArrayValue) Type() vartype.VariableType { return vartype.RealArray }

// Shape returns a copy of the dimension sizes.
func (a *RealArrayValue) Shape() []int { return slices.Clone(a.shape) }

// NDim returns the number of dimensions.
func (a *RealArrayValue) NDim() int { return len(a.shape) }

// Len returns the total number of elements.
func (a *RealArrayValue) Len() int { return len(a.data) }

// At returns the element at the given flat row-major index.
func (a *RealArrayValue) At(i int) float64 { return a.data[i] }

// Values returns a copy of the flat element buffer in row-major order.
func (a *RealArrayValue) Values() []float64 { return slices.Clone(a.data) }

// Clone returns an independent deep copy.
func (a *RealArrayValue) Clone() Value {
	return &RealArrayValue{shape: slices.Clone(a.shape), data: slices.Clone(a.data)}
}

// Equal reports whether other is a RealArrayValue with the same shape and
// elements. Arrays containing NaN are unequal to everything.
func (a *RealArrayValue) Equal(other Value) bool {
	o, ok := other.(*RealArrayValue)
	return ok && slices.Equal(a.shape, o.shape) && slices.Equal(a.data, o.data)
}

// BooleanArrayValue is a rectangular N-dimensional array of booleans, stored
// as a flat buffer in row-major order plus an explicit shape.
type BooleanArrayValue struct {
	shape []int
	data  []bool
}

// NewBooleanArray constructs a boolean array with the given shape from
// elements in row-major order. An empty shape describes a zero-dimensional
// array of exactly one element.
func NewBooleanArray(shape []int, elems []bool) (*BooleanArrayValue, error) {
	s, err := validateShape(shape, len(elems))
	if err != nil {
		return nil, err
	}
	return &BooleanArrayValue{shape: s, data: slices.Clone(elems)}, nil
}

// NewBooleanArray1D constructs a one-dimensional boolean array.
func NewBooleanArray1D(elems ...bool) *BooleanArrayValue {
	return &BooleanArrayValue{shape: []int{len(elems)}, data: slices.Clone(elems)}
}

// Type returns vartype.BooleanArray.
func (*BooleanArrayValue) Type() vartype.VariableType { return vartype.BooleanArray }

// Shape returns a copy of the dimension sizes.
func (a *BooleanArrayValue) Shape() []int { return slices.Clone(a.shape) }

// NDim returns the number of dimensions.
func (a *BooleanArrayValue) NDim() int { return len(a.shape) }

// Len returns the total number of elements.
func (a *BooleanArrayValue) Len() int { return len(a.data) }

// At returns the element at the given flat row-major index.
func (a *BooleanArrayValue) At(i int) bool { return a.data[i] }

// Values returns a copy of the flat element buffer in row-major order.
func (a *BooleanArrayValue) Values() []bool { return slices.Clone(a.data) }

// Clone returns an independent deep copy.
func (a *BooleanArrayValue) Clone() Value {
	return &BooleanArrayValue{shape: slices.Clone(a.shape), data: slices.Clone(a.data)}
}

// Equal reports whether other is a BooleanArrayValue with the same shape and
// elements.
func (a *BooleanArrayValue) Equal(other Value) bool {
	o, ok := other.(*BooleanArrayValue)
	return ok && slices.Equal(a.shape, o.shape) && slices.Equal(a.data, o.data)
}

// StringArrayValue is a rectangular N-dimensional array of strings, stored
// as a flat buffer in row-major order plus an explicit shape.
type StringArrayValue struct {
	shape []int
	data  []string
}

// NewStringArray constructs a string array with the given shape from
// elements in row-major order. An empty shape describes a zero-dimensional
// array of exactly one element.
func NewStringArray(shape []int, elems []string) (*StringArrayValue, error) {
	s, err := validateShape(shape, len(elems))
	if err != nil {
		return nil, err
	}
	return &StringArrayValue{shape: s, data: slices.Clone(elems)}, nil
}

// NewStringArray1D constructs a one-dimensional string array.
func NewStringArray1D(elems ...string) *StringArrayValue {
	return &StringArrayValue{shape: []int{len(elems)}, data: slices.Clone(elems)}
}

// Type returns vartype.StringArray.
func (*StringArrayValue) Type() vartype.VariableType { return vartype.StringArray }

// Shape returns a copy of the dimension sizes.
func (a *StringArrayValue) Shape() []int { return slices.Clone(a.shape) }

// NDim returns the number of dimensions.
func (a *StringArrayValue) NDim() int { return len(a.shape) }

// Len returns the total number of elements.
func (a *StringArrayValue) Len() int { return len(a.data) }

// At returns the element at the given flat row-major index.
func (a *StringArrayValue) At(i int) string { return a.data[i] }

// Values returns a copy of the flat element buffer in row-major order.
func (a *StringArrayValue) Values() []string { return slices.Clone(a.data) }

// Clone returns an independent deep copy.
func (a *StringArrayValue) Clone() Value {
	return &StringArrayValue{shape: slices.Clone(a.shape), data: slices.Clone(a.data)}
}

// Equal reports whether other is a StringArrayValue with the same shape and
// elements.
func (a *StringArrayValue) Equal(other Value) bool {
	o, ok := other.(*StringArrayValue)
	return ok && slices.Equal(a.shape, o.shape) && slices.Equal(a.data, o.data)
}

// FileArrayValue is a rectangular N-dimensional array of file values, stored
// as a flat buffer in row-major order plus an explicit shape.
type FileArrayValue struct {
	shape []int
	data  []FileValue
}

// NewFileArray constructs a file array with the given shape from elements in
// row-major order. An empty shape describes a zero-dimensional array of
// exactly one element.
func NewFileArray(shape []int, elems []FileValue) (*FileArrayValue, error) {
	s, err := validateShape(shape, len(elems))
	if err != nil {
		return nil, err
	}
	return &FileArrayValue{shape: s, data: slices.Clone(elems)}, nil
}

// NewFileArray1D constructs a one-dimensional file array.
func NewFileArray1D(elems ...FileValue) *FileArrayValue {
	return &FileArrayValue{shape: []int{len(elems)}, data: slices.Clone(elems)}
}

// Type returns vartype.FileArray.
func (*FileArrayValue) Type() vartype.VariableType { return vartype.FileArray }

// Shape returns a copy of the dimension sizes.
func (a *FileArrayValue) Shape() []int { return slices.Clone(a.shape) }

// NDim returns the number of dimensions.
func (a *FileArrayValue) NDim() int { return len(a.shape) }

// Len returns the total number of elements.
func (a *FileArrayValue) Len() int { return len(a.data) }

// At returns the element at the given flat row-major index.
func (a *FileArrayValue) At(i int) FileValue { return a.data[i] }

// Values returns a copy of the flat element buffer in row-major order.
func (a *FileArrayValue) Values() []FileValue { return slices.Clone(a.data) }

// Clone returns an independent deep copy.
func (a *FileArrayValue) Clone() Value {
	return &FileArrayValue{shape: slices.Clone(a.shape), data: slices.Clone(a.data)}
}

// Equal reports whether other is a FileArrayValue with the same shape and
// element identities.
func (a *FileArrayValue) Equal(other Value) bool {
	o, ok := other.(*FileArrayValue)
	if !ok || !slices.Equal(a.shape, o.shape) || len(a.data) != len(o.data) {
		return false
	}
	for i := range a.data {
		if !a.data[i].Equal(o.data[i]) {
			return false
		}
	}
	return true
}
