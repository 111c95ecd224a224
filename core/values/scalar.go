package values

import (
	"math"
	"strconv"

	"github.com/FocuswithJustin/interchange/core/errors"
	"github.com/FocuswithJustin/interchange/core/vartype"
)

// int64Bound is 2^63, the first float64 magnitude beyond the int64 range.
// Both 2^63 and -2^63 are exactly representable as float64, so comparisons
// against them are exact.
const int64Bound float64 = 1 << 63

// IntegerValue is a 64-bit signed integer variable value.
type IntegerValue int64

// Type returns vartype.Integer.
func (IntegerValue) Type() vartype.VariableType { return vartype.Integer }

// Clone returns the value itself; integers are immutable.
func (v IntegerValue) Clone() Value { return v }

// Equal reports whether other is an IntegerValue with the same value.
func (v IntegerValue) Equal(other Value) bool {
	o, ok := other.(IntegerValue)
	return ok && v == o
}

// ToReal widens the integer to a real. Integers of sufficient magnitude lose
// precision because a 64-bit float carries a 52-bit mantissa.
func (v IntegerValue) ToReal() RealValue { return RealValue(v) }

// ToBoolean converts the integer to a boolean; any nonzero value is true.
func (v IntegerValue) ToBoolean() BooleanValue { return v != 0 }

// RealValue is a 64-bit floating point variable value.
type RealValue float64

// Type returns vartype.Real.
func (RealValue) Type() vartype.VariableType { return vartype.Real }

// Clone returns the value itself; reals are immutable.
func (v RealValue) Clone() Value { return v }

// Equal reports whether other is a RealValue with the same value.
// NaN compares unequal to everything, including itself.
func (v RealValue) Equal(other Value) bool {
	o, ok := other.(RealValue)
	return ok && v == o
}

// ToInteger narrows the real to an integer, truncating toward zero. It fails
// with an overflow error when the value is NaN, infinite, or outside the
// 64-bit integer domain.
func (v RealValue) ToInteger() (IntegerValue, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.NewOverflow(strconv.FormatFloat(f, 'g', -1, 64), "integer")
	}
	t := math.Trunc(f)
	if t >= int64Bound || t < -int64Bound {
		return 0, errors.NewOverflow(strconv.FormatFloat(f, 'g', -1, 64), "integer")
	}
	return IntegerValue(t), nil
}

// ToBoolean converts the real to a boolean; any value other than exactly
// zero is true.
func (v RealValue) ToBoolean() BooleanValue { return v != 0 }

// BooleanValue is a boolean variable value.
type BooleanValue bool

// Type returns vartype.Boolean.
func (BooleanValue) Type() vartype.VariableType { return vartype.Boolean }

// Clone returns the value itself; booleans are immutable.
func (v BooleanValue) Clone() Value { return v }

// Equal reports whether other is a BooleanValue with the same value.
func (v BooleanValue) Equal(other Value) bool {
	o, ok := other.(BooleanValue)
	return ok && v == o
}

// ToInteger converts the boolean to 1 or 0.
func (v BooleanValue) ToInteger() IntegerValue {
	if v {
		return 1
	}
	return 0
}

// ToReal converts the boolean to 1.0 or 0.0.
func (v BooleanValue) ToReal() RealValue {
	if v {
		return 1
	}
	return 0
}

// StringValue is an immutable text variable value.
type StringValue string

// Type returns vartype.String.
func (StringValue) Type() vartype.VariableType { return vartype.String }

// Clone returns the value itself; strings are immutable.
func (v StringValue) Clone() Value { return v }

// Equal reports whether other is a StringValue with the same content.
func (v StringValue) Equal(other Value) bool {
	o, ok := other.(StringValue)
	return ok && v == o
}
