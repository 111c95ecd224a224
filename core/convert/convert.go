// Package convert implements implicit conversion between interchange value
// types. Conversions are strict: only the combinations addressed by the
// conversion matrix succeed, elementwise array conversions are all or
// nothing, and narrowing a real to an integer truncates toward zero with the
// 64-bit range enforced.
package convert

import (
	"github.com/FocuswithJustin/interchange/core/errors"
	"github.com/FocuswithJustin/interchange/core/values"
	"github.com/FocuswithJustin/interchange/core/vartype"
)

// ToInteger converts a scalar value to an integer. Reals truncate toward
// zero, booleans map to 0 and 1, and strings parse through the canonical
// integer grammar.
func ToInteger(v values.Value) (values.IntegerValue, error) {
	return values.Accept[values.IntegerValue](v, toIntegerVisitor{})
}

// ToReal converts a scalar value to a real.
func ToReal(v values.Value) (values.RealValue, error) {
	return values.Accept[values.RealValue](v, toRealVisitor{})
}

// ToBoolean converts a scalar value to a boolean. Numerics are true when
// nonzero and strings parse through the canonical boolean grammar.
func ToBoolean(v values.Value) (values.BooleanValue, error) {
	return values.Accept[values.BooleanValue](v, toBooleanVisitor{})
}

// ToString converts a value to its canonical string form. Arrays render
// through the API array grammar; only file values are refused.
func ToString(v values.Value) (values.StringValue, error) {
	return values.Accept[values.StringValue](v, toStringVisitor{})
}

// ToIntegerArray converts an array value elementwise to an integer array.
func ToIntegerArray(v values.Value) (*values.IntegerArrayValue, error) {
	return values.Accept[*values.IntegerArrayValue](v, toIntegerArrayVisitor{})
}

// ToRealArray converts an array value elementwise to a real array.
func ToRealArray(v values.Value) (*values.RealArrayValue, error) {
	return values.Accept[*values.RealArrayValue](v, toRealArrayVisitor{})
}

// ToBooleanArray converts an array value elementwise to a boolean array.
func ToBooleanArray(v values.Value) (*values.BooleanArrayValue, error) {
	return values.Accept[*values.BooleanArrayValue](v, toBooleanArrayVisitor{})
}

// ToStringArray converts an array value elementwise to a string array.
func ToStringArray(v values.Value) (*values.StringArrayValue, error) {
	return values.Accept[*values.StringArrayValue](v, toStringArrayVisitor{})
}

// To converts a value to the given destination type. Converting to the
// value's own type returns it unchanged.
func To(v values.Value, t vartype.VariableType) (values.Value, error) {
	if v.Type() == t {
		return v, nil
	}
	switch t {
	case vartype.Integer:
		return ToInteger(v)
	case vartype.Real:
		return ToReal(v)
	case vartype.Boolean:
		return ToBoolean(v)
	case vartype.String:
		return ToString(v)
	case vartype.IntegerArray:
		return ToIntegerArray(v)
	case vartype.RealArray:
		return ToRealArray(v)
	case vartype.BooleanArray:
		return ToBooleanArray(v)
	case vartype.StringArray:
		return ToStringArray(v)
	case vartype.File, vartype.FileArray:
		return nil, incompatible(v.Type(), t)
	default:
		return nil, errors.NewUnknownType("convert to an unknown type")
	}
}

func incompatible(from, to vartype.VariableType) error {
	return errors.NewIncompatibleTypes(from.String(), to.String())
}
