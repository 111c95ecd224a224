package values

import (
	"github.com/FocuswithJustin/interchange/core/errors"
	"github.com/FocuswithJustin/interchange/core/vartype"
)

// defaultValueVisitor builds the default value for each type tag.
type defaultValueVisitor struct{}

func (defaultValueVisitor) VisitUnknown() (Value, error) {
	return nil, errors.NewUnknownType("construct a default value")
}
func (defaultValueVisitor) VisitInteger() (Value, error) { return IntegerValue(0), nil }
func (defaultValueVisitor) VisitReal() (Value, error)    { return RealValue(0), nil }
func (defaultValueVisitor) VisitBoolean() (Value, error) { return BooleanValue(false), nil }
func (defaultValueVisitor) VisitString() (Value, error)  { return StringValue(""), nil }
func (defaultValueVisitor) VisitFile() (Value, error)    { return EmptyFile(), nil }
func (defaultValueVisitor) VisitIntegerArray() (Value, error) {
	return NewIntegerArray1D(), nil
}
func (defaultValueVisitor) VisitRealArray() (Value, error) {
	return NewRealArray1D(), nil
}
func (defaultValueVisitor) VisitBooleanArray() (Value, error) {
	return NewBooleanArray1D(), nil
}
func (defaultValueVisitor) VisitStringArray() (Value, error) {
	return NewStringArray1D(), nil
}
func (defaultValueVisitor) VisitFileArray() (Value, error) {
	return NewFileArray1D(), nil
}

// Default constructs the default value for the given type tag: zero for
// numerics, false for booleans, empty for strings and arrays, and the empty
// file for file types. The Unknown tag fails with an unknown-type error.
func Default(t vartype.VariableType) (Value, error) {
	return vartype.Dispatch[Value](t, defaultValueVisitor{})
}
