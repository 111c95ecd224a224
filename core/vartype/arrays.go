package vartype

import "github.com/FocuswithJustin/interchange/core/errors"

// scalarToArrayVisitor yields the corresponding array type for a scalar type,
// or Unknown when the visited type has no array counterpart.
type scalarToArrayVisitor struct{}

func (scalarToArrayVisitor) VisitUnknown() (VariableType, error)      { return Unknown, nil }
func (scalarToArrayVisitor) VisitInteger() (VariableType, error)      { return IntegerArray, nil }
func (scalarToArrayVisitor) VisitReal() (VariableType, error)         { return RealArray, nil }
func (scalarToArrayVisitor) VisitBoolean() (VariableType, error)      { return BooleanArray, nil }
func (scalarToArrayVisitor) VisitString() (VariableType, error)       { return StringArray, nil }
func (scalarToArrayVisitor) VisitFile() (VariableType, error)         { return FileArray, nil }
func (scalarToArrayVisitor) VisitIntegerArray() (VariableType, error) { return Unknown, nil }
func (scalarToArrayVisitor) VisitRealArray() (VariableType, error)    { return Unknown, nil }
func (scalarToArrayVisitor) VisitBooleanArray() (VariableType, error) { return Unknown, nil }
func (scalarToArrayVisitor) VisitStringArray() (VariableType, error)  { return Unknown, nil }
func (scalarToArrayVisitor) VisitFileArray() (VariableType, error)    { return Unknown, nil }

// elementTypeVisitor yields the corresponding element type for an array type,
// or Unknown when the visited type is not an array.
type elementTypeVisitor struct{}

func (elementTypeVisitor) VisitUnknown() (VariableType, error)      { return Unknown, nil }
func (elementTypeVisitor) VisitInteger() (VariableType, error)      { return Unknown, nil }
func (elementTypeVisitor) VisitReal() (VariableType, error)         { return Unknown, nil }
func (elementTypeVisitor) VisitBoolean() (VariableType, error)      { return Unknown, nil }
func (elementTypeVisitor) VisitString() (VariableType, error)       { return Unknown, nil }
func (elementTypeVisitor) VisitFile() (VariableType, error)         { return Unknown, nil }
func (elementTypeVisitor) VisitIntegerArray() (VariableType, error) { return Integer, nil }
func (elementTypeVisitor) VisitRealArray() (VariableType, error)    { return Real, nil }
func (elementTypeVisitor) VisitBooleanArray() (VariableType, error) { return Boolean, nil }
func (elementTypeVisitor) VisitStringArray() (VariableType, error)  { return String, nil }
func (elementTypeVisitor) VisitFileArray() (VariableType, error)    { return File, nil }

// isArrayVisitor reports whether the visited type is an array type.
type isArrayVisitor struct{}

func (isArrayVisitor) VisitUnknown() (bool, error)      { return false, nil }
func (isArrayVisitor) VisitInteger() (bool, error)      { return false, nil }
func (isArrayVisitor) VisitReal() (bool, error)         { return false, nil }
func (isArrayVisitor) VisitBoolean() (bool, error)      { return false, nil }
func (isArrayVisitor) VisitString() (bool, error)       { return false, nil }
func (isArrayVisitor) VisitFile() (bool, error)         { return false, nil }
func (isArrayVisitor) VisitIntegerArray() (bool, error) { return true, nil }
func (isArrayVisitor) VisitRealArray() (bool, error)    { return true, nil }
func (isArrayVisitor) VisitBooleanArray() (bool, error) { return true, nil }
func (isArrayVisitor) VisitStringArray() (bool, error)  { return true, nil }
func (isArrayVisitor) VisitFileArray() (bool, error)    { return true, nil }

// ToArrayType returns the array type corresponding to the given scalar type.
// It fails when the type is Unknown or already an array.
func ToArrayType(t VariableType) (VariableType, error) {
	result, _ := Dispatch[VariableType](t, scalarToArrayVisitor{})
	if result == Unknown {
		return Unknown, errors.NewUnknownType("find an array type for " + t.String())
	}
	return result, nil
}

// ElementType returns the element type corresponding to the given array type.
// It fails when the type is Unknown or not an array.
func ElementType(t VariableType) (VariableType, error) {
	result, _ := Dispatch[VariableType](t, elementTypeVisitor{})
	if result == Unknown {
		return Unknown, errors.NewUnknownType("find an element type for " + t.String())
	}
	return result, nil
}

// IsArray reports whether the given type is one of the array types.
func IsArray(t VariableType) bool {
	result, _ := Dispatch[bool](t, isArrayVisitor{})
	return result
}
