package convert

import (
	"github.com/FocuswithJustin/interchange/core/encoding"
	"github.com/FocuswithJustin/interchange/core/values"
	"github.com/FocuswithJustin/interchange/core/vartype"
)

// toIntegerVisitor narrows scalar values to IntegerValue.
type toIntegerVisitor struct{}

func (toIntegerVisitor) VisitInteger(v values.IntegerValue) (values.IntegerValue, error) {
	return v, nil
}

func (toIntegerVisitor) VisitReal(v values.RealValue) (values.IntegerValue, error) {
	return v.ToInteger()
}

func (toIntegerVisitor) VisitBoolean(v values.BooleanValue) (values.IntegerValue, error) {
	return v.ToInteger(), nil
}

func (toIntegerVisitor) VisitString(v values.StringValue) (values.IntegerValue, error) {
	n, err := encoding.ParseInteger(string(v))
	if err != nil {
		return 0, err
	}
	return values.IntegerValue(n), nil
}

func (toIntegerVisitor) VisitFile(values.FileValue) (values.IntegerValue, error) {
	return 0, incompatible(vartype.File, vartype.Integer)
}

func (toIntegerVisitor) VisitIntegerArray(*values.IntegerArrayValue) (values.IntegerValue, error) {
	return 0, incompatible(vartype.IntegerArray, vartype.Integer)
}

func (toIntegerVisitor) VisitRealArray(*values.RealArrayValue) (values.IntegerValue, error) {
	return 0, incompatible(vartype.RealArray, vartype.Integer)
}

func (toIntegerVisitor) VisitBooleanArray(*values.BooleanArrayValue) (values.IntegerValue, error) {
	return 0, incompatible(vartype.BooleanArray, vartype.Integer)
}

func (toIntegerVisitor) VisitStringArray(*values.StringArrayValue) (values.IntegerValue, error) {
	return 0, incompatible(vartype.StringArray, vartype.Integer)
}

func (toIntegerVisitor) VisitFileArray(*values.FileArrayValue) (values.IntegerValue, error) {
	return 0, incompatible(vartype.FileArray, vartype.Integer)
}

// toRealVisitor widens scalar values to RealValue.
type toRealVisitor struct{}

func (toRealVisitor) VisitInteger(v values.IntegerValue) (values.RealValue, error) {
	return v.ToReal(), nil
}

func (toRealVisitor) VisitReal(v values.RealValue) (values.RealValue, error) {
	return v, nil
}

func (toRealVisitor) VisitBoolean(v values.BooleanValue) (values.RealValue, error) {
	return v.ToReal(), nil
}

func (toRealVisitor) VisitString(v values.StringValue) (values.RealValue, error) {
	f, err := encoding.ParseReal(string(v))
	if err != nil {
		return 0, err
	}
	return values.RealValue(f), nil
}

func (toRealVisitor) VisitFile(values.FileValue) (values.RealValue, error) {
	return 0, incompatible(vartype.File, vartype.Real)
}

func (toRealVisitor) VisitIntegerArray(*values.IntegerArrayValue) (values.RealValue, error) {
	return 0, incompatible(vartype.IntegerArray, vartype.Real)
}

func (toRealVisitor) VisitRealArray(*values.RealArrayValue) (values.RealValue, error) {
	return 0, incompatible(vartype.RealArray, vartype.Real)
}

func (toRealVisitor) VisitBooleanArray(*values.BooleanArrayValue) (values.RealValue, error) {
	return 0, incompatible(vartype.BooleanArray, vartype.Real)
}

func (toRealVisitor) VisitStringArray(*values.StringArrayValue) (values.RealValue, error) {
	return 0, incompatible(vartype.StringArray, vartype.Real)
}

func (toRealVisitor) VisitFileArray(*values.FileArrayValue) (values.RealValue, error) {
	return 0, incompatible(vartype.FileArray, vartype.Real)
}

// toBooleanVisitor converts scalar values to BooleanValue.
type toBooleanVisitor struct{}

func (toBooleanVisitor) VisitInteger(v values.IntegerValue) (values.BooleanValue, error) {
	return v.ToBoolean(), nil
}

func (toBooleanVisitor) VisitReal(v values.RealValue) (values.BooleanValue, error) {
	return v.ToBoolean(), nil
}

func (toBooleanVisitor) VisitBoolean(v values.BooleanValue) (values.BooleanValue, error) {
	return v, nil
}

func (toBooleanVisitor) VisitString(v values.StringValue) (values.BooleanValue, error) {
	b, err := encoding.ParseBoolean(string(v))
	if err != nil {
		return false, err
	}
	return values.BooleanValue(b), nil
}

func (toBooleanVisitor) VisitFile(values.FileValue) (values.BooleanValue, error) {
	return false, incompatible(vartype.File, vartype.Boolean)
}

func (toBooleanVisitor) VisitIntegerArray(*values.IntegerArrayValue) (values.BooleanValue, error) {
	return false, incompatible(vartype.IntegerArray, vartype.Boolean)
}

func (toBooleanVisitor) VisitRealArray(*values.RealArrayValue) (values.BooleanValue, error) {
	return false, incompatible(vartype.RealArray, vartype.Boolean)
}

func (toBooleanVisitor) VisitBooleanArray(*values.BooleanArrayValue) (values.BooleanValue, error) {
	return false, incompatible(vartype.BooleanArray, vartype.Boolean)
}

func (toBooleanVisitor) VisitStringArray(*values.StringArrayValue) (values.BooleanValue, error) {
	return false, incompatible(vartype.StringArray, vartype.Boolean)
}

func (toBooleanVisitor) VisitFileArray(*values.FileArrayValue) (values.BooleanValue, error) {
	return false, incompatible(vartype.FileArray, vartype.Boolean)
}

// toStringVisitor renders values in their canonical string form. Arrays
// serialize through the API array grammar, so this direction succeeds for
// every non-file kind.
type toStringVisitor struct{}

func (toStringVisitor) VisitInteger(v values.IntegerValue) (values.StringValue, error) {
	return values.StringValue(encoding.FormatInteger(int64(v))), nil
}

func (toStringVisitor) VisitReal(v values.RealValue) (values.StringValue, error) {
	return values.StringValue(encoding.FormatReal(float64(v))), nil
}

func (toStringVisitor) VisitBoolean(v values.BooleanValue) (values.StringValue, error) {
	return values.StringValue(encoding.FormatBoolean(bool(v))), nil
}

func (toStringVisitor) VisitString(v values.StringValue) (values.StringValue, error) {
	return v, nil
}

func (toStringVisitor) VisitFile(values.FileValue) (values.StringValue, error) {
	return "", incompatible(vartype.File, vartype.String)
}

func (toStringVisitor) VisitIntegerArray(a *values.IntegerArrayValue) (values.StringValue, error) {
	return arrayToString(a)
}

func (toStringVisitor) VisitRealArray(a *values.RealArrayValue) (values.StringValue, error) {
	return arrayToString(a)
}

func (toStringVisitor) VisitBooleanArray(a *values.BooleanArrayValue) (values.StringValue, error) {
	return arrayToString(a)
}

func (toStringVisitor) VisitStringArray(a *values.StringArrayValue) (values.StringValue, error) {
	return arrayToString(a)
}

func (toStringVisitor) VisitFileArray(*values.FileArrayValue) (values.StringValue, error) {
	return "", incompatible(vartype.FileArray, vartype.String)
}

// arrayToString renders a non-file array in the canonical array grammar. No
// file content is involved, so no save context is needed.
func arrayToString(a values.Value) (values.StringValue, error) {
	s, err := encoding.ToAPIString(a, nil)
	if err != nil {
		return "", err
	}
	return values.StringValue(s), nil
}
