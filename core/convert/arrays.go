package convert

import (
	"github.com/FocuswithJustin/interchange/core/encoding"
	"github.com/FocuswithJustin/interchange/core/values"
	"github.com/FocuswithJustin/interchange/core/vartype"
)

// arraySource is the common surface the elementwise converters need from an
// array value: its shape and a way to visit each flat element.
type arraySource[E any] interface {
	Shape() []int
	Len() int
	At(int) E
}

// mapElements converts every element of src, failing the whole conversion on
// the first element that does not convert.
func mapElements[S, D any](src arraySource[S], conv func(S) (D, error)) ([]int, []D, error) {
	out := make([]D, src.Len())
	for i := range out {
		d, err := conv(src.At(i))
		if err != nil {
			return nil, nil, err
		}
		out[i] = d
	}
	return src.Shape(), out, nil
}

// toIntegerArrayVisitor converts array values elementwise to integer arrays.
type toIntegerArrayVisitor struct{}

func (toIntegerArrayVisitor) VisitInteger(values.IntegerValue) (*values.IntegerArrayValue, error) {
	return nil, incompatible(vartype.Integer, vartype.IntegerArray)
}

func (toIntegerArrayVisitor) VisitReal(values.RealValue) (*values.IntegerArrayValue, error) {
	return nil, incompatible(vartype.Real, vartype.IntegerArray)
}

func (toIntegerArrayVisitor) VisitBoolean(values.BooleanValue) (*values.IntegerArrayValue, error) {
	return nil, incompatible(vartype.Boolean, vartype.IntegerArray)
}

func (toIntegerArrayVisitor) VisitString(values.StringValue) (*values.IntegerArrayValue, error) {
	return nil, incompatible(vartype.String, vartype.IntegerArray)
}

func (toIntegerArrayVisitor) VisitFile(values.FileValue) (*values.IntegerArrayValue, error) {
	return nil, incompatible(vartype.File, vartype.IntegerArray)
}

func (toIntegerArrayVisitor) VisitIntegerArray(a *values.IntegerArrayValue) (*values.IntegerArrayValue, error) {
	return a, nil
}

func (toIntegerArrayVisitor) VisitRealArray(a *values.RealArrayValue) (*values.IntegerArrayValue, error) {
	shape, out, err := mapElements(a, func(f float64) (int64, error) {
		n, err := values.RealValue(f).ToInteger()
		return int64(n), err
	})
	if err != nil {
		return nil, err
	}
	return values.NewIntegerArray(shape, out)
}

func (toIntegerArrayVisitor) VisitBooleanArray(a *values.BooleanArrayValue) (*values.IntegerArrayValue, error) {
	shape, out, err := mapElements(a, func(b bool) (int64, error) {
		return int64(values.BooleanValue(b).ToInteger()), nil
	})
	if err != nil {
		return nil, err
	}
	return values.NewIntegerArray(shape, out)
}

func (toIntegerArrayVisitor) VisitStringArray(a *values.StringArrayValue) (*values.IntegerArrayValue, error) {
	shape, out, err := mapElements(a, encoding.ParseInteger)
	if err != nil {
		return nil, err
	}
	return values.NewIntegerArray(shape, out)
}

func (toIntegerArrayVisitor) VisitFileArray(*values.FileArrayValue) (*values.IntegerArrayValue, error) {
	return nil, incompatible(vartype.FileArray, vartype.IntegerArray)
}

// toRealArrayVisitor converts array values elementwise to real arrays.
type toRealArrayVisitor struct{}

func (toRealArrayVisitor) VisitInteger(values.IntegerValue) (*values.RealArrayValue, error) {
	return nil, incompatible(vartype.Integer, vartype.RealArray)
}

func (toRealArrayVisitor) VisitReal(values.RealValue) (*values.RealArrayValue, error) {
	return nil, incompatible(vartype.Real, vartype.RealArray)
}

func (toRealArrayVisitor) VisitBoolean(values.BooleanValue) (*values.RealArrayValue, error) {
	return nil, incompatible(vartype.Boolean, vartype.RealArray)
}

func (toRealArrayVisitor) VisitString(values.StringValue) (*values.RealArrayValue, error) {
	return nil, incompatible(vartype.String, vartype.RealArray)
}

func (toRealArrayVisitor) VisitFile(values.FileValue) (*values.RealArrayValue, error) {
	return nil, incompatible(vartype.File, vartype.RealArray)
}

func (toRealArrayVisitor) VisitIntegerArray(a *values.IntegerArrayValue) (*values.RealArrayValue, error) {
	shape, out, err := mapElements(a, func(n int64) (float64, error) {
		return float64(values.IntegerValue(n).ToReal()), nil
	})
	if err != nil {
		return nil, err
	}
	return values.NewRealArray(shape, out)
}

func (toRealArrayVisitor) VisitRealArray(a *values.RealArrayValue) (*values.RealArrayValue, error) {
	return a, nil
}

func (toRealArrayVisitor) VisitBooleanArray(a *values.BooleanArrayValue) (*values.RealArrayValue, error) {
	shape, out, err := mapElements(a, func(b bool) (float64, error) {
		return float64(values.BooleanValue(b).ToReal()), nil
	})
	if err != nil {
		return nil, err
	}
	return values.NewRealArray(shape, out)
}

func (toRealArrayVisitor) VisitStringArray(a *values.StringArrayValue) (*values.RealArrayValue, error) {
	shape, out, err := mapElements(a, encoding.ParseReal)
	if err != nil {
		return nil, err
	}
	return values.NewRealArray(shape, out)
}

func (toRealArrayVisitor) VisitFileArray(*values.FileArrayValue) (*values.RealArrayValue, error) {
	return nil, incompatible(vartype.FileArray, vartype.RealArray)
}

// toBooleanArrayVisitor converts array values elementwise to boolean arrays.
type toBooleanArrayVisitor struct{}

func (toBooleanArrayVisitor) VisitInteger(values.IntegerValue) (*values.BooleanArrayValue, error) {
	return nil, incompatible(vartype.Integer, vartype.BooleanArray)
}

func (toBooleanArrayVisitor) VisitReal(values.RealValue) (*values.BooleanArrayValue, error) {
	return nil, incompatible(vartype.Real, vartype.BooleanArray)
}

func (toBooleanArrayVisitor) VisitBoolean(values.BooleanValue) (*values.BooleanArrayValue, error) {
	return nil, incompatible(vartype.Boolean, vartype.BooleanArray)
}

func (toBooleanArrayVisitor) VisitString(values.StringValue) (*values.BooleanArrayValue, error) {
	return nil, incompatible(vartype.String, vartype.BooleanArray)
}

func (toBooleanArrayVisitor) VisitFile(values.FileValue) (*values.BooleanArrayValue, error) {
	return nil, incompatible(vartype.File, vartype.BooleanArray)
}

func (toBooleanArrayVisitor) VisitIntegerArray(a *values.IntegerArrayValue) (*values.BooleanArrayValue, error) {
	shape, out, err := mapElements(a, func(n int64) (bool, error) {
		return bool(values.IntegerValue(n).ToBoolean()), nil
	})
	if err != nil {
		return nil, err
	}
	return values.NewBooleanArray(shape, out)
}

func (toBooleanArrayVisitor) VisitRealArray(a *values.RealArrayValue) (*values.BooleanArrayValue, error) {
	shape, out, err := mapElements(a, func(f float64) (bool, error) {
		return bool(values.RealValue(f).ToBoolean()), nil
	})
	if err != nil {
		return nil, err
	}
	return values.NewBooleanArray(shape, out)
}

func (toBooleanArrayVisitor) VisitBooleanArray(a *values.BooleanArrayValue) (*values.BooleanArrayValue, error) {
	return a, nil
}

func (toBooleanArrayVisitor) VisitStringArray(a *values.StringArrayValue) (*values.BooleanArrayValue, error) {
	shape, out, err := mapElements(a, encoding.ParseBoolean)
	if err != nil {
		return nil, err
	}
	return values.NewBooleanArray(shape, out)
}

func (toBooleanArrayVisitor) VisitFileArray(*values.FileArrayValue) (*values.BooleanArrayValue, error) {
	return nil, incompatible(vartype.FileArray, vartype.BooleanArray)
}

// toStringArrayVisitor renders array values elementwise in canonical string form.
type toStringArrayVisitor struct{}

func (toStringArrayVisitor) VisitInteger(values.IntegerValue) (*values.StringArrayValue, error) {
	return nil, incompatible(vartype.Integer, vartype.StringArray)
}

func (toStringArrayVisitor) VisitReal(values.RealValue) (*values.StringArrayValue, error) {
	return nil, incompatible(vartype.Real, vartype.StringArray)
}

func (toStringArrayVisitor) VisitBoolean(values.BooleanValue) (*values.StringArrayValue, error) {
	return nil, incompatible(vartype.Boolean, vartype.StringArray)
}

func (toStringArrayVisitor) VisitString(values.StringValue) (*values.StringArrayValue, error) {
	return nil, incompatible(vartype.String, vartype.StringArray)
}

func (toStringArrayVisitor) VisitFile(values.FileValue) (*values.StringArrayValue, error) {
	return nil, incompatible(vartype.File, vartype.StringArray)
}

func (toStringArrayVisitor) VisitIntegerArray(a *values.IntegerArrayValue) (*values.StringArrayValue, error) {
	shape, out, err := mapElements(a, func(n int64) (string, error) {
		return encoding.FormatInteger(n), nil
	})
	if err != nil {
		return nil, err
	}
	return values.NewStringArray(shape, out)
}

func (toStringArrayVisitor) VisitRealArray(a *values.RealArrayValue) (*values.StringArrayValue, error) {
	shape, out, err := mapElements(a, func(f float64) (string, error) {
		return encoding.FormatReal(f), nil
	})
	if err != nil {
		return nil, err
	}
	return values.NewStringArray(shape, out)
}

func (toStringArrayVisitor) VisitBooleanArray(a *values.BooleanArrayValue) (*values.StringArrayValue, error) {
	shape, out, err := mapElements(a, func(b bool) (string, error) {
		return encoding.FormatBoolean(b), nil
	})
	if err != nil {
		return nil, err
	}
	return values.NewStringArray(shape, out)
}

func (toStringArrayVisitor) VisitStringArray(a *values.StringArrayValue) (*values.StringArrayValue, error) {
	return a, nil
}

func (toStringArrayVisitor) VisitFileArray(*values.FileArrayValue) (*values.StringArrayValue, error) {
	return nil, incompatible(vartype.FileArray, vartype.StringArray)
}
