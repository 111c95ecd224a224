package locale

import (
	"strings"

	"github.com/FocuswithJustin/interchange/core/encoding"
	"github.com/FocuswithJustin/interchange/core/errors"
	"github.com/FocuswithJustin/interchange/core/values"
	"github.com/FocuswithJustin/interchange/core/vartype"
)

// ToDisplayString renders a value for the given locale, falling back to the
// active locale when info is nil. File values have no display form.
func ToDisplayString(v values.Value, info *Info) (string, error) {
	if info == nil {
		info = Active()
	}
	return values.Accept[string](v, &displayVisitor{info: info})
}

// FromDisplayString parses the display form of a value of the given type,
// falling back to the active locale when info is nil.
func FromDisplayString(t vartype.VariableType, s string, info *Info) (values.Value, error) {
	if info == nil {
		info = Active()
	}
	return vartype.Dispatch[values.Value](t, &displayParser{input: s, info: info})
}

type displayVisitor struct {
	info *Info
}

func (d *displayVisitor) VisitInteger(v values.IntegerValue) (string, error) {
	return d.info.FormatInteger(int64(v)), nil
}

func (d *displayVisitor) VisitReal(v values.RealValue) (string, error) {
	return d.info.FormatReal(float64(v)), nil
}

func (d *displayVisitor) VisitBoolean(v values.BooleanValue) (string, error) {
	return d.info.FormatBoolean(bool(v)), nil
}

func (d *displayVisitor) VisitString(v values.StringValue) (string, error) {
	return string(v), nil
}

func (d *displayVisitor) VisitFile(values.FileValue) (string, error) {
	return "", errors.NewUnsupported("file display", "file values have no display form")
}

func (d *displayVisitor) VisitIntegerArray(a *values.IntegerArrayValue) (string, error) {
	elems := make([]string, a.Len())
	for i := range elems {
		elems[i] = quoteIfAmbiguous(d.info.FormatInteger(a.At(i)))
	}
	return encoding.JoinArrayElements(a.Shape(), elems), nil
}

func (d *displayVisitor) VisitRealArray(a *values.RealArrayValue) (string, error) {
	elems := make([]string, a.Len())
	for i := range elems {
		elems[i] = quoteIfAmbiguous(d.info.FormatReal(a.At(i)))
	}
	return encoding.JoinArrayElements(a.Shape(), elems), nil
}

func (d *displayVisitor) VisitBooleanArray(a *values.BooleanArrayValue) (string, error) {
	elems := make([]string, a.Len())
	for i := range elems {
		elems[i] = d.info.FormatBoolean(a.At(i))
	}
	return encoding.JoinArrayElements(a.Shape(), elems), nil
}

func (d *displayVisitor) VisitStringArray(a *values.StringArrayValue) (string, error) {
	elems := make([]string, a.Len())
	for i := range elems {
		elems[i] = `"` + encoding.EscapeString(a.At(i)) + `"`
	}
	return encoding.JoinArrayElements(a.Shape(), elems), nil
}

func (d *displayVisitor) VisitFileArray(*values.FileArrayValue) (string, error) {
	return "", errors.NewUnsupported("file display", "file values have no display form")
}

// quoteIfAmbiguous quotes a formatted number that would collide with the
// array grammar, as happens when the locale writes numbers with commas.
func quoteIfAmbiguous(elem string) string {
	if strings.ContainsAny(elem, `,"{}`) {
		return `"` + encoding.EscapeString(elem) + `"`
	}
	return elem
}

type displayParser struct {
	input string
	info  *Info
}

func (p *displayParser) VisitUnknown() (values.Value, error) {
	return nil, errors.NewUnknownType("parse a display string of unknown type")
}

func (p *displayParser) VisitInteger() (values.Value, error) {
	n, err := p.info.ParseInteger(p.input)
	if err != nil {
		return nil, err
	}
	return values.IntegerValue(n), nil
}

func (p *displayParser) VisitReal() (values.Value, error) {
	f, err := p.info.ParseReal(p.input)
	if err != nil {
		return nil, err
	}
	return values.RealValue(f), nil
}

func (p *displayParser) VisitBoolean() (values.Value, error) {
	b, err := p.info.ParseBoolean(p.input)
	if err != nil {
		return nil, err
	}
	return values.BooleanValue(b), nil
}

func (p *displayParser) VisitString() (values.Value, error) {
	return values.StringValue(p.input), nil
}

func (p *displayParser) VisitFile() (values.Value, error) {
	return nil, errors.NewUnsupported("file display", "file values have no display form")
}

func (p *displayParser) VisitIntegerArray() (values.Value, error) {
	shape, raw, err := encoding.SplitArrayElements(p.input)
	if err != nil {
		return nil, err
	}
	vals := make([]int64, len(raw))
	for i, r := range raw {
		n, err := p.info.ParseInteger(encoding.UnescapeString(r))
		if err != nil {
			return nil, err
		}
		vals[i] = n
	}
	if shape == nil {
		return values.NewIntegerArray1D(vals...), nil
	}
	a, err := values.NewIntegerArray(shape, vals)
	if err != nil {
		return nil, errors.NewFormat("integer array", p.input)
	}
	return a, nil
}

func (p *displayParser) VisitRealArray() (values.Value, error) {
	shape, raw, err := encoding.SplitArrayElements(p.input)
	if err != nil {
		return nil, err
	}
	vals := make([]float64, len(raw))
	for i, r := range raw {
		f, err := p.info.ParseReal(encoding.UnescapeString(r))
		if err != nil {
			return nil, err
		}
		vals[i] = f
	}
	if shape == nil {
		return values.NewRealArray1D(vals...), nil
	}
	a, err := values.NewRealArray(shape, vals)
	if err != nil {
		return nil, errors.NewFormat("real array", p.input)
	}
	return a, nil
}

func (p *displayParser) VisitBooleanArray() (values.Value, error) {
	shape, raw, err := encoding.SplitArrayElements(p.input)
	if err != nil {
		return nil, err
	}
	vals := make([]bool, len(raw))
	for i, r := range raw {
		b, err := p.info.ParseBoolean(encoding.UnescapeString(r))
		if err != nil {
			return nil, err
		}
		vals[i] = b
	}
	if shape == nil {
		return values.NewBooleanArray1D(vals...), nil
	}
	a, err := values.NewBooleanArray(shape, vals)
	if err != nil {
		return nil, errors.NewFormat("boolean array", p.input)
	}
	return a, nil
}

func (p *displayParser) VisitStringArray() (values.Value, error) {
	shape, raw, err := encoding.SplitArrayElements(p.input)
	if err != nil {
		return nil, err
	}
	vals := make([]string, len(raw))
	for i, r := range raw {
		vals[i] = encoding.UnescapeString(r)
	}
	if shape == nil {
		return values.NewStringArray1D(vals...), nil
	}
	a, err := values.NewStringArray(shape, vals)
	if err != nil {
		return nil, errors.NewFormat("string array", p.input)
	}
	return a, nil
}

func (p *displayParser) VisitFileArray() (values.Value, error) {
	return nil, errors.NewUnsupported("file display", "file values have no display form")
}
