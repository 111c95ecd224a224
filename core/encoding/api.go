package encoding

import (
	"encoding/json"
	"strings"

	"github.com/FocuswithJustin/interchange/core/errors"
	"github.com/FocuswithJustin/interchange/core/filescope"
	"github.com/FocuswithJustin/interchange/core/values"
	"github.com/FocuswithJustin/interchange/core/vartype"
)

// fileAPIObject is the JSON shape a file value takes inside an API string.
// Content travels out of band through a save context; only the identifier
// it was saved under appears here.
type fileAPIObject struct {
	OriginalFilename string `json:"originalFilename,omitempty"`
	MimeType         string `json:"mimeType,omitempty"`
	Encoding         string `json:"encoding,omitempty"`
	Contents         string `json:"contents,omitempty"`
}

// ToAPIString serializes a value to its canonical API string. The save
// context receives the content of any file values encountered; it may be nil
// when the value contains no file content.
func ToAPIString(v values.Value, save filescope.SaveContext) (string, error) {
	return values.Accept[string](v, &apiStringVisitor{save: save})
}

// FromAPIString parses the canonical API string form of a value of the given
// type. File content is recreated through the scope and load context; both
// may be nil when the type involves no files.
func FromAPIString(t vartype.VariableType, s string, scope filescope.FileScope, load filescope.LoadContext) (values.Value, error) {
	return vartype.Dispatch[values.Value](t, &apiStringParser{input: s, scope: scope, load: load})
}

// apiStringVisitor renders each value kind in API form.
type apiStringVisitor struct {
	save filescope.SaveContext
}

func (c *apiStringVisitor) VisitInteger(v values.IntegerValue) (string, error) {
	return FormatInteger(int64(v)), nil
}

func (c *apiStringVisitor) VisitReal(v values.RealValue) (string, error) {
	return FormatReal(float64(v)), nil
}

func (c *apiStringVisitor) VisitBoolean(v values.BooleanValue) (string, error) {
	return FormatBoolean(bool(v)), nil
}

func (c *apiStringVisitor) VisitString(v values.StringValue) (string, error) {
	return string(v), nil
}

func (c *apiStringVisitor) VisitFile(v values.FileValue) (string, error) {
	return c.fileToAPI(v)
}

func (c *apiStringVisitor) VisitIntegerArray(a *values.IntegerArrayValue) (string, error) {
	elems := make([]string, a.Len())
	for i := range elems {
		elems[i] = FormatInteger(a.At(i))
	}
	return JoinArrayElements(a.Shape(), elems), nil
}

func (c *apiStringVisitor) VisitRealArray(a *values.RealArrayValue) (string, error) {
	elems := make([]string, a.Len())
	for i := range elems {
		elems[i] = FormatReal(a.At(i))
	}
	return JoinArrayElements(a.Shape(), elems), nil
}

func (c *apiStringVisitor) VisitBooleanArray(a *values.BooleanArrayValue) (string, error) {
	elems := make([]string, a.Len())
	for i := range elems {
		elems[i] = FormatBoolean(a.At(i))
	}
	return JoinArrayElements(a.Shape(), elems), nil
}

func (c *apiStringVisitor) VisitStringArray(a *values.StringArrayValue) (string, error) {
	// String elements are always quoted so embedded commas, quotes and
	// braces cannot be mistaken for grammar.
	elems := make([]string, a.Len())
	for i := range elems {
		elems[i] = `"` + EscapeString(a.At(i)) + `"`
	}
	return JoinArrayElements(a.Shape(), elems), nil
}

func (c *apiStringVisitor) VisitFileArray(a *values.FileArrayValue) (string, error) {
	elems := make([]string, a.Len())
	for i := range elems {
		s, err := c.fileToAPI(a.At(i))
		if err != nil {
			return "", err
		}
		elems[i] = `"` + EscapeString(s) + `"`
	}
	return JoinArrayElements(a.Shape(), elems), nil
}

func (c *apiStringVisitor) fileToAPI(v values.FileValue) (string, error) {
	obj := fileAPIObject{
		OriginalFilename: v.OriginalPath(),
		MimeType:         v.MimeType(),
		Encoding:         v.Encoding(),
	}
	if v.HasContent() {
		if c.save == nil {
			return "", errors.NewUnsupported("file serialization", "a save context is required for file content")
		}
		id, err := c.save.SaveFile(v.OriginalPath(), v.ID().String())
		if err != nil {
			return "", err
		}
		obj.Contents = id
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// apiStringParser parses the API form of each variable type.
type apiStringParser struct {
	input string
	scope filescope.FileScope
	load  filescope.LoadContext
}

func (p *apiStringParser) VisitUnknown() (values.Value, error) {
	return nil, errors.NewUnknownType("deserialize a value of unknown type")
}

func (p *apiStringParser) VisitInteger() (values.Value, error) {
	n, err := ParseInteger(p.input)
	if err != nil {
		return nil, err
	}
	return values.IntegerValue(n), nil
}

func (p *apiStringParser) VisitReal() (values.Value, error) {
	f, err := ParseReal(p.input)
	if err != nil {
		return nil, err
	}
	return values.RealValue(f), nil
}

func (p *apiStringParser) VisitBoolean() (values.Value, error) {
	b, err := ParseBoolean(p.input)
	if err != nil {
		return nil, err
	}
	return values.BooleanValue(b), nil
}

func (p *apiStringParser) VisitString() (values.Value, error) {
	// Scalar strings are unquoted in API form and pass through verbatim.
	return values.StringValue(p.input), nil
}

func (p *apiStringParser) VisitFile() (values.Value, error) {
	return p.parseFile(p.input)
}

func (p *apiStringParser) VisitIntegerArray() (values.Value, error) {
	shape, vals, err := parseElements(p.input, ParseInteger)
	if err != nil {
		return nil, err
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

func (p *apiStringParser) VisitRealArray() (values.Value, error) {
	shape, vals, err := parseElements(p.input, ParseReal)
	if err != nil {
		return nil, err
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

func (p *apiStringParser) VisitBooleanArray() (values.Value, error) {
	shape, vals, err := parseElements(p.input, ParseBoolean)
	if err != nil {
		return nil, err
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

func (p *apiStringParser) VisitStringArray() (values.Value, error) {
	shape, vals, err := parseElements(p.input, func(s string) (string, error) {
		return UnescapeString(s), nil
	})
	if err != nil {
		return nil, err
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

func (p *apiStringParser) VisitFileArray() (values.Value, error) {
	shape, vals, err := parseElements(p.input, func(s string) (values.FileValue, error) {
		v, err := p.parseFile(UnescapeString(s))
		if err != nil {
			return values.FileValue{}, err
		}
		return v.(values.FileValue), nil
	})
	if err != nil {
		return nil, err
	}
	if shape == nil {
		return values.NewFileArray1D(vals...), nil
	}
	a, err := values.NewFileArray(shape, vals)
	if err != nil {
		return nil, errors.NewFormat("file array", p.input)
	}
	return a, nil
}

func (p *apiStringParser) parseFile(s string) (values.Value, error) {
	var obj fileAPIObject
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &obj); err != nil {
		return nil, errors.NewFormat("file value", s)
	}
	if obj.Contents == "" {
		return values.EmptyFile(), nil
	}
	if p.scope == nil || p.load == nil {
		return nil, errors.NewUnsupported("file deserialization", "a file scope and load context are required for file content")
	}
	path, err := p.load.LoadFile(obj.Contents)
	if err != nil {
		return nil, err
	}
	v, err := p.scope.ReadFromFile(path, obj.MimeType, obj.Encoding)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// parseElements tokenizes an array string and converts every raw element
// with the given parser. The whole parse fails on the first bad element.
func parseElements[T any](input string, parse func(string) (T, error)) ([]int, []T, error) {
	shape, raw, err := SplitArrayElements(input)
	if err != nil {
		return nil, nil, err
	}
	vals := make([]T, len(raw))
	for i, r := range raw {
		v, err := parse(r)
		if err != nil {
			return nil, nil, err
		}
		vals[i] = v
	}
	return shape, vals, nil
}
