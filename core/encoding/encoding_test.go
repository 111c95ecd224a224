package encoding

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	ierrors "github.com/FocuswithJustin/interchange/core/errors"
	"github.com/FocuswithJustin/interchange/core/filescope"
	"github.com/FocuswithJustin/interchange/core/values"
	"github.com/FocuswithJustin/interchange/core/vartype"
)

func TestEscapeString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "no escapes here", "no escapes here"},
		{"backslash", `a\b`, `a\\b`},
		{"newline", "line1\nline2", `line1\nline2`},
		{"carriage return", "a\rb", `a\rb`},
		{"tab", "a\tb", `a\tb`},
		{"quote", `say "hi"`, `say \"hi\"`},
		{"nul", "a\x00b", `a\0b`},
		{"backslash before escapes", "\\n", `\\n`},
		{"everything", "\\\n\r\t\"\x00", `\\\n\r\t\"\0`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeString(tt.in); got != tt.want {
				t.Errorf("EscapeString(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if got := UnescapeString(tt.want); got != tt.in {
				t.Errorf("UnescapeString(%q) = %q, want %q", tt.want, got, tt.in)
			}
		})
	}
}

func TestUnescapeStringUnknownEscapes(t *testing.T) {
	// Unknown escapes drop the backslash and keep the character.
	got := UnescapeString(`unr\ecogn\ized \esc\ap\es`)
	want := "unrecognized escapes"
	if got != want {
		t.Errorf("UnescapeString = %q, want %q", got, want)
	}

	// A dangling backslash at the end of input is dropped too.
	if got := UnescapeString(`tail\`); got != "tail" {
		t.Errorf("UnescapeString(tail\\) = %q, want %q", got, "tail")
	}
}

func TestFormatReal(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-1.5, "-1.5"},
		{3.2, "3.2"},
		{1e100, "1e+100"},
		{0.1, "0.1"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		if got := FormatReal(tt.in); got != tt.want {
			t.Errorf("FormatReal(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRealRoundTrips(t *testing.T) {
	// The canonical form is the shortest string that parses back exactly.
	for _, f := range []float64{0.1, 1.0 / 3.0, math.MaxFloat64, math.SmallestNonzeroFloat64, -2.5e-10} {
		s := FormatReal(f)
		back, err := ParseReal(s)
		if err != nil {
			t.Fatalf("ParseReal(%q) failed: %v", s, err)
		}
		if back != f {
			t.Errorf("round trip of %v through %q gave %v", f, s, back)
		}
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"-47", -47},
		{"  12  ", 12},
		{"9223372036854775807", math.MaxInt64},
		{"-9223372036854775808", math.MinInt64},
		{"2.5", 2},
		{"-2.5", -2},
		{"1e3", 1000},
		{"4.9E2", 490},
	}
	for _, tt := range tests {
		got, err := ParseInteger(tt.in)
		if err != nil {
			t.Errorf("ParseInteger(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseInteger(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseIntegerErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ierrors.ErrFormat},
		{"abc", ierrors.ErrFormat},
		{"12abc", ierrors.ErrFormat},
		{"NaN", ierrors.ErrFormat},
		{"9223372036854775808", ierrors.ErrOverflow},
		{"-9223372036854775809", ierrors.ErrOverflow},
		{"1e99", ierrors.ErrOverflow},
	}
	for _, tt := range tests {
		if _, err := ParseInteger(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("ParseInteger(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestParseReal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"-1.5", -1.5},
		{"1e3", 1000},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e999", math.Inf(1)},
	}
	for _, tt := range tests {
		got, err := ParseReal(tt.in)
		if err != nil {
			t.Errorf("ParseReal(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseReal(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if got, err := ParseReal("NaN"); err != nil || !math.IsNaN(got) {
		t.Errorf("ParseReal(NaN) = %v, %v, want NaN", got, err)
	}
	for _, bad := range []string{"", "abc", "1.2.3", "0x10", "1_000"} {
		if _, err := ParseReal(bad); !errors.Is(err, ierrors.ErrFormat) {
			t.Errorf("ParseReal(%q) error = %v, want ErrFormat", bad, err)
		}
	}
}

func TestParseBoolean(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"Yes", true},
		{"y", true},
		{"false", false},
		{"No", false},
		{"n", false},
		{" False ", false},
		{"1", true},
		{"0", false},
		{"-1.5", true},
		{"0.0", false},
	}
	for _, tt := range tests {
		got, err := ParseBoolean(tt.in)
		if err != nil {
			t.Errorf("ParseBoolean(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBoolean(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseBoolean("maybe"); !errors.Is(err, ierrors.ErrFormat) {
		t.Errorf("ParseBoolean(maybe) error = %v, want ErrFormat", err)
	}
}

func TestSplitArrayElements(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantShape []int
		wantElems []string
	}{
		{"bare list", "1,2,3", nil, []string{"1", "2", "3"}},
		{"curly list", "{1,2,3}", nil, []string{"1", "2", "3"}},
		{"spaces", " 1 , 2 , 3 ", nil, []string{"1", "2", "3"}},
		{"empty", "", nil, nil},
		{"single", "42", nil, []string{"42"}},
		{"bounds 1d", "bounds[3]{1,2,3}", []int{3}, []string{"1", "2", "3"}},
		{"bounds 2d", "bounds[2,2]{1,2,3,4}", []int{2, 2}, []string{"1", "2", "3", "4"}},
		{"bounds spacing", " BOUNDS [ 2 , 1 ] {True,False} ", []int{2, 1}, []string{"True", "False"}},
		{"bounds empty", "bounds[0]{}", []int{0}, []string{}},
		{"quoted", `"a","b,c"`, nil, []string{"a", `b,c`}},
		{"quoted with escapes", `"a\"b"`, nil, []string{`a\"b`}},
		{"mixed quoting", `"a",b`, nil, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, elems, err := SplitArrayElements(tt.in)
			if err != nil {
				t.Fatalf("SplitArrayElements(%q) failed: %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.wantShape, shape); diff != "" {
				t.Errorf("shape mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantElems, elems, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("elements mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitArrayElementsErrors(t *testing.T) {
	tests := []string{
		"bounds[2]{1}",                     // too few elements
		"bounds[2]{1,2,3}",                 // too many elements
		"bounds[2]{1,2,}",                  // trailing comma in bounded form
		"bounds[]{1}",                      // empty bounds
		"bounds[1000000000000]{}",          // element count far beyond the input
		"bounds[3037000500,3037000500]{1}", // dimension product overflows int
		"1,,2",                             // empty element
		`"unterminated`,                    // bad quoting
		"bounds[0]{residue}",               // elements in an empty array
	}
	for _, in := range tests {
		if _, _, err := SplitArrayElements(in); !errors.Is(err, ierrors.ErrFormat) {
			t.Errorf("SplitArrayElements(%q) error = %v, want ErrFormat", in, err)
		}
	}
}

func TestToAPIStringScalars(t *testing.T) {
	tests := []struct {
		name string
		in   values.Value
		want string
	}{
		{"integer", values.IntegerValue(-47), "-47"},
		{"real", values.RealValue(3.2), "3.2"},
		{"real nan", values.RealValue(math.NaN()), "NaN"},
		{"boolean true", values.BooleanValue(true), "True"},
		{"boolean false", values.BooleanValue(false), "False"},
		{"string verbatim", values.StringValue(`with "quotes", commas`), `with "quotes", commas`},
		{"empty file", values.EmptyFile(), "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToAPIString(tt.in, nil)
			if err != nil {
				t.Fatalf("ToAPIString failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToAPIString = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToAPIStringArrays(t *testing.T) {
	twoByTwo, err := values.NewIntegerArray([]int{2, 2}, []int64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("NewIntegerArray failed: %v", err)
	}
	boolCol, err := values.NewBooleanArray([]int{2, 1}, []bool{true, false})
	if err != nil {
		t.Fatalf("NewBooleanArray failed: %v", err)
	}

	tests := []struct {
		name string
		in   values.Value
		want string
	}{
		{"integer 1d", values.NewIntegerArray1D(1, 2, 3), "1,2,3"},
		{"integer 2d", twoByTwo, "bounds[2,2]{1,2,3,4}"},
		{"boolean 2d", boolCol, "bounds[2,1]{True,False}"},
		{"real 1d", values.NewRealArray1D(0.5, -1.5), "0.5,-1.5"},
		{"string quoted", values.NewStringArray1D("a", `b"c`, "d,e"), `"a","b\"c","d,e"`},
		{"empty 1d", values.NewIntegerArray1D(), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToAPIString(tt.in, nil)
			if err != nil {
				t.Fatalf("ToAPIString failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToAPIString = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromAPIStringScalars(t *testing.T) {
	tests := []struct {
		name string
		typ  vartype.VariableType
		in   string
		want values.Value
	}{
		{"integer", vartype.Integer, "-47", values.IntegerValue(-47)},
		{"integer from real form", vartype.Integer, "2.5", values.IntegerValue(2)},
		{"real", vartype.Real, "3.2", values.RealValue(3.2)},
		{"boolean", vartype.Boolean, "yes", values.BooleanValue(true)},
		{"string", vartype.String, "anything, really", values.StringValue("anything, really")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAPIString(tt.typ, tt.in, nil, nil)
			if err != nil {
				t.Fatalf("FromAPIString failed: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("FromAPIString = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromAPIStringUnknownType(t *testing.T) {
	if _, err := FromAPIString(vartype.Unknown, "1", nil, nil); !errors.Is(err, ierrors.ErrUnknownType) {
		t.Errorf("FromAPIString(Unknown) error = %v, want ErrUnknownType", err)
	}
}

func TestAPIStringArrayRoundTrips(t *testing.T) {
	twoByTwo, err := values.NewRealArray([]int{2, 2}, []float64{0.5, 1.5, 2.5, 3.5})
	if err != nil {
		t.Fatalf("NewRealArray failed: %v", err)
	}

	tests := []struct {
		name string
		typ  vartype.VariableType
		in   values.Value
	}{
		{"integer 1d", vartype.IntegerArray, values.NewIntegerArray1D(1, -2, 3)},
		{"real 2d", vartype.RealArray, twoByTwo},
		{"boolean 1d", vartype.BooleanArray, values.NewBooleanArray1D(true, false, true)},
		{"string with grammar chars", vartype.StringArray, values.NewStringArray1D(`a"b`, "c,d", "e\nf", "")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ToAPIString(tt.in, nil)
			if err != nil {
				t.Fatalf("ToAPIString failed: %v", err)
			}
			back, err := FromAPIString(tt.typ, s, nil, nil)
			if err != nil {
				t.Fatalf("FromAPIString(%q) failed: %v", s, err)
			}
			if !back.Equal(tt.in) {
				t.Errorf("round trip through %q gave %v, want %v", s, back, tt.in)
			}
		})
	}
}

func TestFromAPIStringBoundedArrays(t *testing.T) {
	got, err := FromAPIString(vartype.BooleanArray, "bounds[2,1]{True,False}", nil, nil)
	if err != nil {
		t.Fatalf("FromAPIString failed: %v", err)
	}
	want, err := values.NewBooleanArray([]int{2, 1}, []bool{true, false})
	if err != nil {
		t.Fatalf("NewBooleanArray failed: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("FromAPIString = %v, want %v", got, want)
	}

	if _, err := FromAPIString(vartype.IntegerArray, "bounds[2,2]{1,2,3}", nil, nil); !errors.Is(err, ierrors.ErrFormat) {
		t.Errorf("short bounded array error = %v, want ErrFormat", err)
	}
}

func TestAPIStringFileRoundTrip(t *testing.T) {
	scope, err := filescope.NewDirectoryScope(t.TempDir())
	if err != nil {
		t.Fatalf("NewDirectoryScope failed: %v", err)
	}
	defer scope.Close()

	source := filepath.Join(t.TempDir(), "report.csv")
	if err := os.WriteFile(source, []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	v, err := scope.ReadFromFile(source, "text/csv", "utf-8")
	if err != nil {
		t.Fatalf("ReadFromFile failed: %v", err)
	}

	s, err := ToAPIString(v, scope.SaveContext())
	if err != nil {
		t.Fatalf("ToAPIString failed: %v", err)
	}
	if !strings.Contains(s, `"contents"`) {
		t.Fatalf("ToAPIString = %q, want a contents identifier", s)
	}

	back, err := FromAPIString(vartype.File, s, scope, scope.LoadContext())
	if err != nil {
		t.Fatalf("FromAPIString(%q) failed: %v", s, err)
	}
	restored, ok := back.(values.FileValue)
	if !ok {
		t.Fatalf("FromAPIString returned %T, want FileValue", back)
	}
	if restored.MimeType() != "text/csv" || restored.Encoding() != "utf-8" {
		t.Errorf("metadata = (%q, %q), want (text/csv, utf-8)", restored.MimeType(), restored.Encoding())
	}
	got, err := os.ReadFile(restored.OriginalPath())
	if err != nil {
		t.Fatalf("ReadFile(%q) failed: %v", restored.OriginalPath(), err)
	}
	if string(got) != "a,b\n1,2\n" {
		t.Errorf("restored content = %q, want %q", got, "a,b\n1,2\n")
	}
}

func TestAPIStringFileArrayRoundTrip(t *testing.T) {
	scope, err := filescope.NewDirectoryScope(t.TempDir())
	if err != nil {
		t.Fatalf("NewDirectoryScope failed: %v", err)
	}
	defer scope.Close()

	dir := t.TempDir()
	contents := []string{"first", "second"}
	elems := make([]values.FileValue, len(contents))
	for i, c := range contents {
		source := filepath.Join(dir, c+".txt")
		if err := os.WriteFile(source, []byte(c), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		v, err := scope.ReadFromFile(source, "text/plain", "")
		if err != nil {
			t.Fatalf("ReadFromFile failed: %v", err)
		}
		elems[i] = v
	}

	s, err := ToAPIString(values.NewFileArray1D(elems...), scope.SaveContext())
	if err != nil {
		t.Fatalf("ToAPIString failed: %v", err)
	}
	back, err := FromAPIString(vartype.FileArray, s, scope, scope.LoadContext())
	if err != nil {
		t.Fatalf("FromAPIString(%q) failed: %v", s, err)
	}
	arr, ok := back.(*values.FileArrayValue)
	if !ok {
		t.Fatalf("FromAPIString returned %T, want *FileArrayValue", back)
	}
	if arr.Len() != len(contents) {
		t.Fatalf("Len() = %d, want %d", arr.Len(), len(contents))
	}
	for i, want := range contents {
		got, err := os.ReadFile(arr.At(i).OriginalPath())
		if err != nil {
			t.Fatalf("ReadFile element %d failed: %v", i, err)
		}
		if string(got) != want {
			t.Errorf("element %d content = %q, want %q", i, got, want)
		}
	}
}
