package encoding

import (
	stderrors "errors"
	"math"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/interchange/core/errors"
	"github.com/FocuswithJustin/interchange/core/values"
)

// Boolean tokens accepted by ParseBoolean, compared case-insensitively
// after trimming whitespace.
var booleanTokens = map[string]bool{
	"true":  true,
	"yes":   true,
	"y":     true,
	"false": false,
	"no":    false,
	"n":     false,
}

// FormatInteger renders an integer in its canonical base-10 form.
func FormatInteger(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatReal renders a real in its canonical form: the shortest decimal
// string that round-trips through a 64-bit float, with non-finite values
// spelled NaN, Infinity and -Infinity.
func FormatReal(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// FormatBoolean renders a boolean as True or False.
func FormatBoolean(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// ParseInteger parses the canonical integer form. Strings written in real
// notation, such as "2.5" or "1e3", are accepted by parsing as a real and
// truncating toward zero, with the int64 range enforced on the result.
func ParseInteger(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, errors.NewFormat("integer", s)
	}
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err == nil {
		return n, nil
	}
	var numErr *strconv.NumError
	if stderrors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
		return 0, errors.NewOverflow(trimmed, "integer")
	}
	if strings.ContainsAny(trimmed, ".eE") {
		f, realErr := ParseReal(trimmed)
		if realErr != nil {
			return 0, errors.NewFormat("integer", s)
		}
		i, convErr := values.RealValue(f).ToInteger()
		if convErr != nil {
			return 0, convErr
		}
		return int64(i), nil
	}
	return 0, errors.NewFormat("integer", s)
}

// ParseReal parses the canonical real form, accepting the NaN, Infinity and
// -Infinity spellings. Values beyond the finite float64 range parse to the
// corresponding infinity rather than failing.
func ParseReal(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.ContainsAny(trimmed, "xX_") {
		return 0, errors.NewFormat("real", s)
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		var numErr *strconv.NumError
		if stderrors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return f, nil
		}
		return 0, errors.NewFormat("real", s)
	}
	return f, nil
}

// ParseBoolean parses a boolean token such as true, yes or n. Strings that
// are not recognized tokens but parse as a number are true when nonzero.
func ParseBoolean(s string) (bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if b, ok := booleanTokens[trimmed]; ok {
		return b, nil
	}
	f, err := ParseReal(trimmed)
	if err != nil {
		return false, errors.NewFormat("boolean", s)
	}
	// Any parseable number is a valid boolean; NaN counts as nonzero.
	return f != 0 || math.IsNaN(f), nil
}
