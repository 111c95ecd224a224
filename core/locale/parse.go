package locale

import (
	"github.com/FocuswithJustin/interchange/core/encoding"
	"github.com/FocuswithJustin/interchange/core/errors"
)

// ParseInteger parses a locale-formatted integer. Grouping separators are
// ignored and input in real notation truncates toward zero.
func (i *Info) ParseInteger(s string) (int64, error) {
	n, err := encoding.ParseInteger(i.normalizeNumber(s))
	if err != nil {
		// Report the input as the user wrote it, not the normalized form.
		if ferr, ok := err.(*errors.FormatError); ok {
			return 0, errors.NewFormat(ferr.Expected, s)
		}
		return 0, err
	}
	return n, nil
}

// ParseReal parses a locale-formatted real.
func (i *Info) ParseReal(s string) (float64, error) {
	f, err := encoding.ParseReal(i.normalizeNumber(s))
	if err != nil {
		if ferr, ok := err.(*errors.FormatError); ok {
			return 0, errors.NewFormat(ferr.Expected, s)
		}
		return 0, err
	}
	return f, nil
}

// ParseBoolean parses a boolean. The token set is not localized; numeric
// input follows the locale's number conventions.
func (i *Info) ParseBoolean(s string) (bool, error) {
	if b, err := encoding.ParseBoolean(s); err == nil {
		return b, nil
	}
	f, err := i.ParseReal(s)
	if err != nil {
		return false, errors.NewFormat("boolean", s)
	}
	return f != 0, nil
}
