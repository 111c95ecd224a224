// Package locale renders and parses interchange values in human-facing,
// locale-sensitive form. The canonical API codec in core/encoding is
// locale-invariant; this package exists for displaying values to users and
// reading values users typed, where decimal and grouping separators follow
// the user's locale.
package locale

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/FocuswithJustin/interchange/core/errors"
)

// Info describes the number formatting conventions of one locale.
type Info struct {
	tag        language.Tag
	printer    *message.Printer
	decimalSep string
	groupSep   string
}

// Resolve looks up the formatting conventions for a locale name. Names in
// POSIX form, such as "de_DE.UTF-8", are accepted alongside BCP 47 tags
// such as "de-DE". An empty name resolves to American English.
func Resolve(name string) (*Info, error) {
	normalized := normalizeName(name)
	tag, err := language.Parse(normalized)
	if err != nil {
		return nil, errors.NewFormat("locale name", name)
	}
	info := &Info{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
	info.decimalSep, info.groupSep = deriveSeparators(info.printer)
	return info, nil
}

// MustResolve is Resolve for locale names known to be valid; it panics on
// failure. Intended for package initialization.
func MustResolve(name string) *Info {
	info, err := Resolve(name)
	if err != nil {
		panic(err)
	}
	return info
}

func normalizeName(name string) string {
	if name == "" {
		return "en-US"
	}
	// POSIX locale names carry an encoding suffix and use underscores.
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	return strings.ReplaceAll(name, "_", "-")
}

// deriveSeparators discovers the locale's separators by formatting a probe
// number with grouping and a fraction and reading the non-digit runs back
// out. The run before the fraction digits is the decimal separator and the
// first run, if distinct, is the grouping separator.
func deriveSeparators(p *message.Printer) (decimalSep, groupSep string) {
	probe := p.Sprintf("%v", number.Decimal(1234567.5))
	var runs []string
	var current strings.Builder
	for _, r := range probe {
		if unicode.IsDigit(r) {
			if current.Len() > 0 {
				runs = append(runs, current.String())
				current.Reset()
			}
			continue
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		runs = append(runs, current.String())
	}
	switch len(runs) {
	case 0:
		return ".", ""
	case 1:
		return runs[0], ""
	default:
		return runs[len(runs)-1], runs[0]
	}
}

// Tag returns the resolved language tag.
func (i *Info) Tag() language.Tag { return i.tag }

// DecimalSeparator returns the locale's decimal separator.
func (i *Info) DecimalSeparator() string { return i.decimalSep }

// GroupSeparator returns the locale's digit grouping separator, or "" when
// the locale does not group digits.
func (i *Info) GroupSeparator() string { return i.groupSep }

// FormatInteger renders an integer with the locale's digit grouping.
func (i *Info) FormatInteger(v int64) string {
	return i.printer.Sprintf("%v", number.Decimal(v))
}

// FormatReal renders a real to up to 15 significant digits with the
// locale's decimal separator. Reals are not digit-grouped, and non-finite
// values keep their canonical spellings.
func (i *Info) FormatReal(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(f, 'G', 15, 64)
	if i.decimalSep != "." {
		s = strings.ReplaceAll(s, ".", i.decimalSep)
	}
	return s
}

// FormatBoolean renders a boolean. The True and False spellings are not
// localized.
func (i *Info) FormatBoolean(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// groupCharacters are separators stripped before numeric parsing in any
// locale: the locale's own group separator plus the no-break spaces some
// locales group with.
func (i *Info) stripGroups(s string) string {
	for _, sep := range []string{i.groupSep, " ", " "} {
		if sep != "" {
			s = strings.ReplaceAll(s, sep, "")
		}
	}
	return s
}

// normalizeNumber rewrites a locale-formatted number into canonical form.
func (i *Info) normalizeNumber(s string) string {
	s = i.stripGroups(strings.TrimSpace(s))
	if i.decimalSep != "." {
		s = strings.ReplaceAll(s, i.decimalSep, ".")
	}
	return s
}
