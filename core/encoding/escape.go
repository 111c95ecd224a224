// Package encoding implements the canonical, locale-invariant string codec
// for interchange values: scalar formatting and parsing, the bracketed array
// grammar, and whole-value API string serialization.
package encoding

import "strings"

// escaper rewrites the characters that cannot appear raw inside a quoted
// string element. Backslash must be first so escape markers produced by the
// later pairs are not themselves escaped.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	`"`, `\"`,
	"\x00", `\0`,
)

// EscapeString escapes backslashes, newlines, carriage returns, tabs, double
// quotes and NUL bytes so the result can be embedded in a quoted element.
func EscapeString(s string) string {
	return escaper.Replace(s)
}

// UnescapeString reverses EscapeString. An unrecognized escape sequence is
// not an error: the backslash is dropped and the following character kept,
// so unescaping is lossy for strings that were never escaped. A backslash
// with nothing after it is likewise dropped.
func UnescapeString(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i == len(s)-1 {
			break
		}
		i++
		switch s[i] {
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '"':
			b.WriteByte('"')
		case '0':
			b.WriteByte(0)
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
