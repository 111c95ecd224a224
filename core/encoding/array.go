package encoding

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/interchange/core/errors"
)

// The bracketed array grammar. A serialized array is either a bare
// comma-separated element list, an element list wrapped in curly braces, or
// the full form with explicit dimensions:
//
//	bounds[d0,d1,...]{e0,e1,...}
//
// Elements appear in row-major order. String elements may be wrapped in
// double quotes with the usual escapes; quotes are optional for elements of
// the other types.
var (
	boundsRE = regexp.MustCompile(`(?is)^\s*bounds\s*\[(?P<bounds>[\d,\s]*)\]\s*\{(?P<values>.*)\}\s*$`)
	curlyRE  = regexp.MustCompile(`(?s)^\s*\{(?P<values>.*)\}\s*$`)

	quotedElementRE   = regexp.MustCompile(`(?s)^\s*"(?P<value>(?:[^"\\]|\\.)*)"\s*(?P<comma>,?)(?P<rest>.*)$`)
	unquotedElementRE = regexp.MustCompile(`(?s)^\s*(?P<value>[^,"]*[^,"\s])\s*(?P<comma>,?)(?P<rest>.*)$`)
)

// SplitArrayElements tokenizes a serialized array into its shape and raw
// element strings. Quoted elements have their surrounding quotes removed but
// are not unescaped. A nil shape means the input carried no bounds prefix
// and should be treated as one-dimensional.
func SplitArrayElements(s string) (shape []int, elems []string, err error) {
	if m := boundsRE.FindStringSubmatch(s); m != nil {
		return splitBounded(s, m[boundsRE.SubexpIndex("bounds")], m[boundsRE.SubexpIndex("values")])
	}
	body := s
	if m := curlyRE.FindStringSubmatch(s); m != nil {
		body = m[curlyRE.SubexpIndex("values")]
	}
	elems, err = splitFree(s, body)
	return nil, elems, err
}

// splitBounded consumes exactly the number of elements the dimensions call
// for, then requires the element list to be exhausted.
func splitBounded(input, boundsText, body string) ([]int, []string, error) {
	shape, err := parseBounds(input, boundsText)
	if err != nil {
		return nil, nil, err
	}
	want := 1
	for _, d := range shape {
		if d > 0 && want > math.MaxInt/d {
			return nil, nil, errors.NewFormat("array bounds", input)
		}
		want *= d
	}
	// Every element occupies at least one byte of the body and all but the
	// last is followed by a comma, so the declared count is bounded by the
	// input itself. This also keeps the allocation below proportional to the
	// input size.
	if want > (len(body)+1)/2 {
		return nil, nil, errors.NewFormat("array bounds", input)
	}

	elems := make([]string, 0, want)
	rest := body
	for i := 0; i < want; i++ {
		value, comma, tail, ok := nextElement(rest)
		if !ok {
			return nil, nil, errors.NewFormat("array element", input)
		}
		elems = append(elems, value)
		if i < want-1 && comma != "," {
			return nil, nil, errors.NewFormat("array element separator", input)
		}
		if i == want-1 {
			// The final element must not be followed by a comma or by
			// any residue.
			if comma == "," || strings.TrimSpace(tail) != "" {
				return nil, nil, errors.NewFormat("end of array", input)
			}
		}
		rest = tail
	}
	if want == 0 && strings.TrimSpace(rest) != "" {
		return nil, nil, errors.NewFormat("end of array", input)
	}
	return shape, elems, nil
}

// splitFree consumes elements until none match, then requires no residue.
func splitFree(input, body string) ([]string, error) {
	var elems []string
	rest := body
	for {
		value, comma, tail, ok := nextElement(rest)
		if !ok {
			break
		}
		elems = append(elems, value)
		rest = tail
		if comma != "," {
			break
		}
	}
	if strings.TrimSpace(rest) != "" {
		return nil, errors.NewFormat("array element", input)
	}
	return elems, nil
}

// nextElement matches one element at the head of s, preferring the quoted
// form. It reports the element text, the separator that followed it, and
// the unconsumed remainder.
func nextElement(s string) (value, comma, rest string, ok bool) {
	if m := quotedElementRE.FindStringSubmatch(s); m != nil {
		return m[quotedElementRE.SubexpIndex("value")],
			m[quotedElementRE.SubexpIndex("comma")],
			m[quotedElementRE.SubexpIndex("rest")],
			true
	}
	if m := unquotedElementRE.FindStringSubmatch(s); m != nil {
		return m[unquotedElementRE.SubexpIndex("value")],
			m[unquotedElementRE.SubexpIndex("comma")],
			m[unquotedElementRE.SubexpIndex("rest")],
			true
	}
	return "", "", s, false
}

func parseBounds(input, boundsText string) ([]int, error) {
	parts := strings.Split(boundsText, ",")
	shape := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, errors.NewFormat("array bounds", input)
		}
		d, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.NewFormat("array bounds", input)
		}
		shape = append(shape, d)
	}
	return shape, nil
}

// JoinArrayElements renders already-serialized elements as an array string.
// One-dimensional arrays serialize as a bare element list; higher ranks get
// the explicit bounds prefix so the shape survives a round trip.
func JoinArrayElements(shape []int, elems []string) string {
	if len(shape) <= 1 {
		return strings.Join(elems, ",")
	}
	dims := make([]string, len(shape))
	for i, d := range shape {
		dims[i] = strconv.Itoa(d)
	}
	var b strings.Builder
	b.WriteString("bounds[")
	b.WriteString(strings.Join(dims, ","))
	b.WriteString("]{")
	b.WriteString(strings.Join(elems, ","))
	b.WriteString("}")
	return b.String()
}
