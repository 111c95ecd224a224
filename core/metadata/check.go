package metadata

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/FocuswithJustin/interchange/core/errors"
	"github.com/FocuswithJustin/interchange/core/values"
)

func ierrUnknown() error {
	return errors.NewUnknownType("construct metadata for an unknown type")
}

func typeMismatch(m Metadata, v values.Value) error {
	return fmt.Errorf("metadata for %s cannot check a %s value", m.Type(), v.Type())
}

// valueChecker tests one value against the constraints of one metadata kind.
type valueChecker struct {
	value values.Value
}

func (c *valueChecker) VisitIntegerMetadata(m *IntegerMetadata) (bool, error) {
	v, ok := c.value.(values.IntegerValue)
	if !ok {
		return false, typeMismatch(m, c.value)
	}
	return inDomain(int64(v), m.LowerBound, m.UpperBound, m.EnumeratedValues), nil
}

func (c *valueChecker) VisitRealMetadata(m *RealMetadata) (bool, error) {
	v, ok := c.value.(values.RealValue)
	if !ok {
		return false, typeMismatch(m, c.value)
	}
	return inDomain(float64(v), m.LowerBound, m.UpperBound, m.EnumeratedValues), nil
}

func (c *valueChecker) VisitBooleanMetadata(m *BooleanMetadata) (bool, error) {
	if _, ok := c.value.(values.BooleanValue); !ok {
		return false, typeMismatch(m, c.value)
	}
	return true, nil
}

func (c *valueChecker) VisitStringMetadata(m *StringMetadata) (bool, error) {
	v, ok := c.value.(values.StringValue)
	if !ok {
		return false, typeMismatch(m, c.value)
	}
	return len(m.EnumeratedValues) == 0 || slices.Contains(m.EnumeratedValues, string(v)), nil
}

func (c *valueChecker) VisitFileMetadata(m *FileMetadata) (bool, error) {
	if _, ok := c.value.(values.FileValue); !ok {
		return false, typeMismatch(m, c.value)
	}
	return true, nil
}

func (c *valueChecker) VisitIntegerArrayMetadata(m *IntegerArrayMetadata) (bool, error) {
	a, ok := c.value.(*values.IntegerArrayValue)
	if !ok {
		return false, typeMismatch(m, c.value)
	}
	for i := 0; i < a.Len(); i++ {
		if !inDomain(a.At(i), m.LowerBound, m.UpperBound, m.EnumeratedValues) {
			return false, nil
		}
	}
	return true, nil
}

func (c *valueChecker) VisitRealArrayMetadata(m *RealArrayMetadata) (bool, error) {
	a, ok := c.value.(*values.RealArrayValue)
	if !ok {
		return false, typeMismatch(m, c.value)
	}
	for i := 0; i < a.Len(); i++ {
		if !inDomain(a.At(i), m.LowerBound, m.UpperBound, m.EnumeratedValues) {
			return false, nil
		}
	}
	return true, nil
}

func (c *valueChecker) VisitBooleanArrayMetadata(m *BooleanArrayMetadata) (bool, error) {
	if _, ok := c.value.(*values.BooleanArrayValue); !ok {
		return false, typeMismatch(m, c.value)
	}
	return true, nil
}

func (c *valueChecker) VisitStringArrayMetadata(m *StringArrayMetadata) (bool, error) {
	a, ok := c.value.(*values.StringArrayValue)
	if !ok {
		return false, typeMismatch(m, c.value)
	}
	if len(m.EnumeratedValues) == 0 {
		return true, nil
	}
	for i := 0; i < a.Len(); i++ {
		if !slices.Contains(m.EnumeratedValues, a.At(i)) {
			return false, nil
		}
	}
	return true, nil
}

func (c *valueChecker) VisitFileArrayMetadata(m *FileArrayMetadata) (bool, error) {
	if _, ok := c.value.(*values.FileArrayValue); !ok {
		return false, typeMismatch(m, c.value)
	}
	return true, nil
}

// inDomain reports whether v satisfies inclusive bounds and, when present,
// membership in the enumerated value list.
func inDomain[T cmp.Ordered](v T, lo, hi *T, enum []T) bool {
	if lo != nil && v < *lo {
		return false
	}
	if hi != nil && v > *hi {
		return false
	}
	return len(enum) == 0 || slices.Contains(enum, v)
}
