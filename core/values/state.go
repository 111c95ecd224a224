package values

import "github.com/FocuswithJustin/interchange/core/errors"

// State pairs a value with a validity flag. It propagates "value present but
// known invalid" without conflating that with absence.
type State struct {
	value   Value
	isValid bool
}

// NewState wraps a value with its validity flag.
func NewState(value Value, isValid bool) State {
	return State{value: value, isValid: isValid}
}

// Value returns the wrapped value regardless of validity.
func (s State) Value() Value { return s.value }

// IsValid reports whether the wrapped value is known to be valid.
func (s State) IsValid() bool { return s.isValid }

// SafeValue returns the wrapped value, or ErrInvalidValue when the value is
// flagged as invalid.
func (s State) SafeValue() (Value, error) {
	if !s.isValid {
		return nil, errors.ErrInvalidValue
	}
	return s.value, nil
}

// Equal reports whether other wraps an equal value with the same validity.
func (s State) Equal(other State) bool {
	if s.isValid != other.isValid {
		return false
	}
	if s.value == nil || other.value == nil {
		return s.value == nil && other.value == nil
	}
	return s.value.Equal(other.value)
}

// Clone returns a new state wrapping an independently cloned value.
func (s State) Clone() State {
	if s.value == nil {
		return State{isValid: s.isValid}
	}
	return State{value: s.value.Clone(), isValid: s.isValid}
}
