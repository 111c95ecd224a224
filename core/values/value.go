// Package values defines the canonical in-memory representations of variable
// values: the five scalar kinds, their rectangular array counterparts, and
// the visitor dispatch used to operate on them without per-pair type switches.
//
// All value types are immutable after construction. Clone produces an
// independent deep copy; no value shares mutable state with another.
package values

import (
	"fmt"

	"github.com/FocuswithJustin/interchange/core/vartype"
)

// Value is the capability shared by every variable value.
type Value interface {
	// Type returns the tag identifying the concrete shape of the value.
	Type() vartype.VariableType
	// Clone returns an independent deep copy of the value.
	Clone() Value
	// Equal reports whether the other value has the same type and content.
	Equal(other Value) bool
}

// Visitor is double dispatch over the closed set of value types, one method
// per concrete type. Live values are never untyped, so there is no method
// for the Unknown tag.
//
// Every new visitor must implement every method; a missing method is a
// compile error, which prevents silently unhandled variants.
type Visitor[T any] interface {
	VisitInteger(IntegerValue) (T, error)
	VisitReal(RealValue) (T, error)
	VisitBoolean(BooleanValue) (T, error)
	VisitString(StringValue) (T, error)
	VisitFile(FileValue) (T, error)
	VisitIntegerArray(*IntegerArrayValue) (T, error)
	VisitRealArray(*RealArrayValue) (T, error)
	VisitBooleanArray(*BooleanArrayValue) (T, error)
	VisitStringArray(*StringArrayValue) (T, error)
	VisitFileArray(*FileArrayValue) (T, error)
}

// Accept routes the value to the single visitor method matching its concrete
// type and returns that method's result.
func Accept[T any](v Value, visitor Visitor[T]) (T, error) {
	switch c := v.(type) {
	case IntegerValue:
		return visitor.VisitInteger(c)
	case RealValue:
		return visitor.VisitReal(c)
	case BooleanValue:
		return visitor.VisitBoolean(c)
	case StringValue:
		return visitor.VisitString(c)
	case FileValue:
		return visitor.VisitFile(c)
	case *IntegerArrayValue:
		return visitor.VisitIntegerArray(c)
	case *RealArrayValue:
		return visitor.VisitRealArray(c)
	case *BooleanArrayValue:
		return visitor.VisitBooleanArray(c)
	case *StringArrayValue:
		return visitor.VisitStringArray(c)
	case *FileArrayValue:
		return visitor.VisitFileArray(c)
	default:
		var zero T
		return zero, fmt.Errorf("cannot dispatch on value of type %T", v)
	}
}
