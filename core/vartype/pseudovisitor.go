package vartype

// TypeVisitor is dispatch keyed on a type tag alone, without a live value
// instance. It is used when only the tag is available, such as when building
// a default value or deciding array-ness from a declared type.
//
// Implementers that need to classify tags implement this interface once
// instead of writing an eleven-way conditional at each call site. Adding a
// method here forces every implementation to handle the new tag.
type TypeVisitor[T any] interface {
	// VisitUnknown handles the Unknown tag and any tag outside the enumeration.
	VisitUnknown() (T, error)
	VisitInteger() (T, error)
	VisitReal() (T, error)
	VisitBoolean() (T, error)
	VisitString() (T, error)
	VisitFile() (T, error)
	VisitIntegerArray() (T, error)
	VisitRealArray() (T, error)
	VisitBooleanArray() (T, error)
	VisitStringArray() (T, error)
	VisitFileArray() (T, error)
}

// Dispatch invokes exactly the one visitor method matching the tag and
// returns its result. Tags outside the enumeration dispatch to VisitUnknown.
func Dispatch[T any](t VariableType, v TypeVisitor[T]) (T, error) {
	switch t {
	case Integer:
		return v.VisitInteger()
	case Real:
		return v.VisitReal()
	case Boolean:
		return v.VisitBoolean()
	case String:
		return v.VisitString()
	case File:
		return v.VisitFile()
	case IntegerArray:
		return v.VisitIntegerArray()
	case RealArray:
		return v.VisitRealArray()
	case BooleanArray:
		return v.VisitBooleanArray()
	case StringArray:
		return v.VisitStringArray()
	case FileArray:
		return v.VisitFileArray()
	default:
		return v.VisitUnknown()
	}
}
