package metadata

import (
	"fmt"

	"github.com/FocuswithJustin/interchange/core/values"
	"github.com/FocuswithJustin/interchange/core/vartype"
)

// Visitor computes a result from each concrete metadata kind.
type Visitor[T any] interface {
	VisitIntegerMetadata(*IntegerMetadata) (T, error)
	VisitRealMetadata(*RealMetadata) (T, error)
	VisitBooleanMetadata(*BooleanMetadata) (T, error)
	VisitStringMetadata(*StringMetadata) (T, error)
	VisitFileMetadata(*FileMetadata) (T, error)
	VisitIntegerArrayMetadata(*IntegerArrayMetadata) (T, error)
	VisitRealArrayMetadata(*RealArrayMetadata) (T, error)
	VisitBooleanArrayMetadata(*BooleanArrayMetadata) (T, error)
	VisitStringArrayMetadata(*StringArrayMetadata) (T, error)
	VisitFileArrayMetadata(*FileArrayMetadata) (T, error)
}

// Accept dispatches m to the visitor method for its concrete kind.
func Accept[T any](m Metadata, visitor Visitor[T]) (T, error) {
	switch m := m.(type) {
	case *IntegerMetadata:
		return visitor.VisitIntegerMetadata(m)
	case *RealMetadata:
		return visitor.VisitRealMetadata(m)
	case *BooleanMetadata:
		return visitor.VisitBooleanMetadata(m)
	case *StringMetadata:
		return visitor.VisitStringMetadata(m)
	case *FileMetadata:
		return visitor.VisitFileMetadata(m)
	case *IntegerArrayMetadata:
		return visitor.VisitIntegerArrayMetadata(m)
	case *RealArrayMetadata:
		return visitor.VisitRealArrayMetadata(m)
	case *BooleanArrayMetadata:
		return visitor.VisitBooleanArrayMetadata(m)
	case *StringArrayMetadata:
		return visitor.VisitStringArrayMetadata(m)
	case *FileArrayMetadata:
		return visitor.VisitFileArrayMetadata(m)
	default:
		var zero T
		return zero, fmt.Errorf("cannot dispatch on metadata of type %T", m)
	}
}

// Default constructs empty metadata for the given variable type.
func Default(t vartype.VariableType) (Metadata, error) {
	return vartype.Dispatch[Metadata](t, defaultMetadataVisitor{})
}

type defaultMetadataVisitor struct{}

func (defaultMetadataVisitor) VisitUnknown() (Metadata, error) {
	return nil, ierrUnknown()
}

func (defaultMetadataVisitor) VisitInteger() (Metadata, error) {
	return &IntegerMetadata{}, nil
}

func (defaultMetadataVisitor) VisitReal() (Metadata, error) {
	return &RealMetadata{}, nil
}

func (defaultMetadataVisitor) VisitBoolean() (Metadata, error) {
	return &BooleanMetadata{}, nil
}

func (defaultMetadataVisitor) VisitString() (Metadata, error) {
	return &StringMetadata{}, nil
}

func (defaultMetadataVisitor) VisitFile() (Metadata, error) {
	return &FileMetadata{}, nil
}

func (defaultMetadataVisitor) VisitIntegerArray() (Metadata, error) {
	return &IntegerArrayMetadata{}, nil
}

func (defaultMetadataVisitor) VisitRealArray() (Metadata, error) {
	return &RealArrayMetadata{}, nil
}

func (defaultMetadataVisitor) VisitBooleanArray() (Metadata, error) {
	return &BooleanArrayMetadata{}, nil
}

func (defaultMetadataVisitor) VisitStringArray() (Metadata, error) {
	return &StringArrayMetadata{}, nil
}

func (defaultMetadataVisitor) VisitFileArray() (Metadata, error) {
	return &FileArrayMetadata{}, nil
}

// CheckValue reports whether a value satisfies the bounds and enumerated
// value lists of the metadata describing its variable. A nil metadata or a
// metadata kind without constraints accepts everything.
func CheckValue(m Metadata, v values.Value) error {
	if m == nil {
		return nil
	}
	ok, err := Accept[bool](m, &valueChecker{value: v})
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("value %v violates the variable's metadata constraints", v)
	}
	return nil
}
