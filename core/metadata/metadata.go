// Package metadata models the descriptive information attached to
// interchange variables: descriptions, custom fields, units, display hints,
// numeric bounds and enumerated value lists.
package metadata

import (
	"maps"
	"slices"

	"github.com/FocuswithJustin/interchange/core/errors"
	"github.com/FocuswithJustin/interchange/core/values"
	"github.com/FocuswithJustin/interchange/core/vartype"
)

// Metadata is implemented by the per-type metadata structs.
type Metadata interface {
	// Type returns the variable type this metadata describes.
	Type() vartype.VariableType
	// Clone returns a deep copy.
	Clone() Metadata
	// Equal reports whether other describes the same metadata.
	Equal(other Metadata) bool
	// Validate checks internal consistency.
	Validate() error
}

// Common carries the fields every variable type's metadata has: a
// description and a free-form bag of custom fields holding interchange
// values.
type Common struct {
	Description string
	Custom      map[string]values.Value
}

func (c *Common) cloneInto(dst *Common) {
	dst.Description = c.Description
	if c.Custom != nil {
		dst.Custom = make(map[string]values.Value, len(c.Custom))
		for k, v := range c.Custom {
			dst.Custom[k] = v.Clone()
		}
	}
}

func (c *Common) equal(other *Common) bool {
	if c.Description != other.Description {
		return false
	}
	return maps.EqualFunc(c.Custom, other.Custom, func(a, b values.Value) bool {
		return a.Equal(b)
	})
}

// Numeric extends Common with the fields shared by integer and real
// metadata.
type Numeric struct {
	Common
	Units         string
	DisplayFormat string
}

func (n *Numeric) cloneInto(dst *Numeric) {
	n.Common.cloneInto(&dst.Common)
	dst.Units = n.Units
	dst.DisplayFormat = n.DisplayFormat
}

func (n *Numeric) equal(other *Numeric) bool {
	return n.Units == other.Units &&
		n.DisplayFormat == other.DisplayFormat &&
		n.Common.equal(&other.Common)
}

// IntegerMetadata describes integer variables: optional inclusive bounds
// and an optional list of permitted values with display aliases.
type IntegerMetadata struct {
	Numeric
	LowerBound        *int64
	UpperBound        *int64
	EnumeratedValues  []int64
	EnumeratedAliases []string
}

func (m *IntegerMetadata) Type() vartype.VariableType { return vartype.Integer }

func (m *IntegerMetadata) Clone() Metadata {
	out := &IntegerMetadata{}
	m.cloneIntegerInto(out)
	return out
}

func (m *IntegerMetadata) cloneIntegerInto(out *IntegerMetadata) {
	m.Numeric.cloneInto(&out.Numeric)
	out.LowerBound = clonePtr(m.LowerBound)
	out.UpperBound = clonePtr(m.UpperBound)
	out.EnumeratedValues = slices.Clone(m.EnumeratedValues)
	out.EnumeratedAliases = slices.Clone(m.EnumeratedAliases)
}

func (m *IntegerMetadata) Equal(other Metadata) bool {
	o, ok := other.(*IntegerMetadata)
	return ok && m.equalInteger(o)
}

func (m *IntegerMetadata) equalInteger(o *IntegerMetadata) bool {
	return ptrEqual(m.LowerBound, o.LowerBound) &&
		ptrEqual(m.UpperBound, o.UpperBound) &&
		slices.Equal(m.EnumeratedValues, o.EnumeratedValues) &&
		slices.Equal(m.EnumeratedAliases, o.EnumeratedAliases) &&
		m.Numeric.equal(&o.Numeric)
}

func (m *IntegerMetadata) Validate() error {
	if m.LowerBound != nil && m.UpperBound != nil && *m.LowerBound > *m.UpperBound {
		return errors.NewInvalidValue("lower bound exceeds upper bound")
	}
	return validateAliases(len(m.EnumeratedValues), len(m.EnumeratedAliases))
}

// RealMetadata describes real variables.
type RealMetadata struct {
	Numeric
	LowerBound        *float64
	UpperBound        *float64
	EnumeratedValues  []float64
	EnumeratedAliases []string
}

func (m *RealMetadata) Type() vartype.VariableType { return vartype.Real }

func (m *RealMetadata) Clone() Metadata {
	out := &RealMetadata{}
	m.cloneRealInto(out)
	return out
}

func (m *RealMetadata) cloneRealInto(out *RealMetadata) {
	m.Numeric.cloneInto(&out.Numeric)
	out.LowerBound = clonePtr(m.LowerBound)
	out.UpperBound = clonePtr(m.UpperBound)
	out.EnumeratedValues = slices.Clone(m.EnumeratedValues)
	out.EnumeratedAliases = slices.Clone(m.EnumeratedAliases)
}

func (m *RealMetadata) Equal(other Metadata) bool {
	o, ok := other.(*RealMetadata)
	return ok && m.equalReal(o)
}

func (m *RealMetadata) equalReal(o *RealMetadata) bool {
	return ptrEqual(m.LowerBound, o.LowerBound) &&
		ptrEqual(m.UpperBound, o.UpperBound) &&
		slices.Equal(m.EnumeratedValues, o.EnumeratedValues) &&
		slices.Equal(m.EnumeratedAliases, o.EnumeratedAliases) &&
		m.Numeric.equal(&o.Numeric)
}

func (m *RealMetadata) Validate() error {
	if m.LowerBound != nil && m.UpperBound != nil && *m.LowerBound > *m.UpperBound {
		return errors.NewInvalidValue("lower bound exceeds upper bound")
	}
	return validateAliases(len(m.EnumeratedValues), len(m.EnumeratedAliases))
}

// BooleanMetadata describes boolean variables.
type BooleanMetadata struct {
	Common
}

func (m *BooleanMetadata) Type() vartype.VariableType { return vartype.Boolean }

func (m *BooleanMetadata) Clone() Metadata {
	out := &BooleanMetadata{}
	m.Common.cloneInto(&out.Common)
	return out
}

func (m *BooleanMetadata) Equal(other Metadata) bool {
	o, ok := other.(*BooleanMetadata)
	return ok && m.Common.equal(&o.Common)
}

func (m *BooleanMetadata) Validate() error { return nil }

// StringMetadata describes string variables: an optional list of permitted
// values with display aliases.
type StringMetadata struct {
	Common
	EnumeratedValues  []string
	EnumeratedAliases []string
}

func (m *StringMetadata) Type() vartype.VariableType { return vartype.String }

func (m *StringMetadata) Clone() Metadata {
	out := &StringMetadata{}
	m.cloneStringInto(out)
	return out
}

func (m *StringMetadata) cloneStringInto(out *StringMetadata) {
	m.Common.cloneInto(&out.Common)
	out.EnumeratedValues = slices.Clone(m.EnumeratedValues)
	out.EnumeratedAliases = slices.Clone(m.EnumeratedAliases)
}

func (m *StringMetadata) Equal(other Metadata) bool {
	o, ok := other.(*StringMetadata)
	return ok && m.equalString(o)
}

func (m *StringMetadata) equalString(o *StringMetadata) bool {
	return slices.Equal(m.EnumeratedValues, o.EnumeratedValues) &&
		slices.Equal(m.EnumeratedAliases, o.EnumeratedAliases) &&
		m.Common.equal(&o.Common)
}

func (m *StringMetadata) Validate() error {
	return validateAliases(len(m.EnumeratedValues), len(m.EnumeratedAliases))
}

// FileMetadata describes file variables.
type FileMetadata struct {
	Common
}

func (m *FileMetadata) Type() vartype.VariableType { return vartype.File }

func (m *FileMetadata) Clone() Metadata {
	out := &FileMetadata{}
	m.Common.cloneInto(&out.Common)
	return out
}

func (m *FileMetadata) Equal(other Metadata) bool {
	o, ok := other.(*FileMetadata)
	return ok && m.Common.equal(&o.Common)
}

func (m *FileMetadata) Validate() error { return nil }

// Array metadata reuses the scalar metadata of the element type; bounds and
// enumerated values apply elementwise.

// IntegerArrayMetadata describes integer array variables.
type IntegerArrayMetadata struct {
	IntegerMetadata
}

func (m *IntegerArrayMetadata) Type() vartype.VariableType { return vartype.IntegerArray }

func (m *IntegerArrayMetadata) Clone() Metadata {
	out := &IntegerArrayMetadata{}
	m.cloneIntegerInto(&out.IntegerMetadata)
	return out
}

func (m *IntegerArrayMetadata) Equal(other Metadata) bool {
	o, ok := other.(*IntegerArrayMetadata)
	return ok && m.equalInteger(&o.IntegerMetadata)
}

// RealArrayMetadata describes real array variables.
type RealArrayMetadata struct {
	RealMetadata
}

func (m *RealArrayMetadata) Type() vartype.VariableType { return vartype.RealArray }

func (m *RealArrayMetadata) Clone() Metadata {
	out := &RealArrayMetadata{}
	m.cloneRealInto(&out.RealMetadata)
	return out
}

func (m *RealArrayMetadata) Equal(other Metadata) bool {
	o, ok := other.(*RealArrayMetadata)
	return ok && m.equalReal(&o.RealMetadata)
}

// BooleanArrayMetadata describes boolean array variables.
type BooleanArrayMetadata struct {
	BooleanMetadata
}

func (m *BooleanArrayMetadata) Type() vartype.VariableType { return vartype.BooleanArray }

func (m *BooleanArrayMetadata) Clone() Metadata {
	out := &BooleanArrayMetadata{}
	m.Common.cloneInto(&out.Common)
	return out
}

func (m *BooleanArrayMetadata) Equal(other Metadata) bool {
	o, ok := other.(*BooleanArrayMetadata)
	return ok && m.Common.equal(&o.Common)
}

// StringArrayMetadata describes string array variables.
type StringArrayMetadata struct {
	StringMetadata
}

func (m *StringArrayMetadata) Type() vartype.VariableType { return vartype.StringArray }

func (m *StringArrayMetadata) Clone() Metadata {
	out := &StringArrayMetadata{}
	m.cloneStringInto(&out.StringMetadata)
	return out
}

func (m *StringArrayMetadata) Equal(other Metadata) bool {
	o, ok := other.(*StringArrayMetadata)
	return ok && m.equalString(&o.StringMetadata)
}

// FileArrayMetadata describes file array variables.
type FileArrayMetadata struct {
	FileMetadata
}

func (m *FileArrayMetadata) Type() vartype.VariableType { return vartype.FileArray }

func (m *FileArrayMetadata) Clone() Metadata {
	out := &FileArrayMetadata{}
	m.Common.cloneInto(&out.Common)
	return out
}

func (m *FileArrayMetadata) Equal(other Metadata) bool {
	o, ok := other.(*FileArrayMetadata)
	return ok && m.Common.equal(&o.Common)
}

func validateAliases(nValues, nAliases int) error {
	if nAliases != 0 && nAliases != nValues {
		return errors.NewInvalidValue("enumerated aliases must match enumerated values in length")
	}
	return nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
