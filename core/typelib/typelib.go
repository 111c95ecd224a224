// Package typelib answers which variable types may be linked together and
// performs the runtime conversions those links imply. Linking is directional:
// a source variable feeds a destination variable, and the rules say whether
// the destination can always represent the source (allowed), whether
// precision can be lost (lossy), and whether individual values can still be
// rejected at runtime (runtime checked).
package typelib

import (
	"github.com/FocuswithJustin/interchange/core/convert"
	"github.com/FocuswithJustin/interchange/core/errors"
	"github.com/FocuswithJustin/interchange/core/values"
	"github.com/FocuswithJustin/interchange/core/vartype"
)

// Compatibility describes one direction of a link between two types.
type Compatibility struct {
	// Allowed reports whether the link may be made at all.
	Allowed bool
	// Lossy reports whether the conversion can lose information even when
	// it succeeds, as when narrowing a real to an integer.
	Lossy bool
	// RuntimeChecked reports whether individual values can still fail to
	// convert, as when parsing strings or range-checking reals.
	RuntimeChecked bool
}

type typePair struct {
	src, dst vartype.VariableType
}

// scalarRules is the directional compatibility table for scalar types.
// Identity pairs are handled before the table is consulted.
var scalarRules = map[typePair]Compatibility{
	{vartype.Boolean, vartype.Integer}: {Allowed: true},
	{vartype.Boolean, vartype.Real}:    {Allowed: true},
	{vartype.Boolean, vartype.String}:  {Allowed: true},

	{vartype.Integer, vartype.Boolean}: {Allowed: true, Lossy: true},
	{vartype.Integer, vartype.Real}:    {Allowed: true, Lossy: true},
	{vartype.Integer, vartype.String}:  {Allowed: true},

	{vartype.Real, vartype.Boolean}: {Allowed: true, Lossy: true},
	{vartype.Real, vartype.Integer}: {Allowed: true, Lossy: true, RuntimeChecked: true},
	{vartype.Real, vartype.String}:  {Allowed: true},

	{vartype.String, vartype.Boolean}: {Allowed: true, RuntimeChecked: true},
	{vartype.String, vartype.Integer}: {Allowed: true, RuntimeChecked: true},
	{vartype.String, vartype.Real}:    {Allowed: true, RuntimeChecked: true},
	{vartype.String, vartype.File}:    {Allowed: true},

	{vartype.File, vartype.String}: {Allowed: true, RuntimeChecked: true},
}

// Compatible reports the compatibility of linking a source type to a
// destination type. Scalars never link to arrays or vice versa; arrays link
// exactly when their element types do.
func Compatible(src, dst vartype.VariableType) Compatibility {
	if !src.IsValid() || !dst.IsValid() || src == vartype.Unknown || dst == vartype.Unknown {
		return Compatibility{}
	}
	if src == dst {
		return Compatibility{Allowed: true}
	}
	srcArray, dstArray := vartype.IsArray(src), vartype.IsArray(dst)
	if srcArray != dstArray {
		return Compatibility{}
	}
	if srcArray {
		srcElem, err := vartype.ElementType(src)
		if err != nil {
			return Compatibility{}
		}
		dstElem, err := vartype.ElementType(dst)
		if err != nil {
			return Compatibility{}
		}
		return Compatible(srcElem, dstElem)
	}
	return scalarRules[typePair{src, dst}]
}

// IsLinkingAllowed reports whether a variable of type src may feed a
// variable of type dst.
func IsLinkingAllowed(src, dst vartype.VariableType) bool {
	return Compatible(src, dst).Allowed
}

// Library decides linking compatibility and converts linked values.
type Library interface {
	// Identifier names the rule set.
	Identifier() string
	// Compatibility reports how src links to dst under this library.
	Compatibility(src, dst vartype.VariableType) Compatibility
	// RuntimeConvert converts a linked value to the destination type,
	// applying the runtime checks the compatibility table promises.
	RuntimeConvert(v values.Value, dst vartype.VariableType) (values.Value, error)
}

// UniformLibrary is the standard rule set: every conforming implementation
// applies the same table, so two systems always agree on which links are
// legal.
type UniformLibrary struct{}

func (UniformLibrary) Identifier() string { return "interchange.uniform" }

func (UniformLibrary) Compatibility(src, dst vartype.VariableType) Compatibility {
	return Compatible(src, dst)
}

func (UniformLibrary) RuntimeConvert(v values.Value, dst vartype.VariableType) (values.Value, error) {
	c := Compatible(v.Type(), dst)
	if !c.Allowed {
		return nil, errors.NewIncompatibleTypes(v.Type().String(), dst.String())
	}
	if v.Type() == dst {
		return v, nil
	}
	if dst == vartype.File || dst == vartype.FileArray ||
		v.Type() == vartype.File || v.Type() == vartype.FileArray {
		// File links move content, not just values, and need a file scope.
		return nil, errors.NewUnsupported("file link conversion", "converting file links requires a file scope")
	}
	return convert.To(v, dst)
}
