// Package vartype defines the closed set of variable type tags used by the
// interchange core, along with tag-only dispatch and scalar/array type mapping.
package vartype

import "strings"

// VariableType identifies the concrete shape of a variable value.
//
// The set is closed: every value and metadata object in the core carries
// exactly one of these tags. When editing this enumeration, be sure to also
// update the TypeVisitor interface and its dispatch accordingly.
type VariableType int

const (
	// Unknown is the absent or undetermined type. It has no value representation.
	Unknown VariableType = iota
	// Integer values are stored as 64-bit signed integers.
	Integer
	// Real values are stored as 64-bit floating point numbers.
	Real
	// Boolean values.
	Boolean
	// String values.
	String
	// File values reference externally stored content.
	File
	// IntegerArray is a rectangular, possibly multidimensional array of integers.
	IntegerArray
	// RealArray is a rectangular, possibly multidimensional array of reals.
	RealArray
	// BooleanArray is a rectangular, possibly multidimensional array of booleans.
	BooleanArray
	// StringArray is a rectangular, possibly multidimensional array of strings.
	StringArray
	// FileArray is a rectangular, possibly multidimensional array of file values.
	FileArray
)

// typeNames maps each tag to its canonical display name.
var typeNames = map[VariableType]string{
	Unknown:      "unknown",
	Integer:      "integer",
	Real:         "real",
	Boolean:      "boolean",
	String:       "string",
	File:         "file",
	IntegerArray: "integer[]",
	RealArray:    "real[]",
	BooleanArray: "boolean[]",
	StringArray:  "string[]",
	FileArray:    "file[]",
}

// String returns the canonical display name of the type.
func (t VariableType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsValid returns true if the tag is a member of the enumeration.
func (t VariableType) IsValid() bool {
	_, ok := typeNames[t]
	return ok
}

// typeAliases maps accepted spellings to type tags. Lookups are
// case-insensitive and ignore surrounding whitespace.
var typeAliases = map[string]VariableType{
	"int":       Integer,
	"integer":   Integer,
	"long":      Integer,
	"real":      Real,
	"double":    Real,
	"float":     Real,
	"bool":      Boolean,
	"boolean":   Boolean,
	"str":       String,
	"string":    String,
	"file":      File,
	"int[]":     IntegerArray,
	"integer[]": IntegerArray,
	"long[]":    IntegerArray,
	"real[]":    RealArray,
	"double[]":  RealArray,
	"float[]":   RealArray,
	"bool[]":    BooleanArray,
	"boolean[]": BooleanArray,
	"str[]":     StringArray,
	"string[]":  StringArray,
	"file[]":    FileArray,
}

// FromString resolves a type name to its tag. Recognized spellings include
// "int", "integer", "long", "real", "double", "float", "bool", "boolean",
// "str", "string", "file" and their "[]"-suffixed array forms. Unrecognized
// names resolve to Unknown.
func FromString(s string) VariableType {
	if t, ok := typeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t
	}
	return Unknown
}

// apiNames maps each tag to the name used by external type libraries.
var apiNames = map[VariableType]string{
	Unknown:      "none",
	Integer:      "int",
	Real:         "double",
	Boolean:      "bool",
	String:       "string",
	File:         "file",
	IntegerArray: "int[]",
	RealArray:    "double[]",
	BooleanArray: "bool[]",
	StringArray:  "string[]",
	FileArray:    "file[]",
}

// APIName returns the name used for this type by external type libraries.
func (t VariableType) APIName() string {
	if name, ok := apiNames[t]; ok {
		return name
	}
	return "none"
}
