package typelib

import (
	"errors"
	"testing"

	ierrors "github.com/FocuswithJustin/interchange/core/errors"
	"github.com/FocuswithJustin/interchange/core/values"
	"github.com/FocuswithJustin/interchange/core/vartype"
)

func TestCompatible(t *testing.T) {
	tests := []struct {
		name string
		src  vartype.VariableType
		dst  vartype.VariableType
		want Compatibility
	}{
		{"identity scalar", vartype.Real, vartype.Real, Compatibility{Allowed: true}},
		{"identity array", vartype.FileArray, vartype.FileArray, Compatibility{Allowed: true}},
		{"boolean to integer", vartype.Boolean, vartype.Integer, Compatibility{Allowed: true}},
		{"boolean to string", vartype.Boolean, vartype.String, Compatibility{Allowed: true}},
		{"integer to real is lossy", vartype.Integer, vartype.Real, Compatibility{Allowed: true, Lossy: true}},
		{"integer to boolean is lossy", vartype.Integer, vartype.Boolean, Compatibility{Allowed: true, Lossy: true}},
		{"real to integer", vartype.Real, vartype.Integer, Compatibility{Allowed: true, Lossy: true, RuntimeChecked: true}},
		{"string to real", vartype.String, vartype.Real, Compatibility{Allowed: true, RuntimeChecked: true}},
		{"string to file", vartype.String, vartype.File, Compatibility{Allowed: true}},
		{"file to string", vartype.File, vartype.String, Compatibility{Allowed: true, RuntimeChecked: true}},
		{"file to integer disallowed", vartype.File, vartype.Integer, Compatibility{}},
		{"boolean to file disallowed", vartype.Boolean, vartype.File, Compatibility{}},
		{"scalar to array disallowed", vartype.Integer, vartype.IntegerArray, Compatibility{}},
		{"array to scalar disallowed", vartype.RealArray, vartype.Real, Compatibility{}},
		{"arrays follow element rules", vartype.RealArray, vartype.IntegerArray, Compatibility{Allowed: true, Lossy: true, RuntimeChecked: true}},
		{"boolean array to string array", vartype.BooleanArray, vartype.StringArray, Compatibility{Allowed: true}},
		{"file array to integer array disallowed", vartype.FileArray, vartype.IntegerArray, Compatibility{}},
		{"unknown source disallowed", vartype.Unknown, vartype.Integer, Compatibility{}},
		{"unknown destination disallowed", vartype.Integer, vartype.Unknown, Compatibility{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compatible(tt.src, tt.dst); got != tt.want {
				t.Errorf("Compatible(%v, %v) = %+v, want %+v", tt.src, tt.dst, got, tt.want)
			}
		})
	}
}

func TestIsLinkingAllowedIsAsymmetric(t *testing.T) {
	// string feeds file but the allowed direction does not imply the
	// reverse carries the same flags.
	if !IsLinkingAllowed(vartype.String, vartype.File) {
		t.Error("string to file should be allowed")
	}
	if !IsLinkingAllowed(vartype.File, vartype.String) {
		t.Error("file to string should be allowed")
	}
	if IsLinkingAllowed(vartype.File, vartype.Real) {
		t.Error("file to real should not be allowed")
	}
}

func TestUniformLibraryRuntimeConvert(t *testing.T) {
	var lib UniformLibrary

	if lib.Identifier() == "" {
		t.Error("library identifier must not be empty")
	}

	t.Run("identity", func(t *testing.T) {
		v := values.RealValue(2.5)
		got, err := lib.RuntimeConvert(v, vartype.Real)
		if err != nil {
			t.Fatalf("RuntimeConvert failed: %v", err)
		}
		if !got.Equal(v) {
			t.Errorf("RuntimeConvert = %v, want %v", got, v)
		}
	})

	t.Run("allowed conversion", func(t *testing.T) {
		got, err := lib.RuntimeConvert(values.RealValue(3.7), vartype.Integer)
		if err != nil {
			t.Fatalf("RuntimeConvert failed: %v", err)
		}
		if !got.Equal(values.IntegerValue(3)) {
			t.Errorf("RuntimeConvert = %v, want 3", got)
		}
	})

	t.Run("runtime check fails", func(t *testing.T) {
		if _, err := lib.RuntimeConvert(values.StringValue("abc"), vartype.Integer); !errors.Is(err, ierrors.ErrFormat) {
			t.Errorf("error = %v, want ErrFormat", err)
		}
	})

	t.Run("disallowed link", func(t *testing.T) {
		if _, err := lib.RuntimeConvert(values.NewRealArray1D(1), vartype.Real); !errors.Is(err, ierrors.ErrIncompatibleTypes) {
			t.Errorf("error = %v, want ErrIncompatibleTypes", err)
		}
	})

	t.Run("elementwise array conversion", func(t *testing.T) {
		got, err := lib.RuntimeConvert(values.NewStringArray1D("1", "2"), vartype.IntegerArray)
		if err != nil {
			t.Fatalf("RuntimeConvert failed: %v", err)
		}
		if !got.Equal(values.NewIntegerArray1D(1, 2)) {
			t.Errorf("RuntimeConvert = %v", got)
		}
	})

	t.Run("file links need a scope", func(t *testing.T) {
		if _, err := lib.RuntimeConvert(values.StringValue("path"), vartype.File); !errors.Is(err, ierrors.ErrUnsupported) {
			t.Errorf("error = %v, want ErrUnsupported", err)
		}
	})
}
