package convert

import (
	"errors"
	"math"
	"testing"

	ierrors "github.com/FocuswithJustin/interchange/core/errors"
	"github.com/FocuswithJustin/interchange/core/values"
	"github.com/FocuswithJustin/interchange/core/vartype"
)

func TestToInteger(t *testing.T) {
	tests := []struct {
		name string
		in   values.Value
		want int64
	}{
		{"identity", values.IntegerValue(-47), -47},
		{"real truncates toward zero", values.RealValue(3.7), 3},
		{"negative real truncates toward zero", values.RealValue(-3.7), -3},
		{"boolean true", values.BooleanValue(true), 1},
		{"boolean false", values.BooleanValue(false), 0},
		{"string", values.StringValue("42"), 42},
		{"string in real form", values.StringValue("2.5"), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToInteger(tt.in)
			if err != nil {
				t.Fatalf("ToInteger failed: %v", err)
			}
			if int64(got) != tt.want {
				t.Errorf("ToInteger = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestToIntegerErrors(t *testing.T) {
	tests := []struct {
		name string
		in   values.Value
		want error
	}{
		{"bad string", values.StringValue("abc"), ierrors.ErrFormat},
		{"real overflow", values.RealValue(1e19), ierrors.ErrOverflow},
		{"nan", values.RealValue(math.NaN()), ierrors.ErrOverflow},
		{"file", values.EmptyFile(), ierrors.ErrIncompatibleTypes},
		{"array", values.NewIntegerArray1D(1, 2), ierrors.ErrIncompatibleTypes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ToInteger(tt.in); !errors.Is(err, tt.want) {
				t.Errorf("ToInteger error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestToReal(t *testing.T) {
	tests := []struct {
		name string
		in   values.Value
		want float64
	}{
		{"identity", values.RealValue(3.2), 3.2},
		{"integer widens", values.IntegerValue(47), 47},
		{"boolean", values.BooleanValue(true), 1},
		{"string", values.StringValue("-1.5e2"), -150},
		{"string infinity", values.StringValue("Infinity"), math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToReal(tt.in)
			if err != nil {
				t.Fatalf("ToReal failed: %v", err)
			}
			if float64(got) != tt.want {
				t.Errorf("ToReal = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := ToReal(values.NewRealArray1D(1)); !errors.Is(err, ierrors.ErrIncompatibleTypes) {
		t.Errorf("ToReal(array) error = %v, want ErrIncompatibleTypes", err)
	}
}

func TestToBoolean(t *testing.T) {
	tests := []struct {
		name string
		in   values.Value
		want bool
	}{
		{"identity", values.BooleanValue(true), true},
		{"integer nonzero", values.IntegerValue(-5), true},
		{"integer zero", values.IntegerValue(0), false},
		{"real nonzero", values.RealValue(0.001), true},
		{"real zero", values.RealValue(0), false},
		{"string token", values.StringValue("yes"), true},
		{"string numeric", values.StringValue("0.0"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToBoolean(tt.in)
			if err != nil {
				t.Fatalf("ToBoolean failed: %v", err)
			}
			if bool(got) != tt.want {
				t.Errorf("ToBoolean = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := ToBoolean(values.StringValue("maybe")); !errors.Is(err, ierrors.ErrFormat) {
		t.Errorf("ToBoolean(maybe) error = %v, want ErrFormat", err)
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   values.Value
		want string
	}{
		{"identity", values.StringValue("x"), "x"},
		{"integer", values.IntegerValue(-47), "-47"},
		{"real shortest form", values.RealValue(3.2), "3.2"},
		{"real negative infinity", values.RealValue(math.Inf(-1)), "-Infinity"},
		{"boolean", values.BooleanValue(false), "False"},
		{"integer array", values.NewIntegerArray1D(1, 2, 3), "1,2,3"},
		{"boolean array", values.NewBooleanArray1D(true, false), "True,False"},
		{"string array quoting", values.NewStringArray1D(`a,b`), `"a,b"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToString(tt.in)
			if err != nil {
				t.Fatalf("ToString failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("ToString = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("2d array keeps bounds", func(t *testing.T) {
		a, err := values.NewRealArray([]int{2, 2}, []float64{1.5, 2, 3, 4.5})
		if err != nil {
			t.Fatalf("NewRealArray failed: %v", err)
		}
		got, err := ToString(a)
		if err != nil {
			t.Fatalf("ToString failed: %v", err)
		}
		if want := "bounds[2,2]{1.5,2,3,4.5}"; string(got) != want {
			t.Errorf("ToString = %q, want %q", got, want)
		}
	})

	if _, err := ToString(values.EmptyFile()); !errors.Is(err, ierrors.ErrIncompatibleTypes) {
		t.Errorf("ToString(file) error = %v, want ErrIncompatibleTypes", err)
	}
	if _, err := ToString(values.NewFileArray1D()); !errors.Is(err, ierrors.ErrIncompatibleTypes) {
		t.Errorf("ToString(file array) error = %v, want ErrIncompatibleTypes", err)
	}
}

func TestArrayConversions(t *testing.T) {
	reals, err := values.NewRealArray([]int{2, 2}, []float64{1.5, -2.5, 0, 3})
	if err != nil {
		t.Fatalf("NewRealArray failed: %v", err)
	}

	t.Run("real to integer preserves shape", func(t *testing.T) {
		got, err := ToIntegerArray(reals)
		if err != nil {
			t.Fatalf("ToIntegerArray failed: %v", err)
		}
		want, err := values.NewIntegerArray([]int{2, 2}, []int64{1, -2, 0, 3})
		if err != nil {
			t.Fatalf("NewIntegerArray failed: %v", err)
		}
		if !got.Equal(want) {
			t.Errorf("ToIntegerArray = %v, want %v", got, want)
		}
	})

	t.Run("integer to real", func(t *testing.T) {
		got, err := ToRealArray(values.NewIntegerArray1D(1, 2, 3))
		if err != nil {
			t.Fatalf("ToRealArray failed: %v", err)
		}
		if !got.Equal(values.NewRealArray1D(1, 2, 3)) {
			t.Errorf("ToRealArray = %v", got)
		}
	})

	t.Run("boolean to string", func(t *testing.T) {
		got, err := ToStringArray(values.NewBooleanArray1D(true, false))
		if err != nil {
			t.Fatalf("ToStringArray failed: %v", err)
		}
		if !got.Equal(values.NewStringArray1D("True", "False")) {
			t.Errorf("ToStringArray = %v", got)
		}
	})

	t.Run("string to boolean", func(t *testing.T) {
		got, err := ToBooleanArray(values.NewStringArray1D("yes", "0", "TRUE"))
		if err != nil {
			t.Fatalf("ToBooleanArray failed: %v", err)
		}
		if !got.Equal(values.NewBooleanArray1D(true, false, true)) {
			t.Errorf("ToBooleanArray = %v", got)
		}
	})

	t.Run("all or nothing", func(t *testing.T) {
		if _, err := ToIntegerArray(values.NewStringArray1D("1", "oops", "3")); !errors.Is(err, ierrors.ErrFormat) {
			t.Errorf("error = %v, want ErrFormat", err)
		}
	})

	t.Run("element overflow fails whole array", func(t *testing.T) {
		if _, err := ToIntegerArray(values.NewRealArray1D(1, 1e19)); !errors.Is(err, ierrors.ErrOverflow) {
			t.Errorf("error = %v, want ErrOverflow", err)
		}
	})

	t.Run("scalar to array is incompatible", func(t *testing.T) {
		if _, err := ToIntegerArray(values.IntegerValue(1)); !errors.Is(err, ierrors.ErrIncompatibleTypes) {
			t.Errorf("error = %v, want ErrIncompatibleTypes", err)
		}
	})

	t.Run("file array never converts", func(t *testing.T) {
		if _, err := ToStringArray(values.NewFileArray1D()); !errors.Is(err, ierrors.ErrIncompatibleTypes) {
			t.Errorf("error = %v, want ErrIncompatibleTypes", err)
		}
	})
}

func TestTo(t *testing.T) {
	t.Run("identity returns value unchanged", func(t *testing.T) {
		v := values.IntegerValue(5)
		got, err := To(v, vartype.Integer)
		if err != nil {
			t.Fatalf("To failed: %v", err)
		}
		if !got.Equal(v) {
			t.Errorf("To = %v, want %v", got, v)
		}
	})

	t.Run("dispatches by destination", func(t *testing.T) {
		got, err := To(values.RealValue(2.5), vartype.String)
		if err != nil {
			t.Fatalf("To failed: %v", err)
		}
		if !got.Equal(values.StringValue("2.5")) {
			t.Errorf("To = %v, want 2.5", got)
		}
	})

	t.Run("file identity allowed", func(t *testing.T) {
		f := values.EmptyFile()
		got, err := To(f, vartype.File)
		if err != nil {
			t.Fatalf("To failed: %v", err)
		}
		if !got.Equal(f) {
			t.Errorf("To = %v, want the same file value", got)
		}
	})

	t.Run("conversion into file is incompatible", func(t *testing.T) {
		if _, err := To(values.StringValue("x"), vartype.File); !errors.Is(err, ierrors.ErrIncompatibleTypes) {
			t.Errorf("error = %v, want ErrIncompatibleTypes", err)
		}
	})

	t.Run("unknown destination", func(t *testing.T) {
		if _, err := To(values.IntegerValue(1), vartype.Unknown); !errors.Is(err, ierrors.ErrUnknownType) {
			t.Errorf("error = %v, want ErrUnknownType", err)
		}
	})
}
