// SPDX-License-Identifier: MIT
package types

import (
	"reflect"
	"testing"
)

func TestStringSlice_Locate(t *testing.T) {
	tests := []struct {
		name string
		sl   StringSlice
		val  string
		want int
	}{
		{name: "present", sl: StringSlice{"x", "y"}, val: "y", want: 1},
		{name: "absent", sl: StringSlice{"x", "y"}, val: "z", want: -1},
		{name: "empty", sl: StringSlice{}, val: "x", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sl.Locate(tt.val); got != tt.want {
				t.Errorf("StringSlice.Locate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStringSlice_UniqueAppend(t *testing.T) {
	sl := StringSlice{"x"}
	sl.UniqueAppend("y", "x", "y", "z")

	want := StringSlice{"x", "y", "z"}
	if !reflect.DeepEqual(sl, want) {
		t.Errorf("StringSlice.UniqueAppend() = %v, want %v", sl, want)
	}
}

func TestStringSlice_Clone(t *testing.T) {
	src := StringSlice{"x", "y"}

	dst := src.Clone()
	dst[0] = "z"

	if src[0] != "x" {
		t.Errorf("StringSlice.Clone() shares backing storage: %v", src)
	}
}

func TestStringSlice_Sort(t *testing.T) {
	sl := StringSlice{"valve.mdl", "pump.mdl", "tank.mdl"}
	sl.Sort()

	want := StringSlice{"pump.mdl", "tank.mdl", "valve.mdl"}
	if !reflect.DeepEqual(sl, want) {
		t.Errorf("StringSlice.Sort() = %v, want %v", sl, want)
	}
}

func TestStringSlice_String(t *testing.T) {
	tests := []struct {
		name string
		sl   StringSlice
		want string
	}{
		{name: "empty", sl: StringSlice{}, want: ""},
		{name: "single", sl: StringSlice{"x"}, want: "[x]"},
		{name: "multiple", sl: StringSlice{"x", "y", "z"}, want: "[x,y,z]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sl.String(); got != tt.want {
				t.Errorf("StringSlice.String() = %q, want %q", got, tt.want)
			}
		})
	}
}
