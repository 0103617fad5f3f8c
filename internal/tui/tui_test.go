// SPDX-License-Identifier: MPL-2.0

package tui

import "testing"

func TestValidateIndex(t *testing.T) {
	validate := ValidateIndex(3)

	t.Run("accepts in-range values", func(t *testing.T) {
		for _, s := range []string{"1", "2", "3", " 2 "} {
			if err := validate(s); err != nil {
				t.Errorf("ValidateIndex(3)(%q) unexpected error: %v", s, err)
			}
		}
	})

	t.Run("rejects out-of-range values", func(t *testing.T) {
		for _, s := range []string{"0", "4", "-1"} {
			if err := validate(s); err == nil {
				t.Errorf("ValidateIndex(3)(%q) expected error, got nil", s)
			}
		}
	})

	t.Run("rejects non-integer input", func(t *testing.T) {
		for _, s := range []string{"", "abc", "1.5", "two"} {
			if err := validate(s); err == nil {
				t.Errorf("ValidateIndex(3)(%q) expected error, got nil", s)
			}
		}
	})
}

func TestValidateNonNegativeInt(t *testing.T) {
	t.Run("accepts zero and positive values", func(t *testing.T) {
		for _, s := range []string{"0", "3", "600", " 5 "} {
			if err := ValidateNonNegativeInt(s); err != nil {
				t.Errorf("ValidateNonNegativeInt(%q) unexpected error: %v", s, err)
			}
		}
	})

	t.Run("rejects negative values", func(t *testing.T) {
		if err := ValidateNonNegativeInt("-1"); err == nil {
			t.Error("ValidateNonNegativeInt(\"-1\") expected error, got nil")
		}
	})

	t.Run("rejects non-integer input", func(t *testing.T) {
		for _, s := range []string{"", "abc", "3s"} {
			if err := ValidateNonNegativeInt(s); err == nil {
				t.Errorf("ValidateNonNegativeInt(%q) expected error, got nil", s)
			}
		}
	})
}

func TestApplyDefault(t *testing.T) {
	cases := []struct {
		name string
		in   string
		def  string
		want string
	}{
		{"empty resolves to default", "", "commands.txt", "commands.txt"},
		{"whitespace resolves to default", "   ", "3", "3"},
		{"explicit value wins", "other.txt", "commands.txt", "other.txt"},
		{"value is trimmed", " other.txt ", "commands.txt", "other.txt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := applyDefault(tc.in, tc.def); got != tc.want {
				t.Errorf("applyDefault(%q, %q) = %q, want %q", tc.in, tc.def, got, tc.want)
			}
		})
	}
}
