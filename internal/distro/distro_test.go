// SPDX-License-Identifier: MPL-2.0

package distro

import (
	"reflect"
	"testing"

	"golang.org/x/text/encoding/unicode"
)

// encodeUTF16LE produces the byte form `wsl -l -q` emits on most hosts.
func encodeUTF16LE(t *testing.T, s string) []byte {
	t.Helper()
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	out, err := encoder.Bytes([]byte(s))
	if err != nil {
		t.Fatalf("encode UTF-16LE: %v", err)
	}
	return out
}

func TestParseList(t *testing.T) {
	t.Run("decodes UTF-16LE output", func(t *testing.T) {
		raw := encodeUTF16LE(t, "Ubuntu\r\nDebian\r\nkali-linux\r\n")
		got := ParseList(raw)
		want := []Name{"Ubuntu", "Debian", "kali-linux"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ParseList() = %v, want %v", got, want)
		}
	})

	t.Run("falls back to UTF-8 output", func(t *testing.T) {
		got := ParseList([]byte("Ubuntu\nDebian\n"))
		want := []Name{"Ubuntu", "Debian"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ParseList() = %v, want %v", got, want)
		}
	})

	t.Run("strips stray NUL bytes in UTF-8 path", func(t *testing.T) {
		got := ParseList([]byte("Ubu\x00ntu\n\x00\n"))
		want := []Name{"Ubuntu"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ParseList() = %v, want %v", got, want)
		}
	})

	t.Run("drops blank lines and preserves order", func(t *testing.T) {
		raw := encodeUTF16LE(t, "\r\nBeta\r\n\r\nAlpha\r\n")
		got := ParseList(raw)
		want := []Name{"Beta", "Alpha"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ParseList() = %v, want %v", got, want)
		}
	})

	t.Run("empty output yields nil", func(t *testing.T) {
		if got := ParseList(nil); got != nil {
			t.Errorf("ParseList(nil) = %v, want nil", got)
		}
		if got := ParseList(encodeUTF16LE(t, "\r\n")); got != nil {
			t.Errorf("ParseList(blank) = %v, want nil", got)
		}
	})
}

func TestStrings(t *testing.T) {
	got := Strings([]Name{"Ubuntu", "Debian"})
	want := []string{"Ubuntu", "Debian"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Strings() = %v, want %v", got, want)
	}
}
