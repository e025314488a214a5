package wallet

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeAddress(t *testing.T) {
	full := "0x" + strings.Repeat("ab", 32)

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"already canonical", full, full},
		{"uppercase hex", "0x" + strings.Repeat("AB", 32), full},
		{"short form", "0x2", "0x" + strings.Repeat("0", 63) + "2"},
		{"missing prefix", strings.Repeat("ab", 32), full},
		{"surrounding whitespace", "  " + full + "\n", full},
	}

	for _, tc := range cases {
		got, err := NormalizeAddress(tc.input)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestNormalizeAddressRejectsInvalid(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"prefix only", "0x"},
		{"non hex", "0xzz12"},
		{"too long", "0x" + strings.Repeat("a", 65)},
		{"embedded space", "0x12 34"},
	}

	for _, tc := range cases {
		if _, err := NormalizeAddress(tc.input); !errors.Is(err, ErrInvalidAddress) {
			t.Fatalf("%s: expected ErrInvalidAddress, got %v", tc.name, err)
		}
	}
}
