// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"punctuated", "123.456.789-00", true},
		{"all zeros", "000.000.000-00", true},
		{"bare digits", "12345678900", false},
		{"missing hyphen", "123.456.789.00", false},
		{"missing dots", "123456789-00", false},
		{"short last group", "123.456.789-0", false},
		{"long last group", "123.456.789-000", false},
		{"letters", "abc.def.ghi-jk", false},
		{"leading space", " 123.456.789-00", false},
		{"trailing newline", "123.456.789-00\n", false},
		{"empty", "", false},
		{"unicode digits", "١٢٣.٤٥٦.٧٨٩-٠٠", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.input))
		})
	}
}

func TestStripPunctuation(t *testing.T) {
	assert.Equal(t, "12345678900", StripPunctuation("123.456.789-00"))
	assert.Equal(t, "12345678900", StripPunctuation("12345678900"))
	assert.Equal(t, "", StripPunctuation("..-"))
	assert.Equal(t, "42", StripPunctuation("a4b2c"))
}

// FuzzValidate checks that validation never panics and that accepted input
// always strips down to exactly eleven digits.
func FuzzValidate(f *testing.F) {
	f.Add("")
	f.Add("123.456.789-00")
	f.Add("12345678900")
	f.Add("'; DROP TABLE votos;--")
	f.Add(string([]byte{0xff, 0xfe}))

	f.Fuzz(func(t *testing.T, input string) {
		if !Validate(input) {
			return
		}
		if got := StripPunctuation(input); len(got) != 11 {
			t.Errorf("valid cpf %q stripped to %q", input, got)
		}
		if len(input) != 14 {
			t.Errorf("valid cpf %q has length %d", input, len(input))
		}
	})
}
