// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"regexp"
	"strings"
)

// cpfPattern is the punctuated form accepted on the wire: NNN.NNN.NNN-NN
var cpfPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

// Validate reports whether cpf is in the exact punctuated format.
// Partially punctuated or bare digit input is rejected, never normalized.
func Validate(cpf string) bool {
	return cpfPattern.MatchString(cpf)
}

// StripPunctuation removes every non-digit character
func StripPunctuation(cpf string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cpf)
}
