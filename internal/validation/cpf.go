package validation

import (
	"strings"

	"github.com/paemuri/brdoc"
)

// placeholderCPF passes the checksum but is a well-known sample number.
const placeholderCPF = "12345678909"

// NormalizeCPF returns the digits of s with dots, dashes and spaces removed.
// Any other character is kept, so the result of a malformed input still fails
// CPFIsValid.
func NormalizeCPF(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '-', ' ':
			return -1
		}
		return r
	}, s)
}

// CPFIsValid reports whether s is a valid CPF (Brazilian taxpayer id).
// Dots, dashes and spaces are ignored.
func CPFIsValid(s string) bool {
	digits := NormalizeCPF(s)
	if len(digits) != 11 || digits == placeholderCPF {
		return false
	}
	return brdoc.IsCPF(digits)
}
