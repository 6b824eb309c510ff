// Package rayid generates and validates the request identifiers printed on
// error pages. IDs are cosmetic and are not suitable as secrets.
package rayid

import (
	"math/rand"
	"regexp"
)

// Length is the number of hex characters in a ray id.
const Length = 16

const hexChars = "0123456789abcdef"

var pattern = regexp.MustCompile(`^[0-9a-fA-F]{16}$`)

// Generator produces a new ray id.
type Generator func() string

// Generate returns a random 16-character lowercase hex string.
func Generate() string {
	b := make([]byte, Length)
	for i := range b {
		b[i] = hexChars[rand.Intn(len(hexChars))]
	}
	return string(b)
}

// Validate reports whether s is exactly 16 hex characters, in either case.
func Validate(s string) bool {
	return pattern.MatchString(s)
}
