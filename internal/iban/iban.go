// Package iban validates IBAN account numbers via the ISO 7064 mod-97
// checksum.
package iban

// rearrangeLen is the country-code-plus-check-digits prefix that moves to
// the end before the checksum runs.
const rearrangeLen = 4

// Validate reports whether s passes the ISO 7064 mod-97 check: the first
// four characters move to the end, letters substitute their base-36 value
// (A=10 .. Z=35), and the resulting decimal digit string must leave
// remainder 1 modulo 97. The remainder is folded in digit by digit, so
// arbitrarily long inputs never overflow. Any character outside [A-Za-z0-9]
// fails the checksum rather than raising a distinct error.
func Validate(s string) bool {
	if len(s) <= rearrangeLen {
		return false
	}

	rem := 0
	mix := func(part string) bool {
		for i := 0; i < len(part); i++ {
			c := part[i]
			switch {
			case c >= '0' && c <= '9':
				rem = (rem*10 + int(c-'0')) % 97
			case c >= 'A' && c <= 'Z':
				// Two-digit substitution, 10..35.
				rem = (rem*100 + int(c-'A') + 10) % 97
			case c >= 'a' && c <= 'z':
				rem = (rem*100 + int(c-'a') + 10) % 97
			default:
				return false
			}
		}
		return true
	}

	if !mix(s[rearrangeLen:]) || !mix(s[:rearrangeLen]) {
		return false
	}
	return rem == 1
}
