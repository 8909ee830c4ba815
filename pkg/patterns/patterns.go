// Package patterns provides compiled regular expressions for the character
// shapes of blockchain identifiers. Input characterization uses these as a
// fast first pass; they say what an input could be, never what it is.
package patterns

import "regexp"

// InputPatterns groups the structural regexps for candidate encodings.
type InputPatterns struct {
	// Hex string with optional 0x prefix, even length enforced downstream
	Hex *regexp.Regexp

	// Base58 alphabet (excludes 0, O, I, l)
	Base58 *regexp.Regexp

	// Bech32: lowercase HRP, separator 1, data in the 32-char alphabet
	Bech32Lower *regexp.Regexp

	// Bech32 in its all-uppercase form (mixed case is invalid)
	Bech32Upper *regexp.Regexp
}

var inputPatterns = &InputPatterns{
	Hex:         regexp.MustCompile(`^(0[xX])?[0-9a-fA-F]+$`),
	Base58:      regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]+$`),
	Bech32Lower: regexp.MustCompile(`^[a-z0-9_]{1,83}1[qpzry9x8gf2tvdw0s3jn54khce6mua7l]{6,}$`),
	Bech32Upper: regexp.MustCompile(`^[A-Z0-9_]{1,83}1[QPZRY9X8GF2TVDW0S3JN54KHCE6MUA7L]{6,}$`),
}

// GetInputPatterns returns the package-level compiled pattern table.
func GetInputPatterns() *InputPatterns {
	return inputPatterns
}

// IsHex reports whether s contains only hexadecimal characters.
func IsHex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
