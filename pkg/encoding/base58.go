package encoding

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// Base58Alphabet is the standard Base58 alphabet shared by Bitcoin, Solana,
// Substrate and most other chains. It excludes 0, O, I and l.
const Base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// IsBase58String reports whether every character of s belongs to the Base58
// alphabet. An empty string is not a valid Base58 string.
func IsBase58String(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		// Base58 doesn't include: 0, O, I, l
		if c == '0' || c == 'O' || c == 'I' || c == 'l' {
			return false
		}
		if !((c >= '1' && c <= '9') || (c >= 'A' && c <= 'H') || (c >= 'J' && c <= 'N') ||
			(c >= 'P' && c <= 'Z') || (c >= 'a' && c <= 'k') || (c >= 'm' && c <= 'z')) {
			return false
		}
	}
	return true
}

// DecodeBase58 decodes a plain Base58 string (no checksum).
func DecodeBase58(s string) ([]byte, error) {
	if !IsBase58String(s) {
		return nil, fmt.Errorf("invalid base58 character in %q", s)
	}
	return base58.Decode(s)
}

// EncodeBase58 encodes b as a plain Base58 string.
func EncodeBase58(b []byte) string {
	return base58.Encode(b)
}
