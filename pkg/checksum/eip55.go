package checksum

import (
	"errors"
	"strings"

	"github.com/grendel/chainid/pkg/crypto"
	"github.com/grendel/chainid/pkg/encoding"
)

// EIP55Valid reports whether a 0x-prefixed address carries a correct EIP-55
// mixed-case checksum. All-lowercase and all-uppercase inputs are
// structurally fine but carry no checksum, so they report false.
func EIP55Valid(address string) bool {
	if address == strings.ToLower(address) || address == strings.ToUpper(address) {
		return false
	}
	normalized, err := EIP55Normalize(address)
	if err != nil {
		return false
	}
	return address == normalized
}

// EIP55Normalize rewrites a 20-byte hex address into its canonical EIP-55
// form: each letter nibble is uppercased when the matching nibble of
// Keccak256(lowercase hex payload) is >= 8.
func EIP55Normalize(address string) (string, error) {
	lower := strings.ToLower(address)
	if !strings.HasPrefix(lower, "0x") {
		return "", errors.New("address must be 0x-prefixed")
	}
	body := lower[2:]
	raw, err := encoding.DecodeHex(body)
	if err != nil {
		return "", err
	}
	if len(raw) != 20 {
		return "", errors.New("address must be 20 bytes")
	}

	hash := crypto.Keccak256([]byte(body))
	out := make([]byte, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c >= 'a' && c <= 'f' {
			nibble := hash[i/2] >> 4
			if i%2 == 1 {
				nibble = hash[i/2] & 0x0f
			}
			if nibble >= 8 {
				c = c - 'a' + 'A'
			}
		}
		out[i] = c
	}
	return "0x" + string(out), nil
}
