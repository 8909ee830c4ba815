package encoding

import (
	"encoding/hex"
	"errors"
	"strings"
)

// DecodeHex decodes a hex string, accepting an optional 0x prefix and
// either letter case.
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, errors.New("empty hex string")
	}
	if len(s)%2 != 0 {
		return nil, errors.New("hex string has odd length")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.New("invalid hex character")
	}
	return b, nil
}

// EncodeHex returns the lowercase hex encoding of b, without a 0x prefix.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}
