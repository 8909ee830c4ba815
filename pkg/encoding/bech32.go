package encoding

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Bech32Charset is the 32-character data alphabet used after the separator.
const Bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// DecodeBech32 decodes a Bech32 string into its HRP and raw 5-bit data
// groups. The polynomial checksum is verified by the decode; mixed-case
// input is rejected. No length cap is applied so long HRP formats
// (Cardano) decode.
func DecodeBech32(s string) (hrp string, data []byte, err error) {
	hrp, data, err = bech32.DecodeNoLimit(s)
	if err != nil {
		return "", nil, err
	}
	return strings.ToLower(hrp), data, nil
}

// Bech32Payload regroups 5-bit data into bytes. Fails if the leftover
// padding bits are non-zero, so only whole-byte payloads convert.
func Bech32Payload(data []byte) ([]byte, error) {
	return bech32.ConvertBits(data, 5, 8, false)
}

// SegwitPayload splits SegWit-style data into the leading witness version
// group and the byte-aligned program that follows it.
func SegwitPayload(data []byte) (version byte, program []byte, err error) {
	if len(data) == 0 {
		return 0, nil, bech32.ErrInvalidLength(0)
	}
	program, err = bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return 0, nil, err
	}
	return data[0], program, nil
}

// EncodeBech32 encodes payload bytes under the given HRP. Output is the
// canonical lowercase form.
func EncodeBech32(hrp string, payload []byte) (string, error) {
	data, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(strings.ToLower(hrp), data)
}

// ConvertBits regroups data from fromBits-wide to toBits-wide groups. When
// pad is false, leftover bits must be zero or the conversion fails.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	return bech32.ConvertBits(data, fromBits, toBits, pad)
}

// SplitBech32 locates the separator and returns the would-be HRP and data
// part without decoding. Used for input characterization only.
func SplitBech32(s string) (hrp, data string, ok bool) {
	idx := strings.LastIndexByte(s, '1')
	if idx < 1 || idx+7 > len(s) {
		return "", "", false
	}
	return s[:idx], s[idx+1:], true
}
