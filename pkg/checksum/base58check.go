// Package checksum implements the per-scheme checksum computations and
// validators layered on top of the encoding and hash primitives.
package checksum

import (
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// ErrChecksum is returned when a decoded string's checksum does not match
// the recomputed value.
var ErrChecksum = errors.New("checksum mismatch")

// Base58CheckDecode decodes a Base58Check string and verifies its four-byte
// double-SHA256 checksum, returning the version byte and payload.
func Base58CheckDecode(s string) (version byte, payload []byte, err error) {
	payload, version, err = base58.CheckDecode(s)
	if err != nil {
		if errors.Is(err, base58.ErrChecksum) {
			return 0, nil, ErrChecksum
		}
		return 0, nil, err
	}
	return version, payload, nil
}

// Base58CheckEncode encodes payload under a version byte, appending the
// first four bytes of SHA256(SHA256(version‖payload)).
func Base58CheckEncode(version byte, payload []byte) string {
	return base58.CheckEncode(payload, version)
}
