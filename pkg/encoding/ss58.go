package encoding

import (
	"errors"
	"fmt"
)

// SS58 network prefixes are encoded into the first one or two bytes of the
// decoded frame:
//
//	0..63       one byte, the prefix itself
//	64..16383   two bytes: 0x40|(prefix>>8)&0x3f then prefix&0xff
//
// Both bytes participate in the checksum, and decoding must invert the full
// two-byte form: reading only the first byte silently maps every
// two-byte-prefix network onto the wrong chain.

// MaxSS58Prefix is the largest network prefix the two-byte form can carry.
const MaxSS58Prefix = 16383

// EncodeSS58Prefix returns the frame bytes for a network prefix.
func EncodeSS58Prefix(prefix uint16) ([]byte, error) {
	switch {
	case prefix < 64:
		return []byte{byte(prefix)}, nil
	case prefix <= MaxSS58Prefix:
		return []byte{0x40 | byte(prefix>>8)&0x3f, byte(prefix)}, nil
	default:
		return nil, fmt.Errorf("ss58 prefix %d out of range", prefix)
	}
}

// DecodeSS58Prefix reads the network prefix from the start of a decoded
// frame, returning the prefix and the number of bytes it occupied.
func DecodeSS58Prefix(frame []byte) (prefix uint16, size int, err error) {
	if len(frame) == 0 {
		return 0, 0, errors.New("empty ss58 frame")
	}
	switch {
	case frame[0] < 64:
		return uint16(frame[0]), 1, nil
	case frame[0] < 128:
		if len(frame) < 2 {
			return 0, 0, errors.New("truncated two-byte ss58 prefix")
		}
		return uint16(frame[0]&0x3f)<<8 | uint16(frame[1]), 2, nil
	default:
		return 0, 0, fmt.Errorf("reserved ss58 prefix byte 0x%02x", frame[0])
	}
}

// SS58ChecksumLen returns the checksum length implied by the frame size.
// Standard account addresses decode to 35 or 36 bytes and carry a two-byte
// checksum; the shorter forms used for sub-32-byte payloads carry one.
func SS58ChecksumLen(frameLen int) int {
	switch {
	case frameLen == 35 || frameLen == 36:
		return 2
	case frameLen < 64:
		return 1
	default:
		return 2
	}
}
