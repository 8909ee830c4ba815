package checksum

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/grendel/chainid/pkg/crypto"
	"github.com/grendel/chainid/pkg/encoding"
)

// ss58Pre is the domain-separation tag hashed ahead of every SS58 frame.
var ss58Pre = []byte("SS58PRE")

// SS58Checksum computes the checksum for a prefix‖payload frame, truncated
// to n bytes of Blake2b-512("SS58PRE"‖frame).
func SS58Checksum(frame []byte, n int) []byte {
	hash := crypto.Blake2b512(append(append([]byte{}, ss58Pre...), frame...))
	return hash[:n]
}

// SS58Decode decodes and verifies an SS58 address, returning the network
// prefix and the 32-byte account ID.
func SS58Decode(address string) (prefix uint16, account []byte, err error) {
	decoded, err := encoding.DecodeBase58(address)
	if err != nil {
		return 0, nil, err
	}
	// 1-byte prefix + 32-byte account + 2-byte checksum at minimum
	if len(decoded) < 35 || len(decoded) > 50 {
		return 0, nil, fmt.Errorf("ss58 frame length %d out of range", len(decoded))
	}

	prefix, prefixLen, err := encoding.DecodeSS58Prefix(decoded)
	if err != nil {
		return 0, nil, err
	}

	checksumLen := encoding.SS58ChecksumLen(len(decoded))
	if len(decoded) < prefixLen+32+checksumLen {
		return 0, nil, errors.New("ss58 frame too short for account and checksum")
	}

	body := decoded[:len(decoded)-checksumLen]
	sum := decoded[len(decoded)-checksumLen:]
	account = decoded[prefixLen : len(decoded)-checksumLen]
	if len(account) != 32 {
		return 0, nil, fmt.Errorf("ss58 account ID must be 32 bytes, got %d", len(account))
	}
	if !bytes.Equal(sum, SS58Checksum(body, checksumLen)) {
		return 0, nil, ErrChecksum
	}
	return prefix, account, nil
}

// SS58Encode encodes a 32-byte account ID under a network prefix.
func SS58Encode(prefix uint16, account []byte) (string, error) {
	if len(account) != 32 {
		return "", fmt.Errorf("ss58 account ID must be 32 bytes, got %d", len(account))
	}
	head, err := encoding.EncodeSS58Prefix(prefix)
	if err != nil {
		return "", err
	}
	frame := append(head, account...)
	frame = append(frame, SS58Checksum(frame, 2)...)
	return encoding.EncodeBase58(frame), nil
}
