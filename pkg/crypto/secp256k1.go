package crypto

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
)

// Compressed secp256k1 keys carry a parity tag and the x coordinate; the
// curve equation y² = x³ + 7 and p ≡ 3 (mod 4) let y be recovered as
// (x³+7)^((p+1)/4) mod p with the root chosen to match the tag.

// DecompressPublicKey expands a 33-byte compressed secp256k1 public key to
// the 65-byte uncompressed form 0x04‖x‖y. Inputs whose x coordinate is not
// on the curve are rejected.
func DecompressPublicKey(compressed []byte) ([]byte, error) {
	if len(compressed) != 33 {
		return nil, fmt.Errorf("compressed public key must be 33 bytes, got %d", len(compressed))
	}
	if compressed[0] != 0x02 && compressed[0] != 0x03 {
		return nil, fmt.Errorf("compressed public key must start with 0x02 or 0x03, got 0x%02x", compressed[0])
	}
	pub, err := btcec.ParsePubKey(compressed)
	if err != nil {
		return nil, fmt.Errorf("invalid compressed public key: %w", err)
	}
	return pub.SerializeUncompressed(), nil
}

// NormalizeSecp256k1 reduces any accepted secp256k1 key form (33-byte
// compressed, 65-byte uncompressed, or bare 64-byte x‖y) to the 64 bytes
// the derivation pipelines hash.
func NormalizeSecp256k1(key []byte) ([]byte, error) {
	switch len(key) {
	case 33:
		uncompressed, err := DecompressPublicKey(key)
		if err != nil {
			return nil, err
		}
		return uncompressed[1:], nil
	case 65:
		if key[0] != 0x04 {
			return nil, fmt.Errorf("uncompressed public key must start with 0x04, got 0x%02x", key[0])
		}
		return key[1:], nil
	case 64:
		return key, nil
	default:
		return nil, fmt.Errorf("unsupported secp256k1 key length %d", len(key))
	}
}

// IsEd25519Shaped reports whether key has the 32-byte shape shared by
// Ed25519 and sr25519 public keys. The two are bit-compatible and are not
// discriminated further.
func IsEd25519Shaped(key []byte) bool {
	return len(key) == 32
}
