// Package crypto provides the hash and elliptic-curve primitives the
// identification pipelines are built from. Every function is a fixed-output,
// deterministic wrapper; chain knowledge lives in the registry, not here.
package crypto

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// SHA256 returns the SHA-256 digest of data.
func SHA256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// DoubleSHA256 returns SHA256(SHA256(data)), the digest Base58Check
// checksums are drawn from.
func DoubleSHA256(data []byte) []byte {
	return SHA256(SHA256(data))
}

// Hash160 returns RIPEMD160(SHA256(data)), the 20-byte digest behind
// Bitcoin-family P2PKH addresses.
func Hash160(data []byte) []byte {
	return btcutil.Hash160(data)
}

// Keccak256 returns the legacy Keccak-256 digest used by EVM chains.
func Keccak256(data []byte) []byte {
	return ethcrypto.Keccak256(data)
}

// Blake2b256 returns the 32-byte Blake2b digest used for Substrate
// secp256k1 account IDs.
func Blake2b256(data []byte) []byte {
	sum := blake2b.Sum256(data)
	return sum[:]
}

// Blake2b512 returns the 64-byte Blake2b digest SS58 checksums are
// truncated from.
func Blake2b512(data []byte) []byte {
	sum := blake2b.Sum512(data)
	return sum[:]
}

// SHA3256 returns the SHA3-256 digest (the NIST variant, not Keccak).
func SHA3256(data []byte) []byte {
	sum := sha3.Sum256(data)
	return sum[:]
}
