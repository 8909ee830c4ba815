package identify

import (
	"fmt"

	"github.com/grendel/chainid/pkg/checksum"
	"github.com/grendel/chainid/pkg/crypto"
	"github.com/grendel/chainid/pkg/encoding"
	"github.com/grendel/chainid/pkg/registry"
)

// Public-key candidates rank below checksummed addresses: a tagged
// secp256k1 key is unambiguous about its curve but not its chain, and a
// bare 32-byte key is not even unambiguous about its curve.
const (
	confidenceTaggedKey    = 0.85
	confidenceAmbiguousKey = 0.65
)

// detectPublicKey decodes the input generically (hex, then Base58, then
// Bech32 payload) and reports the recognized key shape, if any.
func detectPublicKey(sig *Signature) (registry.KeyType, []byte, bool) {
	if sig.Compatible(registry.FamilyHex) {
		if raw, err := encoding.DecodeHex(sig.Raw); err == nil {
			if kt, ok := classifyKeyBytes(raw); ok {
				return kt, raw, true
			}
		}
	}
	if sig.Compatible(registry.FamilyBase58) {
		if raw, err := encoding.DecodeBase58(sig.Raw); err == nil {
			if kt, ok := classifyKeyBytes(raw); ok {
				return kt, raw, true
			}
		}
	}
	if sig.Compatible(registry.FamilyBech32) {
		if _, data, err := encoding.DecodeBech32(sig.Raw); err == nil {
			if raw, err := encoding.Bech32Payload(data); err == nil {
				if kt, ok := classifyKeyBytes(raw); ok {
					return kt, raw, true
				}
			}
		}
	}
	return 0, nil, false
}

// classifyKeyBytes maps decoded bytes onto the closed set of key shapes.
func classifyKeyBytes(raw []byte) (registry.KeyType, bool) {
	switch {
	case len(raw) == 65 && raw[0] == 0x04:
		return registry.KeySecp256k1, true
	case len(raw) == 33 && (raw[0] == 0x02 || raw[0] == 0x03):
		return registry.KeySecp256k1, true
	case crypto.IsEd25519Shaped(raw):
		return registry.KeyEd25519, true
	default:
		return 0, false
	}
}

// resolvePublicKey runs the derivation pipeline of every descriptor that
// accepts the detected key type. Chains that derive identical values (every
// EVM chain does) are still emitted as distinct candidates.
func resolvePublicKey(reg *registry.Registry, keyType registry.KeyType, raw []byte) ([]resolved, error) {
	material := raw
	if keyType == registry.KeySecp256k1 {
		normalized, err := crypto.NormalizeSecp256k1(raw)
		if err != nil {
			return nil, invalidInput("%v", err)
		}
		material = normalized
	}

	confidence := confidenceAmbiguousKey
	keyName := "32-byte Ed25519-compatible public key"
	if keyType == registry.KeySecp256k1 {
		confidence = confidenceTaggedKey
		keyName = "secp256k1 public key"
	}
	normalized := encoding.EncodeHex(raw)

	var out []resolved
	for _, desc := range reg.All() {
		spec, ok := desc.DerivationFor(keyType)
		if !ok {
			continue
		}
		address, err := runDerivation(desc, spec, material)
		if err != nil {
			return nil, invalidInput("deriving %s address: %v", desc.ID, err)
		}
		out = append(out, resolved{
			cand: Candidate{
				Chain:          desc.ID,
				Confidence:     confidence,
				Reasoning:      fmt.Sprintf("%s; derived %s address", keyName, desc.Name),
				DerivedAddress: address,
			},
			normalized: normalized,
		})
	}
	if len(out) == 0 {
		return nil, ErrNotImplemented
	}
	return out, nil
}

// runDerivation applies a descriptor's hash pipeline and output encoder to
// prepared key material.
func runDerivation(desc *registry.ChainDescriptor, spec registry.DerivationSpec, material []byte) (string, error) {
	data := material
	for _, step := range spec.Steps {
		switch step {
		case registry.StepSHA256:
			data = crypto.SHA256(data)
		case registry.StepKeccak256:
			data = crypto.Keccak256(data)
		case registry.StepHash160:
			data = crypto.Hash160(data)
		case registry.StepBlake2b256:
			data = crypto.Blake2b256(data)
		case registry.StepSHA3256:
			data = crypto.SHA3256(data)
		case registry.StepTakeFirst20:
			data = data[:20]
		case registry.StepTakeLast20:
			data = data[len(data)-20:]
		case registry.StepTakeFirst28:
			data = data[:28]
		}
	}

	switch spec.Encoder {
	case registry.EncodeHexEIP55:
		return checksum.EIP55Normalize("0x" + encoding.EncodeHex(data))
	case registry.EncodeBase58Check:
		return checksum.Base58CheckEncode(desc.VersionBytes[0], data), nil
	case registry.EncodeBech32:
		return encoding.EncodeBech32(desc.HRPs[0], data)
	case registry.EncodeSS58:
		return checksum.SS58Encode(desc.SS58Prefix, data)
	case registry.EncodeBase58:
		return encoding.EncodeBase58(data), nil
	case registry.EncodeCardanoBase:
		return encoding.EncodeBech32(desc.HRPs[0], append([]byte{0x00}, data...))
	default:
		return "", fmt.Errorf("unknown encoder %d", spec.Encoder)
	}
}
