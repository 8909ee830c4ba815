// Package registry holds the declarative chain metadata that drives
// identification. Adding chain support means adding a descriptor row here;
// the resolution code paths never grow per-chain branches.
package registry

// ChainID is the stable identifier for a supported blockchain.
type ChainID string

// Registered chain identifiers.
const (
	Ethereum  ChainID = "ethereum"
	Polygon   ChainID = "polygon"
	BSC       ChainID = "bsc"
	Avalanche ChainID = "avalanche"
	Arbitrum  ChainID = "arbitrum"
	Optimism  ChainID = "optimism"
	Base      ChainID = "base"
	Fantom    ChainID = "fantom"
	Celo      ChainID = "celo"
	Gnosis    ChainID = "gnosis"
	Bitcoin   ChainID = "bitcoin"
	Litecoin  ChainID = "litecoin"
	Dogecoin  ChainID = "dogecoin"
	Tron      ChainID = "tron"
	Solana    ChainID = "solana"
	CosmosHub ChainID = "cosmos-hub"
	Osmosis   ChainID = "osmosis"
	Juno      ChainID = "juno"
	Akash     ChainID = "akash"
	Stargaze  ChainID = "stargaze"
	Secret    ChainID = "secret"
	Terra     ChainID = "terra"
	Kava      ChainID = "kava"
	Regen     ChainID = "regen"
	Sentinel  ChainID = "sentinel"
	Polkadot  ChainID = "polkadot"
	Kusama    ChainID = "kusama"
	Substrate ChainID = "substrate"
	Cardano   ChainID = "cardano"
)

// EncodingFamily is the closed set of address encodings the engine knows.
// New encodings are new variant cases added deliberately, never open-ended
// runtime dispatch.
type EncodingFamily int

const (
	FamilyHex EncodingFamily = iota
	FamilyBase58Check
	FamilyBech32
	FamilyBase58
	FamilySS58
)

func (f EncodingFamily) String() string {
	switch f {
	case FamilyHex:
		return "hex"
	case FamilyBase58Check:
		return "base58check"
	case FamilyBech32:
		return "bech32"
	case FamilyBase58:
		return "base58"
	case FamilySS58:
		return "ss58"
	default:
		return "unknown"
	}
}

// KeyType is the closed set of public-key shapes a derivation accepts.
type KeyType int

const (
	// KeySecp256k1 covers 33-byte compressed and 65-byte uncompressed keys.
	KeySecp256k1 KeyType = iota
	// KeyEd25519 covers bare 32-byte keys. Ed25519 and sr25519 keys are
	// bit-compatible and are not discriminated further.
	KeyEd25519
)

// PipelineStep is one stage of a derivation hash pipeline.
type PipelineStep int

const (
	StepSHA256 PipelineStep = iota
	StepKeccak256
	// StepHash160 is RIPEMD160(SHA256(x)), the Bitcoin-family compound.
	StepHash160
	StepBlake2b256
	StepSHA3256
	StepTakeFirst20
	StepTakeLast20
	StepTakeFirst28
)

// Encoder is the closed set of output encodings a derivation ends with.
type Encoder int

const (
	// EncodeHexEIP55 writes 0x plus the EIP-55 mixed-case hex form.
	EncodeHexEIP55 Encoder = iota
	// EncodeBase58Check writes Base58Check under the descriptor's first
	// version byte.
	EncodeBase58Check
	// EncodeBech32 writes Bech32 under the descriptor's first HRP.
	EncodeBech32
	// EncodeSS58 writes SS58 under the descriptor's network prefix.
	EncodeSS58
	// EncodeBase58 writes plain Base58 with no checksum.
	EncodeBase58
	// EncodeCardanoBase prepends the mainnet payment header byte before
	// Bech32 encoding under the descriptor's first HRP.
	EncodeCardanoBase
)

// DerivationSpec describes how a public key of a given type becomes an
// address on one chain: run the hash pipeline, then apply the encoder.
type DerivationSpec struct {
	Key     KeyType
	Steps   []PipelineStep
	Encoder Encoder
}

// ChainDescriptor is one registry row. Descriptors are built once at
// startup and never mutated.
type ChainDescriptor struct {
	ID   ChainID
	Name string

	Family EncodingFamily

	// Structural constraints on the decoded payload.
	MinLen int // bytes, inclusive
	MaxLen int // bytes, inclusive

	HRPs         []string // Bech32 only
	VersionBytes []byte   // Base58Check only
	SS58Prefix   uint16   // SS58 only

	// Primary marks the flagship chain of a shared encoding family; it
	// ranks at or above its siblings, which rank mutually equal.
	Primary bool

	// SS58Fallback marks the row unrecognized-but-valid SS58 prefixes
	// resolve to.
	SS58Fallback bool

	Derivations []DerivationSpec
}

// AcceptsLen reports whether a decoded payload length satisfies the
// descriptor's structural constraint.
func (d *ChainDescriptor) AcceptsLen(n int) bool {
	return n >= d.MinLen && n <= d.MaxLen
}

// AcceptsHRP reports whether a Bech32 HRP matches one of the descriptor's.
func (d *ChainDescriptor) AcceptsHRP(hrp string) bool {
	for _, h := range d.HRPs {
		if h == hrp {
			return true
		}
	}
	return false
}

// AcceptsVersion reports whether a Base58Check version byte matches.
func (d *ChainDescriptor) AcceptsVersion(v byte) bool {
	for _, b := range d.VersionBytes {
		if b == v {
			return true
		}
	}
	return false
}

// DerivationFor returns the descriptor's derivation spec for a key type.
func (d *ChainDescriptor) DerivationFor(key KeyType) (DerivationSpec, bool) {
	for _, spec := range d.Derivations {
		if spec.Key == key {
			return spec, true
		}
	}
	return DerivationSpec{}, false
}
