package registry

// evmDerivation is shared by every EVM-compatible row: Keccak-256 of the
// 64-byte key, last 20 bytes, EIP-55 hex.
var evmDerivation = []DerivationSpec{{
	Key:     KeySecp256k1,
	Steps:   []PipelineStep{StepKeccak256, StepTakeLast20},
	Encoder: EncodeHexEIP55,
}}

func evmChain(id ChainID, name string, primary bool) ChainDescriptor {
	return ChainDescriptor{
		ID:          id,
		Name:        name,
		Family:      FamilyHex,
		MinLen:      20,
		MaxLen:      20,
		Primary:     primary,
		Derivations: evmDerivation,
	}
}

// cosmosChain builds a Bech32 row for a Cosmos SDK chain. The HRP is the
// whole discriminator; all of them share the 20-byte account payload. Only
// the hub row carries a derivation, matching the key pipelines registered
// for this family.
func cosmosChain(id ChainID, name, hrp string) ChainDescriptor {
	return ChainDescriptor{
		ID:     id,
		Name:   name,
		Family: FamilyBech32,
		MinLen: 20,
		MaxLen: 20,
		HRPs:   []string{hrp},
	}
}

func ss58Chain(id ChainID, name string, prefix uint16, fallback bool) ChainDescriptor {
	return ChainDescriptor{
		ID:           id,
		Name:         name,
		Family:       FamilySS58,
		MinLen:       32,
		MaxLen:       32,
		SS58Prefix:   prefix,
		SS58Fallback: fallback,
		Derivations: []DerivationSpec{
			{Key: KeyEd25519, Encoder: EncodeSS58},
			{Key: KeySecp256k1, Steps: []PipelineStep{StepBlake2b256}, Encoder: EncodeSS58},
		},
	}
}

// allChains returns every registered descriptor. Declaration order is the
// tie-break order for equal-confidence candidates, so the primary chain of
// each family comes before its siblings.
func allChains() []ChainDescriptor {
	return []ChainDescriptor{
		evmChain(Ethereum, "Ethereum", true),
		evmChain(Polygon, "Polygon", false),
		evmChain(BSC, "BNB Smart Chain", false),
		evmChain(Avalanche, "Avalanche C-Chain", false),
		evmChain(Arbitrum, "Arbitrum One", false),
		evmChain(Optimism, "Optimism", false),
		evmChain(Base, "Base", false),
		evmChain(Fantom, "Fantom", false),
		evmChain(Celo, "Celo", false),
		evmChain(Gnosis, "Gnosis Chain", false),
		{
			ID:           Bitcoin,
			Name:         "Bitcoin",
			Family:       FamilyBase58Check,
			MinLen:       20,
			MaxLen:       20,
			HRPs:         []string{"bc"},
			VersionBytes: []byte{0x00, 0x05},
			Primary:      true,
			Derivations: []DerivationSpec{{
				Key:     KeySecp256k1,
				Steps:   []PipelineStep{StepHash160},
				Encoder: EncodeBase58Check,
			}},
		},
		{
			ID:           Litecoin,
			Name:         "Litecoin",
			Family:       FamilyBase58Check,
			MinLen:       20,
			MaxLen:       20,
			HRPs:         []string{"ltc"},
			VersionBytes: []byte{0x30, 0x32},
		},
		{
			ID:           Dogecoin,
			Name:         "Dogecoin",
			Family:       FamilyBase58Check,
			MinLen:       20,
			MaxLen:       20,
			VersionBytes: []byte{0x1e, 0x16},
		},
		{
			ID:           Tron,
			Name:         "Tron",
			Family:       FamilyBase58Check,
			MinLen:       20,
			MaxLen:       20,
			VersionBytes: []byte{0x41},
			Derivations: []DerivationSpec{{
				Key:     KeySecp256k1,
				Steps:   []PipelineStep{StepKeccak256, StepTakeLast20},
				Encoder: EncodeBase58Check,
			}},
		},
		{
			ID:     Solana,
			Name:   "Solana",
			Family: FamilyBase58,
			MinLen: 32,
			MaxLen: 32,
			Derivations: []DerivationSpec{{
				Key:     KeyEd25519,
				Encoder: EncodeBase58,
			}},
		},
		{
			ID:     CosmosHub,
			Name:   "Cosmos Hub",
			Family: FamilyBech32,
			MinLen: 20,
			MaxLen: 20,
			HRPs:   []string{"cosmos"},
			Derivations: []DerivationSpec{{
				Key:     KeyEd25519,
				Steps:   []PipelineStep{StepSHA256, StepTakeFirst20},
				Encoder: EncodeBech32,
			}},
		},
		cosmosChain(Osmosis, "Osmosis", "osmo"),
		cosmosChain(Juno, "Juno", "juno"),
		cosmosChain(Akash, "Akash", "akash"),
		cosmosChain(Stargaze, "Stargaze", "stars"),
		cosmosChain(Secret, "Secret Network", "secret"),
		cosmosChain(Terra, "Terra", "terra"),
		cosmosChain(Kava, "Kava", "kava"),
		cosmosChain(Regen, "Regen", "regen"),
		cosmosChain(Sentinel, "Sentinel", "sent"),
		ss58Chain(Polkadot, "Polkadot", 0, false),
		ss58Chain(Kusama, "Kusama", 2, false),
		ss58Chain(Substrate, "Substrate", 42, true),
		{
			ID:     Cardano,
			Name:   "Cardano",
			Family: FamilyBech32,
			MinLen: 20,
			MaxLen: 100,
			HRPs:   []string{"addr", "stake", "addr_test", "stake_test"},
			Derivations: []DerivationSpec{{
				Key:     KeyEd25519,
				Steps:   []PipelineStep{StepSHA3256, StepTakeFirst28},
				Encoder: EncodeCardanoBase,
			}},
		},
	}
}
