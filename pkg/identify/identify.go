// Package identify classifies an input string as a blockchain address or
// public key, validates it against every structurally compatible chain in
// the registry, and for public keys derives the matching address per chain.
//
// Identification is pure and synchronous: identical input yields identical
// output, and concurrent calls share nothing but the immutable registry.
package identify

import (
	"sort"
	"strings"

	"github.com/tyler-smith/go-bip39"

	"github.com/grendel/chainid/pkg/registry"
)

// Candidate is one plausible interpretation of the input: a chain, how
// confident the engine is, and why. DerivedAddress is set only for
// public-key inputs.
type Candidate struct {
	Chain          registry.ChainID
	Confidence     float64
	Reasoning      string
	DerivedAddress string
}

// IdentificationResult carries the canonical form of the input under the
// top candidate plus every candidate, confidence-descending with ties
// broken by registry declaration order. The list is never empty.
type IdentificationResult struct {
	Normalized string
	Candidates []Candidate
}

// Identify is the sole entry point: it classifies, validates, and ranks
// every interpretation of the input. It fails only when no interpretation
// under any known encoding or chain succeeds.
func Identify(input string) (*IdentificationResult, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, invalidInput(reasonEmpty)
	}

	reg := registry.Get()
	sig := Characterize(input)
	if len(sig.Families) == 0 {
		if bip39.IsMnemonicValid(strings.ToLower(input)) {
			return nil, invalidInput(reasonMnemonic)
		}
		return nil, invalidInput("%s: %q", reasonUnknownEncoding, input)
	}

	matches, failure := resolveAddresses(reg, &sig)
	if len(matches) == 0 {
		if keyType, raw, ok := detectPublicKey(&sig); ok {
			derived, err := resolvePublicKey(reg, keyType, raw)
			if err != nil {
				return nil, err
			}
			matches = derived
		}
	}
	if len(matches) == 0 {
		if failure == "" {
			failure = reasonUnknownEncoding
		}
		return nil, invalidInput("%s", failure)
	}

	// Stable sort: equal confidence keeps registry declaration order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].cand.Confidence > matches[j].cand.Confidence
	})

	result := &IdentificationResult{
		Normalized: matches[0].normalized,
		Candidates: make([]Candidate, len(matches)),
	}
	for i, m := range matches {
		result.Candidates[i] = m.cand
	}
	return result, nil
}
