package identify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/grendel/chainid/pkg/checksum"
	"github.com/grendel/chainid/pkg/encoding"
	"github.com/grendel/chainid/pkg/registry"
)

// Confidence tiers. The ordering between tiers is the contract; the exact
// values are presentation.
const (
	confidenceChecksummed        = 0.95 // exact checksum + unambiguous discriminator
	confidenceChecksummedSibling = 0.90 // exact checksum, shared encoding shape
	confidenceUnchecksummed      = 0.85 // structurally valid, no checksum to verify
	confidenceUnchecksummedSib   = 0.80
	confidenceUnknownPrefix      = 0.75 // valid SS58 checksum, unregistered network
	confidenceWeakMatch          = 0.70 // length-only discriminator
)

// resolved pairs a candidate with the canonical form of the input under
// that candidate's encoding.
type resolved struct {
	cand       Candidate
	normalized string
}

// resolveAddresses runs every family the signature admits against the
// registry and returns all structurally valid candidates. failure carries
// the most specific rejection observed, for error reporting when nothing
// matches anywhere.
func resolveAddresses(reg *registry.Registry, sig *Signature) (out []resolved, failure string) {
	if sig.Compatible(registry.FamilyHex) {
		cands, why := resolveHex(reg, sig)
		out = append(out, cands...)
		failure = prefer(failure, why)
	}
	if sig.Compatible(registry.FamilyBase58Check) {
		cands, why := resolveBase58Check(reg, sig)
		out = append(out, cands...)
		failure = prefer(failure, why)
	}
	if sig.Compatible(registry.FamilyBech32) {
		cands, why := resolveBech32(reg, sig)
		out = append(out, cands...)
		failure = prefer(failure, why)
	}
	if sig.Compatible(registry.FamilySS58) {
		cands, why := resolveSS58(reg, sig)
		out = append(out, cands...)
		failure = prefer(failure, why)
	}
	if sig.Compatible(registry.FamilyBase58) {
		cands, why := resolveBase58(reg, sig)
		out = append(out, cands...)
		failure = prefer(failure, why)
	}
	return out, failure
}

// resolveHex handles 0x-prefixed 20-byte addresses shared by every EVM
// chain. All registered EVM chains are returned: collapsing a shared-shape
// address to one guess would silently misattribute it.
func resolveHex(reg *registry.Registry, sig *Signature) ([]resolved, string) {
	if !sig.HexPrefixed || sig.Length != 42 {
		return nil, ""
	}
	raw, err := encoding.DecodeHex(sig.Raw)
	if err != nil || len(raw) != 20 {
		return nil, "malformed hex address"
	}

	// Case is judged on the 40-char body: the lowercase x of the 0x prefix
	// must not turn an all-uppercase address into a mixed-case one.
	checksummed := checksum.EIP55Valid(sig.Raw)
	if casePattern(sig.Raw[2:]) == CaseMixed && !checksummed {
		return nil, "EIP-55 checksum mismatch"
	}
	normalized, err := checksum.EIP55Normalize(sig.Raw)
	if err != nil {
		return nil, "malformed hex address"
	}

	base := confidenceUnchecksummed
	sibling := confidenceUnchecksummedSib
	reasoning := "valid EVM address format (no checksum to verify)"
	if checksummed {
		base = confidenceChecksummed
		sibling = confidenceChecksummedSibling
		reasoning = "valid EVM address with EIP-55 checksum"
	}

	var out []resolved
	for _, desc := range reg.ByFamily(registry.FamilyHex) {
		conf := sibling
		why := fmt.Sprintf("EVM-compatible chain (%s)", desc.Name)
		if desc.Primary {
			conf = base
			why = reasoning
		}
		out = append(out, resolved{
			cand:       Candidate{Chain: desc.ID, Confidence: conf, Reasoning: why},
			normalized: normalized,
		})
	}
	return out, ""
}

func resolveBase58Check(reg *registry.Registry, sig *Signature) ([]resolved, string) {
	// Base58Check addresses decode to 25 bytes; anything outside this
	// ballpark is some other Base58 form.
	if sig.Length < 25 || sig.Length > 36 {
		return nil, ""
	}
	version, payload, err := checksum.Base58CheckDecode(sig.Raw)
	if err != nil {
		if errors.Is(err, checksum.ErrChecksum) {
			return nil, "Base58Check " + reasonBadChecksum
		}
		return nil, ""
	}

	var out []resolved
	for _, desc := range reg.ByFamily(registry.FamilyBase58Check) {
		if !desc.AcceptsVersion(version) || !desc.AcceptsLen(len(payload)) {
			continue
		}
		out = append(out, resolved{
			cand: Candidate{
				Chain:      desc.ID,
				Confidence: confidenceChecksummed,
				Reasoning:  fmt.Sprintf("Base58Check address (version byte 0x%02x)", version),
			},
			normalized: sig.Raw, // Base58Check is already canonical
		})
	}
	if len(out) == 0 {
		return nil, fmt.Sprintf("valid Base58Check but unknown version byte 0x%02x", version)
	}
	return out, ""
}

func resolveBech32(reg *registry.Registry, sig *Signature) ([]resolved, string) {
	hrp, data, err := encoding.DecodeBech32(sig.Raw)
	if err != nil {
		return nil, "Bech32 " + reasonBadChecksum
	}
	normalized := strings.ToLower(sig.Raw)

	var out []resolved
	for _, desc := range reg.ByFamily(registry.FamilyBech32) {
		if !desc.AcceptsHRP(hrp) {
			continue
		}
		if desc.Family == registry.FamilyBech32 {
			payload, err := encoding.Bech32Payload(data)
			if err != nil || !desc.AcceptsLen(len(payload)) {
				continue
			}
			out = append(out, resolved{
				cand: Candidate{
					Chain:      desc.ID,
					Confidence: confidenceChecksummed,
					Reasoning:  fmt.Sprintf("Bech32 address with HRP %q", hrp),
				},
				normalized: normalized,
			})
			continue
		}
		// Base58Check chains reached via their SegWit HRP carry a witness
		// version group ahead of the program.
		version, program, err := encoding.SegwitPayload(data)
		if err != nil || version > 16 {
			continue
		}
		if len(program) != 20 && len(program) != 32 {
			continue
		}
		out = append(out, resolved{
			cand: Candidate{
				Chain:      desc.ID,
				Confidence: confidenceChecksummed,
				Reasoning:  fmt.Sprintf("SegWit address with HRP %q (witness v%d)", hrp, version),
			},
			normalized: normalized,
		})
	}
	if len(out) == 0 {
		return nil, fmt.Sprintf("valid Bech32 but unknown HRP %q", hrp)
	}
	return out, ""
}

func resolveSS58(reg *registry.Registry, sig *Signature) ([]resolved, string) {
	prefix, _, err := checksum.SS58Decode(sig.Raw)
	if err != nil {
		if errors.Is(err, checksum.ErrChecksum) {
			return nil, "SS58 " + reasonBadChecksum
		}
		return nil, ""
	}

	var out []resolved
	for _, desc := range reg.ByFamily(registry.FamilySS58) {
		if desc.SS58Prefix != prefix {
			continue
		}
		// A registered network prefix discriminates exactly, like a
		// Base58Check version byte.
		out = append(out, resolved{
			cand: Candidate{
				Chain:      desc.ID,
				Confidence: confidenceChecksummed,
				Reasoning:  fmt.Sprintf("SS58 address (network prefix %d)", prefix),
			},
			normalized: sig.Raw,
		})
	}
	if len(out) == 0 {
		if fb := reg.SS58Fallback(); fb != nil {
			out = append(out, resolved{
				cand: Candidate{
					Chain:      fb.ID,
					Confidence: confidenceUnknownPrefix,
					Reasoning:  fmt.Sprintf("SS58 address with unregistered network prefix %d", prefix),
				},
				normalized: sig.Raw,
			})
		}
	}
	return out, ""
}

func resolveBase58(reg *registry.Registry, sig *Signature) ([]resolved, string) {
	raw, err := encoding.DecodeBase58(sig.Raw)
	if err != nil {
		return nil, ""
	}
	var out []resolved
	for _, desc := range reg.ByFamily(registry.FamilyBase58) {
		if !desc.AcceptsLen(len(raw)) {
			continue
		}
		out = append(out, resolved{
			cand: Candidate{
				Chain:      desc.ID,
				Confidence: confidenceWeakMatch,
				Reasoning:  fmt.Sprintf("Base58 value of %d bytes (no checksum, length match only)", len(raw)),
			},
			normalized: sig.Raw,
		})
	}
	return out, ""
}

// prefer keeps the more specific of two failure reasons: checksum failures
// beat structural mismatches, which beat nothing.
func prefer(current, candidate string) string {
	if candidate == "" {
		return current
	}
	if current == "" || strings.Contains(candidate, reasonBadChecksum) && !strings.Contains(current, reasonBadChecksum) {
		return candidate
	}
	return current
}
