package identify

import (
	"strings"

	"github.com/grendel/chainid/pkg/encoding"
	"github.com/grendel/chainid/pkg/patterns"
	"github.com/grendel/chainid/pkg/registry"
)

// CasePattern describes the letter casing of the raw input.
type CasePattern int

const (
	CaseNone CasePattern = iota // no letters
	CaseLower
	CaseUpper
	CaseMixed
)

// Signature is the structural classification of one raw input: the set of
// encoding families it is syntactically compatible with, plus extracted
// facts. It is created per call and never persisted.
//
// Family membership is deliberately permissive: a family the input might
// belong to is always included (false negatives are forbidden) and false
// positives are resolved by decoding downstream.
type Signature struct {
	Raw      string
	Length   int
	Families map[registry.EncodingFamily]bool
	Case     CasePattern

	HexPrefixed bool
	HRP         string // candidate Bech32 HRP, unverified
}

// Compatible reports whether the signature admits an encoding family.
func (s *Signature) Compatible(f registry.EncodingFamily) bool {
	return s.Families[f]
}

var inputPatterns = patterns.GetInputPatterns()

// Characterize classifies a raw string into a Signature without committing
// to any chain.
func Characterize(input string) Signature {
	sig := Signature{
		Raw:      input,
		Length:   len(input),
		Families: make(map[registry.EncodingFamily]bool),
		Case:     casePattern(input),
	}
	if input == "" {
		return sig
	}

	if inputPatterns.Hex.MatchString(input) {
		sig.Families[registry.FamilyHex] = true
		sig.HexPrefixed = strings.HasPrefix(input, "0x") || strings.HasPrefix(input, "0X")
	}

	if inputPatterns.Base58.MatchString(input) {
		sig.Families[registry.FamilyBase58] = true
		sig.Families[registry.FamilyBase58Check] = true
		// The smallest SS58 frame is 35 bytes, and a Base58 character
		// never encodes less than one byte, so shorter strings cannot
		// hold one. Anything longer might: leading zero bytes encode one
		// character each, so the decoder settles it, not the length.
		if len(input) >= 35 {
			sig.Families[registry.FamilySS58] = true
		}
	}

	if inputPatterns.Bech32Lower.MatchString(input) || inputPatterns.Bech32Upper.MatchString(input) {
		sig.Families[registry.FamilyBech32] = true
		if hrp, _, ok := encoding.SplitBech32(input); ok {
			sig.HRP = strings.ToLower(hrp)
		}
	}

	return sig
}

func casePattern(s string) CasePattern {
	var hasLower, hasUpper bool
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		}
	}
	switch {
	case hasLower && hasUpper:
		return CaseMixed
	case hasLower:
		return CaseLower
	case hasUpper:
		return CaseUpper
	default:
		return CaseNone
	}
}
