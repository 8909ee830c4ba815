package identify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grendel/chainid/pkg/registry"
)

func TestCharacterize_Hex(t *testing.T) {
	t.Parallel()

	sig := Characterize("0xd8da6bf26964af9d7eed9e03e53415d37aa96045")
	assert.True(t, sig.Compatible(registry.FamilyHex))
	assert.True(t, sig.HexPrefixed)
	assert.False(t, sig.Compatible(registry.FamilyBase58))
	assert.Equal(t, CaseLower, sig.Case)

	sig = Characterize("D8DA6BF26964AF9D7EED9E03E53415D37AA96045")
	assert.True(t, sig.Compatible(registry.FamilyHex))
	assert.False(t, sig.HexPrefixed)
	assert.Equal(t, CaseUpper, sig.Case)

	// Both prefix spellings characterize.
	for _, input := range []string{"0xD8DA6BF26964AF9D7EED9E03E53415D37AA96045", "0XD8DA6BF26964AF9D7EED9E03E53415D37AA96045"} {
		sig = Characterize(input)
		assert.True(t, sig.Compatible(registry.FamilyHex), "input %q", input)
		assert.True(t, sig.HexPrefixed, "input %q", input)
	}
}

// Base58 classification is permissive: Base58Check always rides along, and
// strings long enough to hold an SS58 frame admit that family too.
func TestCharacterize_Base58(t *testing.T) {
	t.Parallel()

	sig := Characterize("1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa")
	assert.True(t, sig.Compatible(registry.FamilyBase58))
	assert.True(t, sig.Compatible(registry.FamilyBase58Check))
	assert.False(t, sig.Compatible(registry.FamilySS58), "34 chars cannot hold an SS58 frame")

	sig = Characterize("12LuMsf7oj554PJbXs8D8ReBvBWC4x6od3kTVtP527T8dTif")
	assert.True(t, sig.Compatible(registry.FamilySS58))

	// 36 characters can already hold a 35-byte frame when the account ID
	// leads with zero bytes.
	sig = Characterize("111111111111111111111111111111111HC1")
	assert.True(t, sig.Compatible(registry.FamilySS58))
}

func TestCharacterize_Bech32(t *testing.T) {
	t.Parallel()

	sig := Characterize("bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4")
	assert.True(t, sig.Compatible(registry.FamilyBech32))
	assert.Equal(t, "bc", sig.HRP)

	// The all-uppercase form is still Bech32; mixed case is not.
	sig = Characterize("BC1QW508D6QEJXTDG4Y5R3ZARVARY0C5XW7KV8F3T4")
	assert.True(t, sig.Compatible(registry.FamilyBech32))

	sig = Characterize("bc1Qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4")
	assert.False(t, sig.Compatible(registry.FamilyBech32))
}

func TestCharacterize_NoFamilies(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "hello world", "0xZZZZ", "...", "abandon abandon about"} {
		sig := Characterize(input)
		assert.Empty(t, sig.Families, "input %q", input)
	}
}

func TestCasePattern(t *testing.T) {
	t.Parallel()

	assert.Equal(t, CaseNone, casePattern("1234567890"))
	assert.Equal(t, CaseLower, casePattern("abc123"))
	assert.Equal(t, CaseUpper, casePattern("ABC123"))
	assert.Equal(t, CaseMixed, casePattern("aBc123"))
}
