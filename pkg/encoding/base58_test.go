package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBase58String(t *testing.T) {
	t.Parallel()

	valid := []string{
		"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
		"4zvwRjXUKGfvwnParsHAS3HuSVzV5cA4McphgmoCtajS",
		"z",
	}
	for _, s := range valid {
		assert.True(t, IsBase58String(s), "input %q", s)
	}

	invalid := []string{
		"",
		"0", // zero is excluded
		"O", // capital o is excluded
		"I", // capital i is excluded
		"l", // lowercase L is excluded
		"1A1zP1eP5QGefi2D*",
	}
	for _, s := range invalid {
		assert.False(t, IsBase58String(s), "input %q", s)
	}
}

// TestBase58RoundTrip checks that leading zero bytes survive the encode and
// decode cycle as leading '1' characters.
func TestBase58RoundTrip(t *testing.T) {
	t.Parallel()

	payloads := [][]byte{
		{0x00},
		{0x00, 0x00, 0x01},
		{0xff, 0xee, 0xdd},
		make([]byte, 32),
	}
	for _, p := range payloads {
		encoded := EncodeBase58(p)
		decoded, err := DecodeBase58(encoded)
		require.NoError(t, err)
		assert.Equal(t, p, decoded)
	}
}

func TestDecodeBase58_KnownVector(t *testing.T) {
	t.Parallel()

	// Zero-seed Ed25519 public key in Base58 form.
	decoded, err := DecodeBase58("4zvwRjXUKGfvwnParsHAS3HuSVzV5cA4McphgmoCtajS")
	require.NoError(t, err)
	require.Len(t, decoded, 32)
	assert.Equal(t, "3b6a27bcceb6a42d62a3a8d02a6f0d73653215771de243a63ac048a18b59da29", EncodeHex(decoded))
}

func TestDecodeBase58_RejectsInvalidCharacters(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "0abc", "abcl", "OIl0"} {
		_, err := DecodeBase58(s)
		assert.Error(t, err, "input %q", s)
	}
}
