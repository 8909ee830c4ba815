package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeHex_Prefixes verifies that 0x and 0X prefixes are stripped and
// the remaining digits decode identically.
func TestDecodeHex_Prefixes(t *testing.T) {
	t.Parallel()

	want := []byte{0xde, 0xad, 0xbe, 0xef}
	for _, input := range []string{"deadbeef", "0xdeadbeef", "0XDEADBEEF", "DeAdBeEf"} {
		raw, err := DecodeHex(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, raw, "input %q", input)
	}
}

func TestDecodeHex_Rejections(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "0x", "abc", "0xabc", "zz", "0xgg", "12 34"} {
		_, err := DecodeHex(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestEncodeHex_Lowercase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "deadbeef", EncodeHex([]byte{0xde, 0xad, 0xbe, 0xef}))
	assert.Equal(t, "00ff", EncodeHex([]byte{0x00, 0xff}))
}
