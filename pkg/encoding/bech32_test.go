package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The BIP-173 reference P2WPKH address and its 20-byte witness program.
const (
	segwitAddress = "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"
	segwitProgram = "751e76e8199196d454941c45d1b3a323f1433bd6"
)

func TestDecodeBech32_SegWitVector(t *testing.T) {
	t.Parallel()

	hrp, data, err := DecodeBech32(segwitAddress)
	require.NoError(t, err)
	assert.Equal(t, "bc", hrp)

	version, program, err := SegwitPayload(data)
	require.NoError(t, err)
	assert.Equal(t, byte(0), version)
	assert.Equal(t, segwitProgram, EncodeHex(program))
}

func TestDecodeBech32_UppercaseForm(t *testing.T) {
	t.Parallel()

	hrp, data, err := DecodeBech32(strings.ToUpper(segwitAddress))
	require.NoError(t, err)
	assert.Equal(t, "bc", hrp)

	_, program, err := SegwitPayload(data)
	require.NoError(t, err)
	assert.Equal(t, segwitProgram, EncodeHex(program))
}

func TestDecodeBech32_Rejections(t *testing.T) {
	t.Parallel()

	bad := []string{
		"",
		"bc1",                                        // no data
		"1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",   // empty HRP
		"bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t5", // corrupted checksum
		"bc1Qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", // mixed case
	}
	for _, s := range bad {
		_, _, err := DecodeBech32(s)
		assert.Error(t, err, "input %q", s)
	}
}

// TestBech32Payload_PaddingRejection checks that data whose leftover bits
// are non-zero does not regroup into bytes. SegWit data fails here because
// of the leading witness version group.
func TestBech32Payload_PaddingRejection(t *testing.T) {
	t.Parallel()

	_, data, err := DecodeBech32(segwitAddress)
	require.NoError(t, err)

	_, err = Bech32Payload(data)
	assert.Error(t, err)
}

func TestEncodeBech32_RoundTrip(t *testing.T) {
	t.Parallel()

	payload, err := DecodeHex(segwitProgram)
	require.NoError(t, err)

	encoded, err := EncodeBech32("cosmos", payload)
	require.NoError(t, err)
	assert.Equal(t, "cosmos1w508d6qejxtdg4y5r3zarvary0c5xw7k6ah60c", encoded)

	hrp, data, err := DecodeBech32(encoded)
	require.NoError(t, err)
	assert.Equal(t, "cosmos", hrp)

	back, err := Bech32Payload(data)
	require.NoError(t, err)
	assert.Equal(t, payload, back)
}

func TestSplitBech32(t *testing.T) {
	t.Parallel()

	hrp, data, ok := SplitBech32(segwitAddress)
	require.True(t, ok)
	assert.Equal(t, "bc", hrp)
	assert.Equal(t, "qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", data)

	// The separator is the last '1', so HRPs containing '1' still split.
	hrp, _, ok = SplitBech32("addr_test1qqqqqq")
	require.True(t, ok)
	assert.Equal(t, "addr_test", hrp)

	_, _, ok = SplitBech32("nodataatall")
	assert.False(t, ok)
}
