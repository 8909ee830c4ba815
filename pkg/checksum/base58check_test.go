package checksum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The Bitcoin genesis coinbase address.
const genesisAddress = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"

func TestBase58CheckDecode_Genesis(t *testing.T) {
	t.Parallel()

	version, payload, err := Base58CheckDecode(genesisAddress)
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), version)
	assert.Len(t, payload, 20)
}

func TestBase58CheckRoundTrip(t *testing.T) {
	t.Parallel()

	payload := make([]byte, 20)
	for i := range payload {
		payload[i] = byte(i)
	}
	for _, version := range []byte{0x00, 0x05, 0x1e, 0x41} {
		encoded := Base58CheckEncode(version, payload)
		gotVersion, gotPayload, err := Base58CheckDecode(encoded)
		require.NoError(t, err, "version 0x%02x", version)
		assert.Equal(t, version, gotVersion)
		assert.Equal(t, payload, gotPayload)
	}
}

// TestBase58CheckDecode_MutationRejection flips every character of a valid
// address to its alphabet neighbor and requires each mutant to fail.
func TestBase58CheckDecode_MutationRejection(t *testing.T) {
	t.Parallel()

	for i := 0; i < len(genesisAddress); i++ {
		mutant := []byte(genesisAddress)
		if mutant[i] == 'z' {
			mutant[i] = 'y'
		} else if mutant[i] == '9' {
			mutant[i] = '8'
		} else {
			// Step within the alphabet, skipping excluded characters.
			switch mutant[i] {
			case 'H':
				mutant[i] = 'J'
			case 'N':
				mutant[i] = 'P'
			case 'k':
				mutant[i] = 'm'
			default:
				mutant[i]++
			}
		}
		_, _, err := Base58CheckDecode(string(mutant))
		assert.Error(t, err, "mutation at %d: %s", i, mutant)
	}
}

func TestBase58CheckDecode_ChecksumSentinel(t *testing.T) {
	t.Parallel()

	corrupted := genesisAddress[:len(genesisAddress)-1] + "b"
	_, _, err := Base58CheckDecode(corrupted)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChecksum)
}
