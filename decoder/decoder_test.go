package decoder

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zsoformat/zso/encoder"
	"github.com/zsoformat/zso/errs"
)

func pseudoRandomBlock(n int) []byte {
	out := make([]byte, 0, n)
	var counter uint64
	for len(out) < n {
		var in [8]byte
		binary.LittleEndian.PutUint64(in[:], counter)
		sum := sha256.Sum256(in[:])
		out = append(out, sum[:]...)
		counter++
	}
	return out[:n]
}

func TestDecodeBytesRoundTrip(t *testing.T) {
	input := pseudoRandomBlock(2048 * 10)

	for level := 1; level <= 12; level++ {
		encoded, err := encoder.EncodeBytes(input, encoder.WithLevel(level))
		require.NoError(t, err)

		decoded, err := DecodeBytes(encoded)
		require.NoError(t, err)
		require.Equal(t, input, decoded)
	}
}

func TestDecodeBytesParallelAndSerialAgree(t *testing.T) {
	input := pseudoRandomBlock(2048 * 30)

	serialEncoded, err := encoder.EncodeBytes(input, encoder.WithParallel(false))
	require.NoError(t, err)
	parallelEncoded, err := encoder.EncodeBytes(input, encoder.WithParallel(true))
	require.NoError(t, err)

	serialDecoded, err := DecodeBytes(serialEncoded)
	require.NoError(t, err)
	parallelDecoded, err := DecodeBytes(parallelEncoded)
	require.NoError(t, err)

	require.Equal(t, input, serialDecoded)
	require.Equal(t, input, parallelDecoded)
}

func TestDecodeBytesIdempotent(t *testing.T) {
	input := pseudoRandomBlock(2048 * 4)
	encoded, err := encoder.EncodeBytes(input)
	require.NoError(t, err)

	first, err := DecodeBytes(encoded)
	require.NoError(t, err)
	second, err := DecodeBytes(encoded)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestDecodeBytesMalformedHeader(t *testing.T) {
	bad := make([]byte, 64)
	_, err := DecodeBytes(bad)
	require.ErrorIs(t, err, errs.ErrMalformedHeader)
}

func TestDecodeBytesProgressReachesTotal(t *testing.T) {
	input := pseudoRandomBlock(2048 * 6)
	encoded, err := encoder.EncodeBytes(input)
	require.NoError(t, err)

	var lastDone, lastTotal int
	_, err = DecodeBytes(encoded, WithProgress(func(done, total int) {
		lastDone, lastTotal = done, total
	}))
	require.NoError(t, err)
	require.Equal(t, 6, lastTotal)
	require.Equal(t, 6, lastDone)
}

func TestDecodeBytesMixedPlainAndCompressed(t *testing.T) {
	var input []byte
	input = append(input, make([]byte, 2048)...)
	input = append(input, pseudoRandomBlock(2048)...)
	input = append(input, make([]byte, 2048)...)

	encoded, err := encoder.EncodeBytes(input)
	require.NoError(t, err)

	decoded, err := DecodeBytes(encoded)
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}
