package zso

import (
	"crypto/sha256"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zsoformat/zso/compress"
	"github.com/zsoformat/zso/encoder"
	"github.com/zsoformat/zso/errs"
	"github.com/zsoformat/zso/format"
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

func TestEncodeDecodeRoundTripOnDisk(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "image.iso")
	zsoPath := filepath.Join(dir, "image.zso")
	outPath := filepath.Join(dir, "restored.iso")

	input := pseudoRandomBlock(2048 * 8)
	require.NoError(t, os.WriteFile(srcPath, input, 0o644))

	require.NoError(t, Encode(srcPath, zsoPath, encoder.WithLevel(9), encoder.WithParallel(true)))
	require.NoError(t, Decode(zsoPath, outPath))

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, input, got)
}

func TestEncodeCannotOpenInput(t *testing.T) {
	dir := t.TempDir()
	err := Encode(filepath.Join(dir, "missing.iso"), filepath.Join(dir, "out.zso"))
	require.ErrorIs(t, err, errs.ErrCannotOpenInput)
}

func TestDecodeMalformedHeaderScenario(t *testing.T) {
	// S5: hand-crafted malformed header, magic = 0.
	dir := t.TempDir()
	zsoPath := filepath.Join(dir, "bad.zso")
	require.NoError(t, os.WriteFile(zsoPath, make([]byte, 64), 0o644))

	err := Decode(zsoPath, filepath.Join(dir, "out.iso"))
	require.ErrorIs(t, err, errs.ErrMalformedHeader)
}

func TestStatReturnsHeaderWithoutReadingBlocks(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "image.iso")
	zsoPath := filepath.Join(dir, "image.zso")

	input := pseudoRandomBlock(2048 * 3)
	require.NoError(t, os.WriteFile(srcPath, input, 0o644))
	require.NoError(t, Encode(srcPath, zsoPath))

	h, err := Stat(zsoPath)
	require.NoError(t, err)
	require.Equal(t, uint64(len(input)), h.TotalBytes)
	require.Equal(t, uint64(3), h.TotalBlocks())
}

// TestDecodeAcceptsVersionZero is scenario S6: a known-good ZSO produced by
// an older version-0 encoder must still decode correctly.
func TestDecodeAcceptsVersionZero(t *testing.T) {
	dir := t.TempDir()
	zsoPath := filepath.Join(dir, "legacy.zso")

	block := make([]byte, 2048) // all-zero, compresses well
	compressed, err := compress.Compress(block, 9)
	require.NoError(t, err)

	header := format.Header{
		Magic:      format.Magic,
		HeaderSize: format.HeaderSize,
		TotalBytes: uint64(len(block)),
		BlockSize:  2048,
		Version:    0,
		Align:      0,
	}

	var file []byte
	file = append(file, format.EncodeHeader(header)...)

	indexOffset := len(file)
	file = append(file, make([]byte, 4*2)...) // 1 block + sentinel

	dataStart := len(file)
	file = append(file, compressed...)

	entry0 := format.PackIndexEntry(uint32(dataStart), false)
	entry1 := format.PackIndexEntry(uint32(len(file)), false)
	binary.LittleEndian.PutUint32(file[indexOffset:], entry0)
	binary.LittleEndian.PutUint32(file[indexOffset+4:], entry1)

	require.NoError(t, os.WriteFile(zsoPath, file, 0o644))

	outPath := filepath.Join(dir, "restored.bin")
	require.NoError(t, Decode(zsoPath, outPath))

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, block, got)
}
