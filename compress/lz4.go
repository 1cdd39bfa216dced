package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// ErrDecompressExhausted is returned by DecompressExact when no prefix of
// src decodes to exactly blockSize bytes, even after truncating one byte
// at a time down to nothing. Every byte of src has been tried; the block
// is genuinely corrupt.
var ErrDecompressExhausted = errors.New("compress: lz4 decompress exhausted all trailing-padding retries")

// fastPool and hcPool hold reusable LZ4 compressor instances; both
// compressor types carry internal state worth reusing across calls.
var (
	fastPool = sync.Pool{New: func() any { return &lz4.Compressor{} }}
	hcPool   = sync.Pool{New: func() any { return &lz4.CompressorHC{} }}
)

// Compress LZ4-compresses data at the given level.
//
// level <= 1 uses the fast encoder (lz4.Compressor); level > 1 uses the
// high-compression encoder (lz4.CompressorHC). pierrec/lz4 only exposes
// HC levels 1 through 9, so a requested level above 9 is clamped to 9 —
// the reference encoder's "high_compression" mode nominally accepts up to
// 12, but the Go ecosystem's LZ4 implementation tops out lower; see
// DESIGN.md.
func Compress(data []byte, level int) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	var n int
	var err error
	if level <= 1 {
		c, _ := fastPool.Get().(*lz4.Compressor)
		defer fastPool.Put(c)
		n, err = c.CompressBlock(data, dst)
	} else {
		c, _ := hcPool.Get().(*lz4.CompressorHC)
		c.Level = hcLevel(level)
		defer hcPool.Put(c)
		n, err = c.CompressBlock(data, dst)
	}
	if err != nil {
		return nil, fmt.Errorf("compress: lz4 compress block: %w", err)
	}

	return dst[:n], nil
}

// hcLevel maps a 1-based user level to pierrec's CompressionLevel constants.
func hcLevel(level int) lz4.CompressionLevel {
	switch {
	case level >= 9:
		return lz4.Level9
	case level == 8:
		return lz4.Level8
	case level == 7:
		return lz4.Level7
	case level == 6:
		return lz4.Level6
	case level == 5:
		return lz4.Level5
	case level == 4:
		return lz4.Level4
	case level == 3:
		return lz4.Level3
	default:
		return lz4.Level2
	}
}

// DecompressExact decompresses src, which is expected to hold an LZ4 block
// that inflates to exactly blockSize bytes.
//
// The compressed-length recorded implicitly in a ZSO index
// (entry[i+1]-entry[i], left-shifted by align) is an upper bound: when
// alignment padding follows a block, src may carry trailing garbage the
// LZ4 decoder cannot interpret as further tokens. DecompressExact tolerates
// this by truncating src one byte at a time from the end and retrying
// until a decode produces exactly blockSize bytes, or src is exhausted —
// see spec §4.3's "LZ4 length-recovery quirk".
func DecompressExact(src []byte, blockSize int) ([]byte, error) {
	dst := make([]byte, blockSize)

	for len(src) > 0 {
		n, err := lz4.UncompressBlock(src, dst)
		if err == nil && n == blockSize {
			return dst, nil
		}

		src = src[:len(src)-1]
	}

	return nil, ErrDecompressExhausted
}
