// Package decoder implements the ZSO read path: header and index
// validation, per-block positioned fetch, LZ4 decompression with the
// trailing-padding retry tolerance, and the block-length corruption check
// (§4.3).
package decoder

import (
	"encoding/binary"
	"io"

	"github.com/zsoformat/zso/compress"
	"github.com/zsoformat/zso/errs"
	"github.com/zsoformat/zso/format"
	"github.com/zsoformat/zso/internal/blockio"
	"github.com/zsoformat/zso/internal/diag"
	"github.com/zsoformat/zso/internal/options"
)

// Decode reads a complete ZSO file from src and writes the reconstructed
// original image to dst, in strict block order.
func Decode(src io.ReaderAt, srcPath string, dst io.Writer, dstPath string, opts ...Option) error {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	r := blockio.NewPositionedReader(src, srcPath)

	headerBytes, err := r.ReadAt(0, format.HeaderSize)
	if err != nil {
		return err
	}
	header, err := format.DecodeHeader(headerBytes)
	if err != nil {
		return err
	}

	totalBlocks := header.TotalBlocks()
	indexBytes, err := r.ReadAt(format.HeaderSize, 4*(int(totalBlocks)+1))
	if err != nil {
		return err
	}
	entries := make([]uint32, totalBlocks+1)
	for i := range entries {
		entries[i] = binary.LittleEndian.Uint32(indexBytes[i*4:])
	}

	blockSize := int(header.BlockSize)
	align := header.Align

	for i := uint64(0); i < totalBlocks; i++ {
		shifted, isPlain := format.UnpackIndexEntry(entries[i])
		readPos := int64(shifted) << align

		var readSize int64
		if isPlain {
			readSize = int64(blockSize)
		} else {
			nextShifted, _ := format.UnpackIndexEntry(entries[i+1])
			readSize = (int64(nextShifted) - int64(shifted)) << align
			if i == totalBlocks-1 {
				readSize = int64(header.TotalBytes) - readPos
			}
		}

		raw, err := r.ReadAt(readPos, int(readSize))
		if err != nil {
			return err
		}

		var payload []byte
		if isPlain {
			payload = raw
		} else {
			payload, err = compress.DecompressExact(raw, blockSize)
			if err != nil {
				return &errs.BlockCorruptionError{
					Index:       int(i),
					Got:         0,
					Want:        blockSize,
					Fingerprint: diag.Fingerprint(raw),
				}
			}
		}

		if len(payload) != blockSize {
			return &errs.BlockCorruptionError{
				Index:       int(i),
				Got:         len(payload),
				Want:        blockSize,
				Fingerprint: diag.Fingerprint(raw),
			}
		}

		if _, err := dst.Write(payload); err != nil {
			return errs.NewIoError("write", dstPath, err)
		}

		if cfg.Progress != nil {
			cfg.Progress(int(i)+1, int(totalBlocks))
		}
	}

	return nil
}

// DecodeBytes decodes a complete in-memory ZSO file and returns the
// reconstructed original image.
func DecodeBytes(data []byte, opts ...Option) ([]byte, error) {
	var dst growBuffer
	if err := Decode(bytesReaderAt(data), "<memory>", &dst, "<memory>", opts...); err != nil {
		return nil, err
	}
	return dst.buf, nil
}

type growBuffer struct {
	buf []byte
}

func (g *growBuffer) Write(p []byte) (int, error) {
	g.buf = append(g.buf, p...)
	return len(p), nil
}

type bytesReaderAtType struct {
	data []byte
}

func (b bytesReaderAtType) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func bytesReaderAt(data []byte) io.ReaderAt {
	return bytesReaderAtType{data: data}
}
