// Package encoder implements the ZSO write path: header and index
// reservation, per-block LZ4 compression with plain-block fallback, and the
// final index-table rewrite (§4.2).
package encoder

import (
	"io"

	"github.com/zsoformat/zso/compress"
	"github.com/zsoformat/zso/errs"
	"github.com/zsoformat/zso/format"
	"github.com/zsoformat/zso/internal/blockio"
	"github.com/zsoformat/zso/internal/options"
	"github.com/zsoformat/zso/internal/pool"
	"github.com/zsoformat/zso/internal/workerpool"
)

// Destination is what Encode writes to: sequential appends for the header,
// index reservation and payload blocks, plus the single positioned rewrite
// that patches the index table once every block is known. *os.File
// satisfies this.
type Destination interface {
	io.Writer
	io.WriterAt
}

// Encode reads the totalBytes/blockSize whole blocks from src (any trailing
// partial block past the last whole block is left unread and dropped, per
// §9) and writes a
// complete ZSO file to dst, reporting progress on the driver goroutine
// only.
func Encode(src io.Reader, srcPath string, dst Destination, dstPath string, totalBytes int64, opts ...Option) error {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	align := cfg.Align
	if !cfg.alignSet {
		align = EstimateAlign(totalBytes)
	}

	blockSize := cfg.BlockSize
	totalBlocks := uint64(totalBytes) / uint64(blockSize)

	header := format.Header{
		Magic:      format.Magic,
		HeaderSize: format.HeaderSize,
		TotalBytes: uint64(totalBytes),
		BlockSize:  uint32(blockSize),
		Version:    format.CurrentVersion,
		Align:      align,
	}

	w := blockio.NewWriter(dst, dstPath)
	if _, err := w.Write(format.EncodeHeader(header)); err != nil {
		return err
	}

	indexOffset := w.Pos()
	indexBytes := 4 * (int(totalBlocks) + 1)
	if err := w.WritePadding(int64(indexBytes), 0); err != nil {
		return err
	}

	entries := make([]uint32, totalBlocks+1)
	r := blockio.NewSequentialReader(src, srcPath)

	state := &encodeState{w: w, r: r, cfg: cfg, align: align, entries: entries, totalBlocks: totalBlocks}

	var err error
	if cfg.Parallel {
		err = state.runParallel()
	} else {
		err = state.runSerial()
	}
	if err != nil {
		return err
	}

	// Pad the end to alignment so the sentinel, shifted back, equals the
	// file length.
	_, padLen := format.AlignTo(w.Pos(), align)
	if err := w.WritePadding(padLen, cfg.PaddingByte); err != nil {
		return err
	}

	entries[totalBlocks] = uint32(w.Pos() >> align)

	return writeIndexTable(dst, dstPath, indexOffset, entries)
}

// encodeState bundles the per-call context commitBlock and the two drive
// loops need, so the per-block signature doesn't have to grow every time a
// new knob is added.
type encodeState struct {
	w           *blockio.Writer
	r           *blockio.SequentialReader
	cfg         *Config
	align       uint8
	entries     []uint32
	totalBlocks uint64
}

func writeIndexTable(dst Destination, path string, offset int64, entries []uint32) error {
	buf := make([]byte, 4*len(entries))
	for i, e := range entries {
		putUint32LE(buf[i*4:], e)
	}
	return blockio.RewriteIndexTable(dst, path, offset, buf)
}

func putUint32LE(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// commitBlock performs steps 3a-3g of §4.2 for one already-compressed
// block: pad to alignment, decide plain-vs-compressed, append the chosen
// payload, and return the packed index entry.
func (s *encodeState) commitBlock(raw, compressed []byte) (uint32, error) {
	_, padLen := format.AlignTo(s.w.Pos(), s.align)
	if padLen > 0 {
		if err := s.w.WritePadding(padLen, s.cfg.PaddingByte); err != nil {
			return 0, err
		}
	}

	shifted := uint32(s.w.Pos() >> s.align)

	payload := compressed
	isPlain := false
	if 100*len(compressed)/s.cfg.BlockSize >= s.cfg.Threshold {
		payload = raw
		isPlain = true
	} else if format.OffsetOverflows(shifted) {
		return 0, errs.ErrAlignmentOverflow
	}

	if _, err := s.w.Write(payload); err != nil {
		return 0, err
	}

	return format.PackIndexEntry(shifted, isPlain), nil
}

func (s *encodeState) runSerial() error {
	raw := make([]byte, s.cfg.BlockSize)
	for i := uint64(0); i < s.totalBlocks; i++ {
		if err := s.r.ReadBlock(raw); err != nil {
			return err
		}

		compressed, err := compress.Compress(raw, s.cfg.Level)
		if err != nil {
			return err
		}

		entry, err := s.commitBlock(raw, compressed)
		if err != nil {
			return err
		}
		s.entries[i] = entry

		if s.cfg.Progress != nil {
			s.cfg.Progress(int(i)+1, int(s.totalBlocks), s.w.Pos())
		}
	}
	return nil
}

func (s *encodeState) runParallel() error {
	done := uint64(0)
	for done < s.totalBlocks {
		batch := s.totalBlocks - done
		if batch > workerpool.MaxBatch {
			batch = workerpool.MaxBatch
		}

		raws := make([][]byte, batch)
		cleanups := make([]func(), batch)
		for i := range raws {
			raws[i], cleanups[i] = pool.GetByteSlice(s.cfg.BlockSize)
			if err := s.r.ReadBlock(raws[i]); err != nil {
				return err
			}
		}
		releaseBatch := func() {
			for _, c := range cleanups {
				c()
			}
		}

		jobs := make([]workerpool.Job, batch)
		for i := range jobs {
			raw := raws[i]
			level := s.cfg.Level
			jobs[i] = workerpool.Job{Index: i, Run: func() ([]byte, error) {
				return compress.Compress(raw, level)
			}}
		}
		results := workerpool.Run(jobs, 0)

		for i, res := range results {
			if res.Err != nil {
				releaseBatch()
				return res.Err
			}

			entry, err := s.commitBlock(raws[i], res.Output)
			if err != nil {
				releaseBatch()
				return err
			}
			s.entries[done+uint64(i)] = entry
		}
		releaseBatch()

		done += batch
		if s.cfg.Progress != nil {
			s.cfg.Progress(int(done), int(s.totalBlocks), s.w.Pos())
		}
	}
	return nil
}
