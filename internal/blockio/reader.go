package blockio

import (
	"io"

	"github.com/zsoformat/zso/errs"
)

// PositionedReader performs the decoder's seek-and-read-exact access
// pattern against an arbitrary io.ReaderAt.
type PositionedReader struct {
	src  io.ReaderAt
	path string
}

// NewPositionedReader wraps src for positioned reads. path is carried only
// for error messages.
func NewPositionedReader(src io.ReaderAt, path string) *PositionedReader {
	return &PositionedReader{src: src, path: path}
}

// ReadAt reads up to size bytes starting at offset, returning whatever was
// actually available when the underlying source hit EOF before filling the
// buffer. This leniency matters for the decoder's last-block read, whose
// size is only an upper bound derived from total_bytes (§4.3) and may
// legitimately run past the end of the file; any non-EOF error is still
// reported.
func (r *PositionedReader) ReadAt(offset int64, size int) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, size)
	n, err := r.src.ReadAt(buf, offset)
	if err != nil && err != io.EOF {
		return nil, errs.NewIoError("read", r.path, err)
	}

	return buf[:n], nil
}

// SequentialReader performs the encoder's forward-only, full-block read
// pattern against an arbitrary io.Reader.
type SequentialReader struct {
	src  io.Reader
	path string
}

// NewSequentialReader wraps src for sequential block reads. path is
// carried only for error messages.
func NewSequentialReader(src io.Reader, path string) *SequentialReader {
	return &SequentialReader{src: src, path: path}
}

// ReadBlock fills buf completely from src. The encoder only ever calls
// this for whole blocks within total_block*block_size, so a short read
// here is always an I/O fault, never the expected trailing partial block
// (that block is never read at all — see the §9 design note).
func (r *SequentialReader) ReadBlock(buf []byte) error {
	if _, err := io.ReadFull(r.src, buf); err != nil {
		return errs.NewIoError("read", r.path, err)
	}

	return nil
}
