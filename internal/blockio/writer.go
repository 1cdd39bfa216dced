package blockio

import (
	"io"

	"github.com/zsoformat/zso/errs"
)

// Writer performs the encoder's write-side protocol against the
// destination file: every call appends sequentially and the writer tracks
// its own position, so callers never need to ask the OS where the cursor
// is.
type Writer struct {
	dst  io.Writer
	path string
	pos  int64
}

// NewWriter wraps dst, whose write cursor is assumed to start at position
// 0. path is carried only for error messages.
func NewWriter(dst io.Writer, path string) *Writer {
	return &Writer{dst: dst, path: path}
}

// Pos returns the writer's current position — the byte offset the next
// Write call will land at.
func (w *Writer) Pos() int64 { return w.pos }

// Write appends p to the destination and advances Pos by len(p).
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.dst.Write(p)
	w.pos += int64(n)
	if err != nil {
		return n, errs.NewIoError("write", w.path, err)
	}

	return n, nil
}

// WritePadding emits n copies of b in a single write, the alignment-gap
// filler of §4.4. A non-positive n is a no-op.
func (w *Writer) WritePadding(n int64, b byte) error {
	if n <= 0 {
		return nil
	}

	buf := make([]byte, n)
	for i := range buf {
		buf[i] = b
	}

	_, err := w.Write(buf)

	return err
}

// RewriteIndexTable overwrites the reserved index-table region starting at
// offset with data, using a single positioned write. This is the
// encoder's final step: every payload block has already been appended
// sequentially, and only the index table — still all zeros — needs
// patching.
func RewriteIndexTable(dst io.WriterAt, path string, offset int64, data []byte) error {
	if _, err := dst.WriteAt(data, offset); err != nil {
		return errs.NewIoError("write", path, err)
	}

	return nil
}
