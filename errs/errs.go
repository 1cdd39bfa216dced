// Package errs defines the error taxonomy shared by the format, encoder,
// and decoder packages.
//
// Sentinel errors cover the error kinds that carry no extra data; the two
// kinds that do (a corrupt block's index, an I/O operation's failing path)
// are small struct types instead, so callers can recover the detail with
// errors.As. BlockCorruptionError still matches its ErrBlockCorruption
// kind with errors.Is; IoError unwraps to the underlying I/O error.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrCannotOpenInput is returned when the source file cannot be opened for reading.
	ErrCannotOpenInput = errors.New("zso: cannot open input")
	// ErrCannotCreateOutput is returned when the destination file cannot be created.
	ErrCannotCreateOutput = errors.New("zso: cannot create output")
	// ErrMalformedHeader is returned when a ZSO header fails structural validation
	// (bad magic, wrong header size, zero block_size or total_bytes).
	ErrMalformedHeader = errors.New("zso: malformed header")
	// ErrUnsupportedVersion is returned when a header's version field exceeds 1.
	ErrUnsupportedVersion = errors.New("zso: unsupported version")
	// ErrAlignmentOverflow is returned when a block was stored compressed but its
	// shifted offset already has bit 31 set. The caller must retry the encode
	// with a larger align value.
	ErrAlignmentOverflow = errors.New("zso: alignment overflow, retry encode with a larger align")
	// ErrInvalidBlockSize is returned when block_size is zero or not a multiple of 2048.
	ErrInvalidBlockSize = errors.New("zso: invalid block size")
	// ErrInvalidLevel is returned when the encoder is asked to run at level 0 or below.
	ErrInvalidLevel = errors.New("zso: invalid compression level")
)

// BlockCorruptionError reports that a decoded block's length did not equal
// block_size, the fatal corruption check of the decode algorithm.
type BlockCorruptionError struct {
	Index    int    // block index that failed to decode
	Got      int    // decompressed length actually obtained
	Want     int    // expected length (block_size)
	Fingerprint string // diagnostic xxhash of the raw compressed bytes, hex-encoded
}

func (e *BlockCorruptionError) Error() string {
	return fmt.Sprintf("zso: block %d corrupt: decoded %d bytes, want %d (fingerprint %s)",
		e.Index, e.Got, e.Want, e.Fingerprint)
}

// Is allows errors.Is(err, errs.ErrBlockCorruption)-style kind checks via a
// package-level marker, without requiring callers to know the struct shape.
func (e *BlockCorruptionError) Is(target error) bool {
	return target == ErrBlockCorruption
}

// ErrBlockCorruption is the kind marker matched by BlockCorruptionError.Is.
// It is never returned directly; decoders always return a *BlockCorruptionError.
var ErrBlockCorruption = errors.New("zso: block corruption")

// IoError wraps an I/O failure with the operation and path that failed, the
// way os.PathError does for stdlib errors, adding the underlying error for
// errors.Unwrap.
type IoError struct {
	Op   string // e.g. "seek", "read", "write"
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("zso: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// NewIoError constructs an IoError, or returns nil if err is nil, so call
// sites can write `return errs.NewIoError("read", path, err)` unconditionally
// inside an `if err != nil` block.
func NewIoError(op, path string, err error) *IoError {
	if err == nil {
		return nil
	}

	return &IoError{Op: op, Path: path, Err: err}
}
