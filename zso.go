// Package zso implements a bidirectional codec for the ZSO container
// format: a block-indexed, LZ4-compressed wrapper around raw disc images.
// Encode compresses an image into a ZSO file whose fixed-size blocks are
// independently compressed and indexed by offset; Decode reconstructs the
// original image byte-for-byte.
//
//	if err := zso.Encode("image.iso", "image.zso"); err != nil {
//		log.Fatal(err)
//	}
//	if err := zso.Decode("image.zso", "image.iso"); err != nil {
//		log.Fatal(err)
//	}
//
// Both directions are single-pass and whole-file: there is no random-access
// read API on an encoded file and no patching of an existing one.
package zso

import (
	"os"

	"github.com/zsoformat/zso/decoder"
	"github.com/zsoformat/zso/encoder"
	"github.com/zsoformat/zso/errs"
	"github.com/zsoformat/zso/format"
)

// Encode opens srcPath for reading and dstPath for writing, then runs the
// encoder over the full pipeline (§4.2), guaranteeing both handles are
// released before Encode returns, on every exit path.
func Encode(srcPath, dstPath string, opts ...encoder.Option) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return errs.ErrCannotOpenInput
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return errs.NewIoError("stat", srcPath, err)
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return errs.ErrCannotCreateOutput
	}
	defer dst.Close()

	return encoder.Encode(src, srcPath, dst, dstPath, info.Size(), opts...)
}

// Decode opens srcPath for reading and dstPath for writing, then runs the
// decoder over the full pipeline (§4.3), guaranteeing both handles are
// released before Decode returns, on every exit path.
func Decode(srcPath, dstPath string, opts ...decoder.Option) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return errs.ErrCannotOpenInput
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return errs.ErrCannotCreateOutput
	}
	defer dst.Close()

	return decoder.Decode(src, srcPath, dst, dstPath, opts...)
}

// Stat opens path and returns its decoded ZSO header, without reading any
// block payload. Useful for external collaborators that want total_bytes,
// block_size or align before committing to a full decode.
func Stat(path string) (format.Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return format.Header{}, errs.ErrCannotOpenInput
	}
	defer f.Close()

	buf := make([]byte, format.HeaderSize)
	if _, err := f.ReadAt(buf, 0); err != nil {
		return format.Header{}, errs.NewIoError("read", path, err)
	}

	return format.DecodeHeader(buf)
}
