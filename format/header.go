package format

import (
	"encoding/binary"

	"github.com/zsoformat/zso/errs"
)

// Header is the fixed 24-byte ZSO header.
type Header struct {
	Magic      uint32 // literal Magic
	HeaderSize uint32 // always HeaderSize
	TotalBytes uint64 // uncompressed image length in bytes
	BlockSize  uint32 // logical block length, multiple of 2048
	Version    uint8  // 1 on encode; 0 or 1 accepted on decode
	Align      uint8  // alignment shift; offsets in the index are offset>>Align
}

// TotalBlocks returns total_block = total_bytes / block_size, the number
// of whole blocks the index covers. Any trailing partial block is dropped,
// so a round trip is exact only for images whose length is a multiple of
// block_size.
func (h Header) TotalBlocks() uint64 {
	if h.BlockSize == 0 {
		return 0
	}

	return h.TotalBytes / uint64(h.BlockSize)
}

// EncodeHeader serializes h into a new HeaderSize-byte little-endian buffer.
// It does not validate h; callers are responsible for its fields being
// sane.
func EncodeHeader(h Header) []byte {
	buf := make([]byte, HeaderSize)

	binary.LittleEndian.PutUint32(buf[0:4], h.Magic)
	binary.LittleEndian.PutUint32(buf[4:8], h.HeaderSize)
	binary.LittleEndian.PutUint64(buf[8:16], h.TotalBytes)
	binary.LittleEndian.PutUint32(buf[16:20], h.BlockSize)
	buf[20] = h.Version
	buf[21] = h.Align
	// buf[22:24] left zero: reserved padding.

	return buf
}

// DecodeHeader parses and validates a ZSO header from data.
//
// Rejects (all as errs.ErrMalformedHeader, except version which is
// errs.ErrUnsupportedVersion):
//   - data shorter than HeaderSize
//   - magic mismatch
//   - header_size != HeaderSize
//   - block_size == 0
//   - total_bytes == 0
//   - version > MaxAcceptedVersion
func DecodeHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrMalformedHeader
	}

	h := Header{
		Magic:      binary.LittleEndian.Uint32(data[0:4]),
		HeaderSize: binary.LittleEndian.Uint32(data[4:8]),
		TotalBytes: binary.LittleEndian.Uint64(data[8:16]),
		BlockSize:  binary.LittleEndian.Uint32(data[16:20]),
		Version:    data[20],
		Align:      data[21],
	}

	if h.Magic != Magic {
		return Header{}, errs.ErrMalformedHeader
	}
	if h.HeaderSize != HeaderSize {
		return Header{}, errs.ErrMalformedHeader
	}
	if h.BlockSize == 0 {
		return Header{}, errs.ErrMalformedHeader
	}
	if h.TotalBytes == 0 {
		return Header{}, errs.ErrMalformedHeader
	}
	if h.Version > MaxAcceptedVersion {
		return Header{}, errs.ErrUnsupportedVersion
	}

	return h, nil
}
