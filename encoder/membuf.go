package encoder

import "bytes"

// memBuffer is a growable in-memory Destination, backing EncodeBytes. Every
// WriteAt call in this package targets a region already covered by a prior
// sequential Write, so it never needs to grow on WriteAt.
type memBuffer struct {
	buf []byte
}

func (m *memBuffer) Write(p []byte) (int, error) {
	m.buf = append(m.buf, p...)
	return len(p), nil
}

func (m *memBuffer) WriteAt(p []byte, off int64) (int, error) {
	end := off + int64(len(p))
	if end > int64(len(m.buf)) {
		grown := make([]byte, end)
		copy(grown, m.buf)
		m.buf = grown
	}
	copy(m.buf[off:end], p)
	return len(p), nil
}

// EncodeBytes encodes data entirely in memory and returns the resulting ZSO
// file bytes.
func EncodeBytes(data []byte, opts ...Option) ([]byte, error) {
	dst := &memBuffer{}
	if err := Encode(bytes.NewReader(data), "<memory>", dst, "<memory>", int64(len(data)), opts...); err != nil {
		return nil, err
	}
	return dst.buf, nil
}
