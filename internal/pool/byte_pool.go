// Package pool provides sync.Pool-backed buffer reuse for the codec's
// hot paths (the parallel encoder's per-block raw input buffers).
package pool

import "sync"

// bytePool holds reusable byte slices for block-sized buffers.
// Reuse matters here because the encoder and decoder allocate one buffer
// per block; without pooling, a multi-gigabyte image would churn through
// hundreds of thousands of short-lived slices.
var bytePool = sync.Pool{
	New: func() any { return &[]byte{} },
}

// GetByteSlice retrieves a byte slice from the pool, resized to exactly
// size bytes. If the pooled slice has insufficient capacity, a new slice
// is allocated. The caller must call the returned cleanup function
// (typically via defer) to return the slice to the pool.
//
// Parameters:
//   - size: the desired length of the slice
//
// Returns:
//   - []byte: a slice with length equal to size
//   - func(): cleanup function that returns the slice to the pool
func GetByteSlice(size int) ([]byte, func()) {
	ptr, _ := bytePool.Get().(*[]byte)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]byte, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { bytePool.Put(ptr) }
}
