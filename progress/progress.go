// Package progress defines the callback shapes the encoder and decoder
// invoke as they work through a file's blocks, letting a caller drive a
// progress bar or log periodic status without the codec knowing anything
// about presentation.
package progress

// EncodeFunc is invoked after each block (or, in the parallel path, after
// each completed batch) has been written to the destination. done and total
// are block counts; writePos is the destination's current length in bytes.
type EncodeFunc func(done, total int, writePos int64)

// DecodeFunc is invoked after each block has been verified and written to
// the destination. done and total are block counts.
type DecodeFunc func(done, total int)
