// Package workerpool runs a batch of independent jobs across a fixed number
// of goroutines and returns their results in submission order, regardless of
// completion order. It backs the encoder's parallel block-compression path:
// each job compresses one block, and the driver must commit results to the
// output file strictly in index order even though compression itself
// finishes out of order.
package workerpool
