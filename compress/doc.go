// Package compress wraps pierrec/lz4's block codec with the two behaviors
// the ZSO format needs: level-selected compression (fast vs. high
// compression) and exact-length decompression that tolerates trailing
// alignment padding.
//
// This package knows nothing about ZSO's header or index; it operates on
// one block's bytes at a time, sized by its caller.
package compress
