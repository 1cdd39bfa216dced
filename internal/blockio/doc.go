// Package blockio implements the ZSO codec's file I/O primitives:
// positioned reads for the decoder, sequential appends and batched padding
// emission for the encoder, and the single positioned rewrite that patches
// the index table in place once every block has been written.
//
// Nothing here understands the ZSO format; it operates on raw offsets and
// byte counts supplied by the format and encoder/decoder packages.
package blockio
