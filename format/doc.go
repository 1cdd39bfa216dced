// Package format defines the ZSO container's on-disk layout: the 24-byte
// header, the packed index-entry encoding, and the alignment arithmetic
// shared by the encoder and decoder.
//
// Everything here is pure: no file I/O, no compression. It exists so the
// encoder and decoder packages (and any future tool that wants to inspect
// a ZSO file without decoding its payload) share exactly one definition of
// the format.
//
// # Header
//
//	offset  size  field
//	0       4     magic (0x4F53495A, little-endian)
//	4       4     header_size (always 24)
//	8       8     total_bytes (uncompressed image length)
//	16      4     block_size (multiple of 2048)
//	20      1     version (1 on encode; 0 or 1 accepted on decode)
//	21      1     align
//	22      2     reserved, zero
//
// # Index entries
//
// Immediately following the header: total_block+1 little-endian uint32
// entries. Bit 31 is the "stored plain" flag; bits 30..0 are the block's
// byte offset shifted right by align. See PackIndexEntry/UnpackIndexEntry.
package format
