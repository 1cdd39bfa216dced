package format

// Magic is the literal 4-byte magic number ("ZISO" read as a little-endian
// uint32) that opens every ZSO file.
const Magic uint32 = 0x4F53495A

// HeaderSize is the fixed, version-independent size of the ZSO header.
const HeaderSize = 24

// CurrentVersion is the version the encoder always writes.
const CurrentVersion uint8 = 1

// MaxAcceptedVersion is the highest header version the decoder accepts.
const MaxAcceptedVersion uint8 = 1

// plainFlag is index-entry bit 31, marking a block as stored uncompressed.
const plainFlag uint32 = 0x80000000

// offsetMask isolates the 31-bit shifted offset from a packed index entry.
const offsetMask uint32 = 0x7fffffff
