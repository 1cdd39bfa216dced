package format

// PackIndexEntry combines a shifted physical offset with the "stored
// plain" flag into a single 32-bit index entry.
//
// offsetShifted must fit in 31 bits (bit 31 is reserved for the plain
// flag); PackIndexEntry does not itself check this — callers that skip
// compression for a block must check the offset for a bit-31 collision
// themselves (invariant 6 of the data model) before calling this with
// isPlain=true, and the encoder's AlignmentOverflow path is exactly that
// check applied to the non-plain case.
func PackIndexEntry(offsetShifted uint32, isPlain bool) uint32 {
	entry := offsetShifted & offsetMask
	if isPlain {
		entry |= plainFlag
	}

	return entry
}

// UnpackIndexEntry splits a packed 32-bit index entry back into its
// shifted offset and plain flag.
func UnpackIndexEntry(entry uint32) (offsetShifted uint32, isPlain bool) {
	return entry & offsetMask, entry&plainFlag != 0
}

// OffsetOverflows reports whether a shifted offset already occupies bit 31,
// the collision described by data-model invariant 6: a block that skips
// compression can never be marked plain if its own offset looks like a
// plain-flagged entry.
func OffsetOverflows(offsetShifted uint32) bool {
	return offsetShifted&plainFlag != 0
}

// AlignTo computes the padding needed to advance pos to the next multiple
// of 1<<shift, returning the new (already-aligned) position and the
// padding length. If pos is already aligned, paddingLen is 0; this is
// always the case when shift is 0.
func AlignTo(pos int64, shift uint8) (newPos int64, paddingLen int64) {
	alignment := int64(1) << shift
	remainder := pos % alignment
	if remainder == 0 {
		return pos, 0
	}

	padding := alignment - remainder

	return pos + padding, padding
}
