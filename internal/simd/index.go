package simd

// IndexRange scans buf in whole 16-byte chunks and returns the offset of the
// first byte inside r together with true. If no chunk holds such a byte it
// returns the length of the scanned prefix (a multiple of 16) and false; the
// tail shorter than a chunk is never examined and is left to the caller.
func IndexRange(buf []byte, r *Ranges) (int, bool) {
	i := 0
	for len(buf)-i >= ChunkSize {
		if idx := findChunk(buf[i:i+ChunkSize], r); idx < ChunkSize {
			return i + idx, true
		}
		i += ChunkSize
	}
	return i, false
}

// findChunkGeneric returns the index of the first byte of chunk inside r, or
// ChunkSize.
func findChunkGeneric(chunk []byte, r *Ranges) int {
	for i := 0; i < ChunkSize; i++ {
		if r.Contains(chunk[i]) {
			return i
		}
	}
	return ChunkSize
}
