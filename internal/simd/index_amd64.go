//go:build amd64 && !noasm

package simd

import (
	"golang.org/x/sys/cpu"
)

var hasSSE42 = cpu.X86.HasSSE42

// Enabled reports whether IndexRange runs on the SSE4.2 instruction.
func Enabled() bool {
	return hasSSE42
}

// cmpestri compares the 16 bytes at chunk against the first n bytes of
// ranges with PCMPESTRI in unsigned-byte range mode and returns the index of
// the first matching byte, or 16. Implemented in index_amd64.s.
//
//go:noescape
func cmpestri(ranges *[ChunkSize]byte, n int32, chunk *byte) int

func findChunk(chunk []byte, r *Ranges) int {
	if hasSSE42 {
		return cmpestri(&r.set, r.n, &chunk[0])
	}
	return findChunkGeneric(chunk, r)
}
