//go:build !amd64 || noasm

package simd

// Enabled reports whether IndexRange runs on a vector instruction. It never
// does on this platform.
func Enabled() bool {
	return false
}

func findChunk(chunk []byte, r *Ranges) int {
	return findChunkGeneric(chunk, r)
}
