// Package simd finds the first byte of a buffer that falls inside a small set
// of inclusive byte ranges, 16 bytes at a time. On amd64 with SSE4.2 the
// comparison is a single PCMPESTRI per chunk; elsewhere a portable loop
// gives the same answers.
package simd

// ChunkSize is the number of bytes compared per step.
const ChunkSize = 16

// Ranges is a set of inclusive byte ranges packed as lo0, hi0, lo1, hi1, ...
// which is the operand layout PCMPESTRI expects in range mode.
type Ranges struct {
	set [ChunkSize]byte
	n   int32
}

// NewRanges packs bounds into a Ranges. bounds holds lo/hi pairs; at most
// eight ranges fit.
func NewRanges(bounds ...byte) Ranges {
	if len(bounds) == 0 || len(bounds)%2 != 0 || len(bounds) > ChunkSize {
		panic("simd: ranges need between 1 and 8 lo/hi pairs")
	}
	var r Ranges
	copy(r.set[:], bounds)
	r.n = int32(len(bounds))
	return r
}

// Len returns the number of packed bounds (twice the number of ranges).
func (r *Ranges) Len() int {
	return int(r.n)
}

// Contains reports whether c falls inside any of the ranges.
func (r *Ranges) Contains(c byte) bool {
	for i := int32(0); i+1 < r.n; i += 2 {
		if r.set[i] <= c && c <= r.set[i+1] {
			return true
		}
	}
	return false
}
