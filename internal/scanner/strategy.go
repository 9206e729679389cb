package scanner

import (
	"github.com/shapestone/shape-httphead/internal/charclass"
	"github.com/shapestone/shape-httphead/internal/simd"
)

// Strategy selects how long runs of class bytes are skipped. Both strategies
// return identical results; they differ only in throughput.
type Strategy uint8

const (
	// Scalar checks one byte per table lookup.
	Scalar Strategy = iota
	// Vector searches 16-byte chunks for a stop byte first.
	Vector
)

// Default is chosen once, at start-up, from the CPU capability probe.
var Default = Detect()

// Detect returns Vector when the vectorized range search is compiled in and
// the CPU supports it, and Scalar otherwise.
func Detect() Strategy {
	if simd.Enabled() {
		return Vector
	}
	return Scalar
}

// ReadWhile consumes the run of bytes in t from s. stop must be the
// complement of t.
func (st Strategy) ReadWhile(s *Scanner, stop *simd.Ranges, t *charclass.Table) ([]byte, bool) {
	if st == Vector {
		return s.ReadWhileFast(stop, t)
	}
	return s.ReadWhileIn(t)
}

func (st Strategy) String() string {
	switch st {
	case Scalar:
		return "scalar"
	case Vector:
		return "vector"
	default:
		return "unknown"
	}
}
