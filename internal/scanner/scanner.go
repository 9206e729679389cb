// Package scanner implements a forward-only cursor over a borrowed byte slice.
//
// A Scanner never copies: every successful read returns a sub-slice of the
// buffer it was created with, and advancing only narrows the remaining
// window. Reads that cannot be decided because the buffer ran out report
// false and leave the cursor untouched.
package scanner

import (
	"github.com/shapestone/shape-httphead/internal/charclass"
	"github.com/shapestone/shape-httphead/internal/simd"
)

// Scanner is a cursor over the unconsumed suffix of an input buffer.
type Scanner struct {
	buf []byte
}

// New returns a Scanner positioned at the start of buf.
func New(buf []byte) Scanner {
	return Scanner{buf: buf}
}

// Len returns the number of unconsumed bytes.
func (s *Scanner) Len() int {
	return len(s.buf)
}

// Empty reports whether every byte has been consumed.
func (s *Scanner) Empty() bool {
	return len(s.buf) == 0
}

// Remaining returns the unconsumed bytes without consuming them.
func (s *Scanner) Remaining() []byte {
	return s.buf
}

// Peek returns the byte offset positions ahead without consuming anything.
func (s *Scanner) Peek(offset int) (byte, bool) {
	if offset < 0 || offset >= len(s.buf) {
		return 0, false
	}
	return s.buf[offset], true
}

// Skip consumes n bytes. n must not exceed Len.
func (s *Scanner) Skip(n int) {
	s.buf = s.buf[n:]
}

// IsPrefixOf reports whether the remaining bytes are a prefix of candidate,
// i.e. whether candidate could still be matched once more bytes arrive.
func (s *Scanner) IsPrefixOf(candidate string) bool {
	return len(s.buf) <= len(candidate) && string(s.buf) == candidate[:len(s.buf)]
}

// SkipIf consumes literal if the remaining bytes start with it.
func (s *Scanner) SkipIf(literal string) bool {
	if len(s.buf) < len(literal) || string(s.buf[:len(literal)]) != literal {
		return false
	}
	s.buf = s.buf[len(literal):]
	return true
}

// Read consumes and returns exactly n bytes. It returns false, consuming
// nothing, if fewer than n bytes remain.
func (s *Scanner) Read(n int) ([]byte, bool) {
	if n < 0 || n > len(s.buf) {
		return nil, false
	}
	return s.take(n), true
}

// ReadWhile consumes the longest prefix whose bytes all satisfy accept.
//
// It returns false when accept holds for every remaining byte: the run might
// continue in bytes that have not arrived yet. A true result with an empty
// slice means the very first byte was rejected.
func (s *Scanner) ReadWhile(accept func(byte) bool) ([]byte, bool) {
	buf := s.buf
	i := 0
	for ; i+8 <= len(buf); i += 8 {
		_ = buf[i+7]
		switch {
		case !accept(buf[i]):
			return s.take(i), true
		case !accept(buf[i+1]):
			return s.take(i + 1), true
		case !accept(buf[i+2]):
			return s.take(i + 2), true
		case !accept(buf[i+3]):
			return s.take(i + 3), true
		case !accept(buf[i+4]):
			return s.take(i + 4), true
		case !accept(buf[i+5]):
			return s.take(i + 5), true
		case !accept(buf[i+6]):
			return s.take(i + 6), true
		case !accept(buf[i+7]):
			return s.take(i + 7), true
		}
	}
	for ; i < len(buf); i++ {
		if !accept(buf[i]) {
			return s.take(i), true
		}
	}
	return nil, false
}

// ReadWhileIn is ReadWhile specialised to a classification table, which
// keeps the per-byte test an array index instead of a call.
func (s *Scanner) ReadWhileIn(t *charclass.Table) ([]byte, bool) {
	return s.readWhileInFrom(0, t)
}

// ReadWhileFast behaves exactly like ReadWhileIn. stop must be the
// complement of t; whole 16-byte chunks are searched for a stop byte with
// simd.IndexRange and the tail is finished one byte at a time.
func (s *Scanner) ReadWhileFast(stop *simd.Ranges, t *charclass.Table) ([]byte, bool) {
	n, found := simd.IndexRange(s.buf, stop)
	if found {
		return s.take(n), true
	}
	return s.readWhileInFrom(n, t)
}

func (s *Scanner) readWhileInFrom(i int, t *charclass.Table) ([]byte, bool) {
	buf := s.buf
	for ; i+8 <= len(buf); i += 8 {
		_ = buf[i+7]
		switch {
		case !t[buf[i]]:
			return s.take(i), true
		case !t[buf[i+1]]:
			return s.take(i + 1), true
		case !t[buf[i+2]]:
			return s.take(i + 2), true
		case !t[buf[i+3]]:
			return s.take(i + 3), true
		case !t[buf[i+4]]:
			return s.take(i + 4), true
		case !t[buf[i+5]]:
			return s.take(i + 5), true
		case !t[buf[i+6]]:
			return s.take(i + 6), true
		case !t[buf[i+7]]:
			return s.take(i + 7), true
		}
	}
	for ; i < len(buf); i++ {
		if !t[buf[i]] {
			return s.take(i), true
		}
	}
	return nil, false
}

// take consumes n bytes and returns them with their capacity clipped, so an
// append by the caller can never write into the rest of the input.
func (s *Scanner) take(n int) []byte {
	v := s.buf[:n:n]
	s.buf = s.buf[n:]
	return v
}
