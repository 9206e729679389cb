package fastparser

import "unsafe"

// HeaderField is a name/value pair borrowed from the parsed buffer. Both
// strings are validated ASCII and alias the input; they stay valid only as
// long as the caller keeps that buffer unchanged.
type HeaderField struct {
	Name  string
	Value string
}

// HeaderSink receives header fields one at a time as they are validated.
// A non-nil error from Push aborts the parse with ErrOutOfCapacity.
type HeaderSink interface {
	Push(field HeaderField) error
}

// b2s returns a string sharing b's memory. b must not be modified while the
// string is in use.
func b2s(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
