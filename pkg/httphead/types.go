// Package httphead parses the start-line and header block of HTTP/1.x
// requests and responses without copying.
//
// The parser is incremental in the simplest sense: given a buffer that holds
// only part of a head it reports Incomplete instead of failing, and the
// caller parses again, from the first byte, once more bytes have been read.
// Every string it returns is a sub-slice of the caller's buffer, so the
// buffer must not be modified while results are in use.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines as long as each call has its own header sink. Header sinks and
// Decoders are not safe for concurrent use.
//
// # Parsing APIs
//
//   - ParseRequest/ParseResponse - zero-copy parsing into a caller-chosen sink
//   - Validate - grammar check with a positioned error
//   - Parse/Render - AST round trip via shape-core
//   - AppendRequestHead/AppendResponseHead - wire-format encoding
//   - Decoder - reads heads from an io.Reader, retrying on Incomplete
package httphead

import "fmt"

// Status is the outcome of a parse that did not fail: either Complete with a
// value, or Incomplete because the buffer ended while the input was still
// valid. It never represents an invalid input; that is the error result.
type Status[T any] struct {
	value    T
	complete bool
}

// Complete returns a complete status holding v.
func Complete[T any](v T) Status[T] {
	return Status[T]{value: v, complete: true}
}

// Incomplete returns the incomplete status.
func Incomplete[T any]() Status[T] {
	return Status[T]{}
}

// IsComplete reports whether s holds a value.
func (s Status[T]) IsComplete() bool { return s.complete }

// IsIncomplete reports whether more bytes are needed.
func (s Status[T]) IsIncomplete() bool { return !s.complete }

// Get returns the value and whether s is complete.
func (s Status[T]) Get() (T, bool) {
	return s.value, s.complete
}

// Unwrap returns the value of a complete status. It panics on Incomplete.
func (s Status[T]) Unwrap() T {
	if !s.complete {
		panic("httphead: Unwrap of incomplete status")
	}
	return s.value
}

func (s Status[T]) String() string {
	if !s.complete {
		return "Incomplete"
	}
	return fmt.Sprintf("Complete(%v)", s.value)
}

// Map applies f to the value of a complete status and passes Incomplete
// through unchanged.
func Map[T, U any](s Status[T], f func(T) U) Status[U] {
	if !s.complete {
		return Incomplete[U]()
	}
	return Complete(f(s.value))
}

// AndThen chains a step that may itself be incomplete or fail. Incomplete
// short-circuits without calling f.
func AndThen[T, U any](s Status[T], f func(T) (Status[U], error)) (Status[U], error) {
	if !s.complete {
		return Incomplete[U](), nil
	}
	return f(s.value)
}

// Parsed pairs a parsed head with the number of leading buffer bytes it
// occupies. Bytes from Consumed on (a body, or a pipelined message) are left
// to the caller.
type Parsed[M any] struct {
	Message  M
	Consumed int
}

// Request is a parsed request head. Method and Target borrow the input
// buffer; Headers is the sink that was passed to the parse call.
type Request[H HeaderSink] struct {
	Method       string // "GET", "POST", etc.
	Target       string // request-target "/api/users?q=foo"
	MinorVersion uint8  // 0 or 1 in practice; any digit is accepted
	Headers      H
}

// Response is a parsed response head. Reason borrows the input buffer.
type Response[H HeaderSink] struct {
	MinorVersion uint8
	StatusCode   uint16 // three digits, not range checked
	Reason       string
	Headers      H
}

// Version returns the protocol version, e.g. "HTTP/1.1".
func (r *Request[H]) Version() string { return versionString(r.MinorVersion) }

// Version returns the protocol version, e.g. "HTTP/1.1".
func (r *Response[H]) Version() string { return versionString(r.MinorVersion) }

func versionString(minor uint8) string {
	return "HTTP/1." + string(rune('0'+minor%10))
}
