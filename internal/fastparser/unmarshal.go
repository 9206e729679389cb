package fastparser

import (
	"bytes"
)

// Message types reported by DetectMessageType.
const (
	TypeRequest  = "request"
	TypeResponse = "response"
)

// DetectMessageType returns "request" or "response" based on the data prefix.
// Blank lines in front of the start-line are ignored, as the parser does.
func DetectMessageType(data []byte) string {
	data = bytes.TrimLeft(data, "\r\n")
	if bytes.HasPrefix(data, []byte("HTTP/")) {
		return TypeResponse
	}
	return TypeRequest
}

// discard accepts and drops every field.
type discard struct{}

func (discard) Push(HeaderField) error { return nil }

// Validate parses data as a request or response head (auto-detected),
// discarding header fields. n is the head length when complete, and
// otherwise the offset at which parsing stopped.
func Validate(data []byte, opts Options) (n int, complete bool, err error) {
	var p Parser
	initParser(&p, data, opts)
	if DetectMessageType(data) == TypeResponse {
		_, complete, err = p.ParseResponse(discard{})
	} else {
		_, complete, err = p.ParseRequest(discard{})
	}
	return p.Consumed(), complete, err
}
