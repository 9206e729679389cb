// Package fastparser implements the HTTP/1.x start-line and header grammar
// directly over the input bytes. It builds nothing but sub-slices of the
// input and reports truncated input as "not complete" rather than as an
// error, so callers can read more bytes and parse again from the start.
package fastparser

import (
	"github.com/shapestone/shape-httphead/internal/charclass"
	"github.com/shapestone/shape-httphead/internal/scanner"
	"github.com/shapestone/shape-httphead/internal/simd"
)

// Stop sets for the vectorized scan; each is the complement of the table it
// is paired with.
var (
	targetStop     = simd.NewRanges(0x00, 0x20, 0x7F, 0xFF)
	fieldValueStop = simd.NewRanges(0x00, 0x08, 0x0A, 0x1F, 0x7F, 0xFF)
)

// RequestLine is the parsed request-line.
type RequestLine struct {
	Method       string
	Target       string
	MinorVersion uint8
}

// StatusLine is the parsed status-line.
type StatusLine struct {
	MinorVersion uint8
	StatusCode   uint16
	Reason       string
}

// Options tunes a Parser. The zero value skips blank lines before the
// start-line and scans with the scalar strategy; use DefaultOptions for the
// best strategy the CPU supports.
type Options struct {
	// Strict rejects blank lines before the start-line instead of skipping
	// them.
	Strict bool
	// Strategy selects the scan used for request targets and field values.
	Strategy scanner.Strategy
}

// DefaultOptions returns lenient options with the detected scan strategy.
func DefaultOptions() Options {
	return Options{Strategy: scanner.Default}
}

// Parser holds the cursor for a single parse. It is not reused across calls:
// every parse starts from the first byte of the buffer.
type Parser struct {
	s        scanner.Scanner
	size     int
	strict   bool
	strategy scanner.Strategy
}

// NewParser creates a parser over data with DefaultOptions.
func NewParser(data []byte) *Parser {
	return NewParserWithOptions(data, DefaultOptions())
}

// NewParserWithOptions creates a parser over data.
func NewParserWithOptions(data []byte, opts Options) *Parser {
	p := &Parser{}
	initParser(p, data, opts)
	return p
}

// initParser initializes a parser in-place (stack-friendly, avoids heap alloc).
func initParser(p *Parser, data []byte, opts Options) {
	p.s = scanner.New(data)
	p.size = len(data)
	p.strict = opts.Strict
	p.strategy = opts.Strategy
}

// Consumed returns the number of bytes consumed so far.
func (p *Parser) Consumed() int {
	return p.size - p.s.Len()
}

// ParseRequest parses a request-line and header block, pushing each field
// into sink. The bool result is false when data ends before the blank line
// that terminates the header block.
func ParseRequest(data []byte, sink HeaderSink, opts Options) (RequestLine, int, bool, error) {
	var p Parser
	initParser(&p, data, opts)
	line, ok, err := p.ParseRequest(sink)
	if err != nil || !ok {
		return RequestLine{}, 0, ok, err
	}
	return line, p.Consumed(), true, nil
}

// ParseResponse parses a status-line and header block. See ParseRequest.
func ParseResponse(data []byte, sink HeaderSink, opts Options) (StatusLine, int, bool, error) {
	var p Parser
	initParser(&p, data, opts)
	line, ok, err := p.ParseResponse(sink)
	if err != nil || !ok {
		return StatusLine{}, 0, ok, err
	}
	return line, p.Consumed(), true, nil
}

// ParseRequest parses "METHOD SP target SP HTTP/1.x EOL" followed by the
// header block.
func (p *Parser) ParseRequest(sink HeaderSink) (RequestLine, bool, error) {
	var line RequestLine
	if ok, err := p.skipEmptyLines(); err != nil || !ok {
		return line, ok, err
	}

	method, ok, err := p.parseMethod()
	if err != nil || !ok {
		return line, ok, err
	}
	target, ok, err := p.parseTarget()
	if err != nil || !ok {
		return line, ok, err
	}
	minor, ok, err := p.parseRequestVersion()
	if err != nil || !ok {
		return line, ok, err
	}
	if ok, err := p.parseHeaders(sink); err != nil || !ok {
		return line, ok, err
	}

	line.Method = method
	line.Target = target
	line.MinorVersion = minor
	return line, true, nil
}

// ParseResponse parses "HTTP/1.x SP status SP reason EOL" followed by the
// header block.
func (p *Parser) ParseResponse(sink HeaderSink) (StatusLine, bool, error) {
	var line StatusLine
	if ok, err := p.skipEmptyLines(); err != nil || !ok {
		return line, ok, err
	}

	minor, ok, err := p.parseResponseVersion()
	if err != nil || !ok {
		return line, ok, err
	}
	code, ok, err := p.parseStatusCode()
	if err != nil || !ok {
		return line, ok, err
	}
	reason, ok, err := p.parseReasonPhrase()
	if err != nil || !ok {
		return line, ok, err
	}
	if ok, err := p.parseHeaders(sink); err != nil || !ok {
		return line, ok, err
	}

	line.MinorVersion = minor
	line.StatusCode = code
	line.Reason = reason
	return line, true, nil
}

func (p *Parser) parseMethod() (string, bool, error) {
	v, ok := p.s.ReadWhileIn(&charclass.Token)
	if !ok {
		return "", false, nil
	}
	if !p.consumeSpace() {
		return "", false, ErrInvalidMethod
	}
	return b2s(v), true, nil
}

func (p *Parser) parseTarget() (string, bool, error) {
	v, ok := p.strategy.ReadWhile(&p.s, &targetStop, &charclass.Visible)
	if !ok {
		return "", false, nil
	}
	if !p.consumeSpace() {
		return "", false, ErrInvalidPath
	}
	return b2s(v), true, nil
}

func (p *Parser) parseRequestVersion() (uint8, bool, error) {
	v, ok, err := p.parseHTTPVersion()
	if err != nil || !ok {
		return 0, ok, err
	}
	eol, ok, err := p.consumeEOL()
	if err != nil || !ok {
		return 0, ok, err
	}
	if !eol {
		return 0, false, ErrInvalidVersion
	}
	return v, true, nil
}

func (p *Parser) parseResponseVersion() (uint8, bool, error) {
	v, ok, err := p.parseHTTPVersion()
	if err != nil || !ok {
		return 0, ok, err
	}
	if p.s.Empty() {
		return 0, false, nil
	}
	if !p.consumeSpace() {
		return 0, false, ErrInvalidVersion
	}
	return v, true, nil
}

// parseHTTPVersion checks "HTTP/1." and one digit as a single 8-byte window,
// consuming it only on a match. With fewer than 8 bytes left it only decides
// between "could still match" and a definite mismatch.
func (p *Parser) parseHTTPVersion() (uint8, bool, error) {
	if v := p.s.Remaining(); len(v) >= 8 {
		if string(v[:7]) != "HTTP/1." {
			return 0, false, ErrInvalidVersion
		}
		d, ok := charclass.ToDigit(v[7])
		if !ok {
			return 0, false, ErrInvalidVersion
		}
		p.s.Skip(8)
		return d, true, nil
	}
	if p.s.IsPrefixOf("HTTP/1.") {
		return 0, false, nil
	}
	return 0, false, ErrInvalidVersion
}

// parseStatusCode accepts exactly three digits followed by SP.
func (p *Parser) parseStatusCode() (uint16, bool, error) {
	v, ok := p.s.ReadWhileIn(&charclass.Digit)
	if !ok {
		return 0, false, nil
	}
	if len(v) != 3 || !p.consumeSpace() {
		return 0, false, ErrInvalidStatusCode
	}
	code := uint16(v[0]-'0')*100 + uint16(v[1]-'0')*10 + uint16(v[2]-'0')
	return code, true, nil
}

func (p *Parser) parseReasonPhrase() (string, bool, error) {
	v, ok := p.s.ReadWhileIn(&charclass.Reason)
	if !ok {
		return "", false, nil
	}
	eol, ok, err := p.consumeEOL()
	if err != nil || !ok {
		return "", ok, err
	}
	if !eol {
		return "", false, ErrInvalidReasonPhrase
	}
	return b2s(v), true, nil
}

// parseHeaders reads fields until the blank line. A field reaches the sink
// only after its line terminator has been validated.
func (p *Parser) parseHeaders(sink HeaderSink) (bool, error) {
	for {
		end, ok, err := p.skipEOL()
		if err != nil || !ok {
			return ok, err
		}
		if end {
			return true, nil
		}

		name, ok, err := p.parseFieldName()
		if err != nil || !ok {
			return ok, err
		}
		value, ok, err := p.parseFieldValue()
		if err != nil || !ok {
			return ok, err
		}
		if err := sink.Push(HeaderField{Name: name, Value: value}); err != nil {
			return false, ErrOutOfCapacity
		}
	}
}

func (p *Parser) parseFieldName() (string, bool, error) {
	v, ok := p.s.ReadWhileIn(&charclass.Token)
	if !ok {
		return "", false, nil
	}
	if len(v) == 0 || !p.consumeNameValueSeparator() {
		return "", false, ErrInvalidFieldName
	}
	return b2s(v), true, nil
}

func (p *Parser) parseFieldValue() (string, bool, error) {
	v, ok := p.strategy.ReadWhile(&p.s, &fieldValueStop, &charclass.FieldValue)
	if !ok {
		return "", false, nil
	}
	eol, ok, err := p.consumeEOL()
	if err != nil || !ok {
		return "", ok, err
	}
	if !eol {
		return "", false, ErrInvalidFieldValue
	}
	return b2s(v), true, nil
}

func (p *Parser) consumeSpace() bool {
	return p.s.SkipIf(" ")
}

// consumeNameValueSeparator consumes ':' and any SP/HTAB after it. Trailing
// whitespace that reaches the end of the buffer is left for the value scan,
// which then reports the field as incomplete.
func (p *Parser) consumeNameValueSeparator() bool {
	if !p.s.SkipIf(":") {
		return false
	}
	p.s.ReadWhileIn(&charclass.Whitespace)
	return true
}

// consumeEOL consumes CRLF or a bare LF. The first result is false when the
// next byte starts no line terminator; the second is false when the buffer
// ends first, including a lone trailing CR.
func (p *Parser) consumeEOL() (bool, bool, error) {
	switch {
	case p.s.SkipIf("\r\n"), p.s.SkipIf("\n"):
		return true, true, nil
	case p.s.SkipIf("\r"):
		if p.s.Empty() {
			return false, false, nil
		}
		return false, false, ErrInvalidNewLine
	case p.s.Empty():
		return false, false, nil
	default:
		return false, true, nil
	}
}

// skipEOL is consumeEOL for the start of a line, where anything other than a
// terminator begins a new production.
func (p *Parser) skipEOL() (bool, bool, error) {
	c, ok := p.s.Peek(0)
	if !ok {
		return false, false, nil
	}
	switch c {
	case '\r':
		c, ok := p.s.Peek(1)
		if !ok {
			return false, false, nil
		}
		if c != '\n' {
			return false, false, ErrInvalidNewLine
		}
		p.s.Skip(2)
		return true, true, nil
	case '\n':
		p.s.Skip(1)
		return true, true, nil
	default:
		return false, true, nil
	}
}

// skipEmptyLines drops blank lines before the start-line unless the parser
// is strict.
func (p *Parser) skipEmptyLines() (bool, error) {
	if p.strict {
		return true, nil
	}
	for {
		eol, ok, err := p.skipEOL()
		if err != nil || !ok {
			return ok, err
		}
		if !eol {
			return true, nil
		}
	}
}
