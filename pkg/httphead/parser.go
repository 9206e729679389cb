package httphead

import (
	"unsafe"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-httphead/internal/fastparser"
	"github.com/shapestone/shape-httphead/internal/parser"
	"github.com/shapestone/shape-httphead/internal/scanner"
)

// Options tunes parsing. The zero value gives the default behaviour.
type Options struct {
	// Strict rejects blank lines before the start-line. By default they are
	// skipped.
	Strict bool
	// Scalar disables the vectorized scan even when the CPU supports it.
	// Results are identical either way.
	Scalar bool
}

func (o Options) internal() fastparser.Options {
	strategy := scanner.Default
	if o.Scalar {
		strategy = scanner.Scalar
	}
	return fastparser.Options{Strict: o.Strict, Strategy: strategy}
}

// ParseRequest parses a request head from buf, pushing each header field
// into headers.
//
// It returns a Complete status with the request and the number of bytes the
// head occupies, an Incomplete status if buf ends early, or an Error. On
// Incomplete, read more bytes and call again with the whole buffer.
//
//	var storage [16]httphead.HeaderField
//	st, err := httphead.ParseRequest(buf, httphead.NewBoundedHeaders(storage[:]))
func ParseRequest[H HeaderSink](buf []byte, headers H) (Status[Parsed[Request[H]]], error) {
	return ParseRequestWith(buf, headers, Options{})
}

// ParseRequestWith is ParseRequest with options.
func ParseRequestWith[H HeaderSink](buf []byte, headers H, opts Options) (Status[Parsed[Request[H]]], error) {
	line, n, ok, err := fastparser.ParseRequest(buf, headers, opts.internal())
	if err != nil {
		return Incomplete[Parsed[Request[H]]](), err
	}
	return Map(status(line, ok), func(line fastparser.RequestLine) Parsed[Request[H]] {
		return Parsed[Request[H]]{
			Message: Request[H]{
				Method:       line.Method,
				Target:       line.Target,
				MinorVersion: line.MinorVersion,
				Headers:      headers,
			},
			Consumed: n,
		}
	}), nil
}

// ParseResponse parses a response head from buf. See ParseRequest.
func ParseResponse[H HeaderSink](buf []byte, headers H) (Status[Parsed[Response[H]]], error) {
	return ParseResponseWith(buf, headers, Options{})
}

// ParseResponseWith is ParseResponse with options.
func ParseResponseWith[H HeaderSink](buf []byte, headers H, opts Options) (Status[Parsed[Response[H]]], error) {
	line, n, ok, err := fastparser.ParseResponse(buf, headers, opts.internal())
	if err != nil {
		return Incomplete[Parsed[Response[H]]](), err
	}
	return Map(status(line, ok), func(line fastparser.StatusLine) Parsed[Response[H]] {
		return Parsed[Response[H]]{
			Message: Response[H]{
				MinorVersion: line.MinorVersion,
				StatusCode:   line.StatusCode,
				Reason:       line.Reason,
				Headers:      headers,
			},
			Consumed: n,
		}
	}), nil
}

func status[T any](v T, complete bool) Status[T] {
	if !complete {
		return Incomplete[T]()
	}
	return Complete(v)
}

// Parse parses a complete request or response head into an AST. The message
// type is chosen by the "HTTP/" prefix after any leading blank lines.
//
// For requests:
//
//	{ "type": "request", "method": "GET", "target": "/api",
//	  "minorVersion": 1,
//	  "headers": [{"name": "Host", "value": "example.com"}, ...],
//	  "length": 37 }
//
// For responses:
//
//	{ "type": "response", "minorVersion": 1, "statusCode": 200,
//	  "reason": "OK",
//	  "headers": [{"name": "Content-Type", "value": "text/plain"}, ...],
//	  "length": 44 }
//
// A truncated head yields ErrIncomplete; a grammar violation a *ParseError.
func Parse(input string) (ast.SchemaNode, error) {
	return ParseWith(input, Options{})
}

// ParseWith is Parse with options.
func ParseWith(input string, opts Options) (ast.SchemaNode, error) {
	node, err := parser.NewParser(s2b(input), opts.internal()).Parse()
	if err != nil {
		return nil, toParseError(err)
	}
	return node, nil
}

// s2b views s as bytes without copying. The parser only reads its input.
func s2b(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
