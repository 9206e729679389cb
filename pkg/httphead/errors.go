package httphead

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shapestone/shape-httphead/internal/fastparser"
	"github.com/shapestone/shape-httphead/internal/parser"
)

// Error is the kind of grammar violation. Values are comparable and work
// with errors.Is.
type Error = fastparser.Error

// Error kinds, one per grammar production that can fail.
const (
	ErrInvalidMethod       = fastparser.ErrInvalidMethod
	ErrInvalidPath         = fastparser.ErrInvalidPath
	ErrInvalidVersion      = fastparser.ErrInvalidVersion
	ErrInvalidStatusCode   = fastparser.ErrInvalidStatusCode
	ErrInvalidReasonPhrase = fastparser.ErrInvalidReasonPhrase
	ErrInvalidFieldName    = fastparser.ErrInvalidFieldName
	ErrInvalidFieldValue   = fastparser.ErrInvalidFieldValue
	ErrInvalidNewLine      = fastparser.ErrInvalidNewLine
	ErrOutOfCapacity       = fastparser.ErrOutOfCapacity
)

// ErrIncomplete is returned by Validate and Parse when the input is a valid
// but truncated head. ParseRequest and ParseResponse report this case as an
// Incomplete status instead.
var ErrIncomplete = parser.ErrIncomplete

// ParseError represents a grammar error found by Validate or Parse.
type ParseError struct {
	Kind     Error  // production that failed
	Position int    // byte offset in input (0 if unknown)
	Message  string // human-readable error message
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Position > 0 {
		return fmt.Sprintf("http: parse error at position %d: %s", e.Position, e.Message)
	}
	return fmt.Sprintf("http: %s", e.Message)
}

// Unwrap returns the error kind.
func (e *ParseError) Unwrap() error {
	if e.Kind == 0 {
		return nil
	}
	return e.Kind
}

func newParseErrorAtPos(kind Error, pos int) *ParseError {
	return &ParseError{
		Kind:     kind,
		Position: pos,
		Message:  strings.TrimPrefix(kind.Error(), "http: "),
	}
}

// toParseError converts internal grammar errors to *ParseError and passes
// everything else through.
func toParseError(err error) error {
	var se *parser.SyntaxError
	if errors.As(err, &se) {
		return newParseErrorAtPos(se.Kind, se.Offset)
	}
	return err
}
