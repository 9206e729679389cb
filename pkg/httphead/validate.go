package httphead

import (
	"errors"

	"github.com/shapestone/shape-httphead/internal/fastparser"
)

// Validate checks that input is a syntactically valid and complete HTTP/1.x
// request or response head. Anything after the head is ignored.
// Returns nil if valid, ErrIncomplete if input ends early, or a *ParseError
// identifying the problem.
func Validate(input string) error {
	return ValidateWith(input, Options{})
}

// ValidateWith is Validate with options.
func ValidateWith(input string, opts Options) error {
	n, complete, err := fastparser.Validate(s2b(input), opts.internal())
	var kind Error
	if errors.As(err, &kind) {
		return newParseErrorAtPos(kind, n)
	}
	if err != nil {
		return err
	}
	if !complete {
		return ErrIncomplete
	}
	return nil
}
