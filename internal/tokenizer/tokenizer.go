package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-httphead/internal/charclass"
)

// NewTokenizer creates a tokenizer for HTTP message heads.
// Matchers are tried in order:
// 1. CRLF (line endings)
// 2. SP and HTAB
// 3. Colon
// 4. HTTP version
// 5. Word (Token or Text)
// 6. Invalid (any single character)
//
// Whitespace is significant in a head, so the default skipper is not used.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		CRLFMatcher(),
		tokenizer.StringMatcherFunc(TokenSP, " "),
		tokenizer.StringMatcherFunc(TokenHTAB, "\t"),
		tokenizer.StringMatcherFunc(TokenColon, ":"),
		VersionMatcher(),
		WordMatcher(),
		InvalidMatcher(),
	)
}

// NewTokenizerWithStream creates a tokenizer over a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// Tokenize lexes input in one call.
func Tokenize(input string) []tokenizer.Token {
	tok := NewTokenizer()
	tok.Initialize(input)
	tokens, _ := tok.Tokenize()
	return tokens
}

// CRLFMatcher matches \r\n, a bare \n, or a lone \r. The grammar rejects a
// lone \r; the lexer still reports it as a line ending so the Invalid token
// that follows points at the right place.
func CRLFMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}

		switch r {
		case '\r':
			stream.NextChar()
			if r2, ok := stream.PeekChar(); ok && r2 == '\n' {
				stream.NextChar()
				return tokenizer.NewToken(TokenCRLF, []rune{'\r', '\n'})
			}
			return tokenizer.NewToken(TokenCRLF, []rune{'\r'})
		case '\n':
			stream.NextChar()
			return tokenizer.NewToken(TokenCRLF, []rune{'\n'})
		}
		return nil
	}
}

// VersionMatcher matches "HTTP/1." followed by one digit.
func VersionMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		value := make([]rune, 0, 8)
		for _, expected := range "HTTP/1." {
			r, ok := stream.PeekChar()
			if !ok || r != expected {
				return nil
			}
			stream.NextChar()
			value = append(value, r)
		}

		r, ok := stream.PeekChar()
		if !ok || !isASCII(r) || !charclass.IsDigit(byte(r)) {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenVersion, append(value, r))
	}
}

// WordMatcher matches a run of visible characters other than ':'. The run is
// a Token when every character is a tchar and Text otherwise, so "GET" and
// "Content-Type" are Tokens while "/index.html?q=1" is Text.
func WordMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		kind := TokenToken

		for {
			r, ok := stream.PeekChar()
			if !ok || !isASCII(r) || r == ':' || !charclass.IsVisible(byte(r)) {
				break
			}
			if !charclass.IsToken(byte(r)) {
				kind = TokenText
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(kind, value)
	}
}

// InvalidMatcher consumes exactly one character of any kind.
func InvalidMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenInvalid, []rune{r})
	}
}

func isASCII(r rune) bool {
	return r >= 0 && r < 0x80
}
