package tokenizer

import (
	"testing"

	coretok "github.com/shapestone/shape-core/pkg/tokenizer"
)

type want struct {
	kind  string
	value string
}

func checkTokens(t *testing.T, tokens []coretok.Token, expected []want) {
	t.Helper()
	if len(tokens) != len(expected) {
		t.Fatalf("token count = %d, want %d. tokens = %v", len(tokens), len(expected), formatTokens(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Kind() != exp.kind {
			t.Errorf("token[%d].Kind() = %q, want %q", i, tokens[i].Kind(), exp.kind)
		}
		if tokens[i].ValueString() != exp.value {
			t.Errorf("token[%d].Value() = %q, want %q", i, tokens[i].ValueString(), exp.value)
		}
	}
}

func TestTokenize_RequestLine(t *testing.T) {
	tok := NewTokenizer()
	tok.Initialize("GET /api HTTP/1.1\r\n")

	tokens, eos := tok.Tokenize()
	if !eos {
		t.Error("expected EOS")
	}
	checkTokens(t, tokens, []want{
		{TokenToken, "GET"},
		{TokenSP, " "},
		{TokenText, "/api"},
		{TokenSP, " "},
		{TokenVersion, "HTTP/1.1"},
		{TokenCRLF, "\r\n"},
	})
}

func TestTokenize_StatusLine(t *testing.T) {
	checkTokens(t, Tokenize("HTTP/1.0 404 Not Found\n"), []want{
		{TokenVersion, "HTTP/1.0"},
		{TokenSP, " "},
		{TokenToken, "404"},
		{TokenSP, " "},
		{TokenToken, "Not"},
		{TokenSP, " "},
		{TokenToken, "Found"},
		{TokenCRLF, "\n"},
	})
}

func TestTokenize_HeaderLine(t *testing.T) {
	checkTokens(t, Tokenize("Host:\texample.com:8080\r\n"), []want{
		{TokenToken, "Host"},
		{TokenColon, ":"},
		{TokenHTAB, "\t"},
		{TokenToken, "example.com"},
		{TokenColon, ":"},
		{TokenToken, "8080"},
		{TokenCRLF, "\r\n"},
	})
}

func TestTokenize_Invalid(t *testing.T) {
	checkTokens(t, Tokenize("a\x01b\x7f"), []want{
		{TokenToken, "a"},
		{TokenInvalid, "\x01"},
		{TokenToken, "b"},
		{TokenInvalid, "\x7f"},
	})
}

func TestTokenize_OtherVersions(t *testing.T) {
	// Only HTTP/1.x is a version; anything else is plain text.
	tokens := Tokenize("HTTP/2.0")
	if len(tokens) != 1 || tokens[0].Kind() != TokenText {
		t.Errorf("tokens = %v, want a single Text", formatTokens(tokens))
	}
}

func TestNewTokenizerWithStream(t *testing.T) {
	stream := coretok.NewStream("GET /api HTTP/1.1\r\n")
	tok := NewTokenizerWithStream(stream)

	tokens, eos := tok.Tokenize()
	if !eos {
		t.Error("expected EOS")
	}
	if len(tokens) == 0 {
		t.Fatal("expected tokens, got none")
	}
	if tokens[0].Kind() != TokenToken || tokens[0].ValueString() != "GET" {
		t.Errorf("tokens[0] = %v, want Token('GET')", tokens[0])
	}
}

func TestCRLFMatcher(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"\r\nX", "\r\n"},
		{"\nX", "\n"},
		{"\rGET", "\r"},
	}
	for _, tt := range tests {
		tok := CRLFMatcher()(coretok.NewStream(tt.in))
		if tok == nil {
			t.Fatalf("CRLFMatcher(%q) = nil", tt.in)
		}
		if tok.Kind() != TokenCRLF || tok.ValueString() != tt.want {
			t.Errorf("CRLFMatcher(%q) = %v, want CRLF(%q)", tt.in, tok, tt.want)
		}
	}
	for _, in := range []string{"", "GET /"} {
		if tok := CRLFMatcher()(coretok.NewStream(in)); tok != nil {
			t.Errorf("CRLFMatcher(%q) = %v, want nil", in, tok)
		}
	}
}

func TestVersionMatcher(t *testing.T) {
	for _, in := range []string{"", "GET /", "HTTP/", "HTTP/1.", "HTTP/1.x", "HTTP/2.0"} {
		if tok := VersionMatcher()(coretok.NewStream(in)); tok != nil {
			t.Errorf("VersionMatcher(%q) = %v, want nil", in, tok)
		}
	}
	tok := VersionMatcher()(coretok.NewStream("HTTP/1.19"))
	if tok == nil || tok.ValueString() != "HTTP/1.1" {
		t.Errorf("VersionMatcher(HTTP/1.19) = %v, want HTTP/1.1", tok)
	}
}

func TestWordMatcher(t *testing.T) {
	for _, in := range []string{"", ": value", " x", "\x00"} {
		if tok := WordMatcher()(coretok.NewStream(in)); tok != nil {
			t.Errorf("WordMatcher(%q) = %v, want nil", in, tok)
		}
	}
	tok := WordMatcher()(coretok.NewStream("Content-Type: x"))
	if tok == nil || tok.Kind() != TokenToken || tok.ValueString() != "Content-Type" {
		t.Errorf("WordMatcher = %v, want Token(Content-Type)", tok)
	}
	tok = WordMatcher()(coretok.NewStream("a/b c"))
	if tok == nil || tok.Kind() != TokenText || tok.ValueString() != "a/b" {
		t.Errorf("WordMatcher = %v, want Text(a/b)", tok)
	}
}

func TestInvalidMatcher_EOS(t *testing.T) {
	if tok := InvalidMatcher()(coretok.NewStream("")); tok != nil {
		t.Errorf("expected nil for EOS stream, got %v", tok)
	}
}

func formatTokens(tokens []coretok.Token) string {
	s := "["
	for i, t := range tokens {
		if i > 0 {
			s += ", "
		}
		s += t.String()
	}
	s += "]"
	return s
}
