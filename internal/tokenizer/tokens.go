// Package tokenizer provides a diagnostic lexer for HTTP/1.x message heads
// built on Shape's tokenizer framework. It never rejects input: bytes that no
// production accepts come out as Invalid tokens, which makes it useful for
// showing where a head stops being well formed.
package tokenizer

// Token kinds.
const (
	TokenCRLF    = "CRLF"    // \r\n, bare \n, or a lone \r
	TokenSP      = "SP"      // single space
	TokenHTAB    = "HTAB"    // single horizontal tab
	TokenColon   = "Colon"   // ':' between field name and value
	TokenVersion = "Version" // HTTP/1.x
	TokenToken   = "Token"   // run of tchar: methods, field names
	TokenText    = "Text"    // run of visible chars containing a non-tchar
	TokenInvalid = "Invalid" // one character no production accepts
)
