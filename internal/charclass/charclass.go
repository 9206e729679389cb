// Package charclass holds the byte classification tables for the HTTP/1.1
// grammar (RFC 7230). Every table is a 256-entry array indexed by the byte
// value; lookups never branch.
package charclass

// Table answers "is this byte a member of the class?". Entries not listed in
// a literal, including all of 0x80-0xFF, are false.
type Table [256]bool

// Has reports whether c belongs to the class.
func (t *Table) Has(c byte) bool {
	return t[c]
}

// Token is the RFC 7230 tchar set used for methods and header field names.
var Token = Table{
	// \0                                        \a    \b    \t    \n    \v    \f    \r
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	//                                                                   \e
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	// SP    !     "     #     $     %     &     '     (     )     *     +     ,     -     .     /
	false, true, false, true, true, true, true, true, false, false, true, true, false, true, true, false,
	// 0     1     2     3     4     5     6     7     8     9     :     ;     <     =     >     ?
	true, true, true, true, true, true, true, true, true, true, false, false, false, false, false, false,
	// @     A     B     C     D     E     F     G     H     I     J     K     L     M     N     O
	false, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	// P     Q     R     S     T     U     V     W     X     Y     Z     [     \     ]     ^     _
	true, true, true, true, true, true, true, true, true, true, true, false, false, false, true, true,
	// `     a     b     c     d     e     f     g     h     i     j     k     l     m     n     o
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	// p     q     r     s     t     u     v     w     x     y     z     {     |     }     ~     DEL
	true, true, true, true, true, true, true, true, true, true, true, false, true, false, true, false,
}

// Visible accepts bytes strictly between SP and DEL. Used for the request target.
var Visible = Table{
	// \0                                        \a    \b    \t    \n    \v    \f    \r
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	//                                                                   \e
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	// SP    !     "     #     $     %     &     '     (     )     *     +     ,     -     .     /
	false, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	// 0     1     2     3     4     5     6     7     8     9     :     ;     <     =     >     ?
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	// @     A     B     C     D     E     F     G     H     I     J     K     L     M     N     O
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	// P     Q     R     S     T     U     V     W     X     Y     Z     [     \     ]     ^     _
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	// `     a     b     c     d     e     f     g     h     i     j     k     l     m     n     o
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	// p     q     r     s     t     u     v     w     x     y     z     {     |     }     ~     DEL
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, false,
}

// Reason accepts the reason-phrase characters: HTAB, SP and visible ASCII.
var Reason = Table{
	// \0                                        \a    \b    \t    \n    \v    \f    \r
	false, false, false, false, false, false, false, false, false, true, false, false, false, false, false, false,
	//                                                                   \e
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	// SP    !     "     #     $     %     &     '     (     )     *     +     ,     -     .     /
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	// 0     1     2     3     4     5     6     7     8     9     :     ;     <     =     >     ?
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	// @     A     B     C     D     E     F     G     H     I     J     K     L     M     N     O
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	// P     Q     R     S     T     U     V     W     X     Y     Z     [     \     ]     ^     _
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	// `     a     b     c     d     e     f     g     h     i     j     k     l     m     n     o
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	// p     q     r     s     t     u     v     w     x     y     z     {     |     }     ~     DEL
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, false,
}

// FieldValue accepts the same bytes as Reason. It is kept as a separate table
// so the two productions can diverge (obs-text) without touching each other.
var FieldValue = Table{
	// \0                                        \a    \b    \t    \n    \v    \f    \r
	false, false, false, false, false, false, false, false, false, true, false, false, false, false, false, false,
	//                                                                   \e
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	// SP    !     "     #     $     %     &     '     (     )     *     +     ,     -     .     /
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	// 0     1     2     3     4     5     6     7     8     9     :     ;     <     =     >     ?
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	// @     A     B     C     D     E     F     G     H     I     J     K     L     M     N     O
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	// P     Q     R     S     T     U     V     W     X     Y     Z     [     \     ]     ^     _
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	// `     a     b     c     d     e     f     g     h     i     j     k     l     m     n     o
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	// p     q     r     s     t     u     v     w     x     y     z     {     |     }     ~     DEL
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, false,
}

// Digit accepts ASCII '0' through '9'.
var Digit = Table{'0': true, '1': true, '2': true, '3': true, '4': true, '5': true, '6': true, '7': true, '8': true, '9': true}

// Whitespace accepts SP and HTAB (OWS).
var Whitespace = Table{'\t': true, ' ': true}

// IsToken reports whether c is a tchar.
func IsToken(c byte) bool { return Token[c] }

// IsVisible reports whether c may appear in a request target.
func IsVisible(c byte) bool { return Visible[c] }

// IsReason reports whether c may appear in a reason phrase.
func IsReason(c byte) bool { return Reason[c] }

// IsFieldValue reports whether c may appear in a header field value.
func IsFieldValue(c byte) bool { return FieldValue[c] }

// IsDigit reports whether c is an ASCII digit.
func IsDigit(c byte) bool { return Digit[c] }

// ToDigit returns the numeric value of an ASCII digit.
func ToDigit(c byte) (uint8, bool) {
	if !Digit[c] {
		return 0, false
	}
	return c - '0', true
}
