package fastparser

// Error identifies the grammar production that rejected the input. It carries
// no payload, so values compare with == and errors.Is.
type Error uint8

const (
	ErrInvalidMethod Error = iota + 1
	ErrInvalidPath
	ErrInvalidVersion
	ErrInvalidStatusCode
	ErrInvalidReasonPhrase
	ErrInvalidFieldName
	ErrInvalidFieldValue
	ErrInvalidNewLine
	ErrOutOfCapacity
)

var errorText = [...]string{
	ErrInvalidMethod:       "invalid method",
	ErrInvalidPath:         "invalid request target",
	ErrInvalidVersion:      "invalid HTTP version",
	ErrInvalidStatusCode:   "invalid status code",
	ErrInvalidReasonPhrase: "invalid reason phrase",
	ErrInvalidFieldName:    "invalid header field name",
	ErrInvalidFieldValue:   "invalid header field value",
	ErrInvalidNewLine:      "invalid line terminator",
	ErrOutOfCapacity:       "header sink out of capacity",
}

var errorNames = [...]string{
	ErrInvalidMethod:       "InvalidMethod",
	ErrInvalidPath:         "InvalidPath",
	ErrInvalidVersion:      "InvalidVersion",
	ErrInvalidStatusCode:   "InvalidStatusCode",
	ErrInvalidReasonPhrase: "InvalidReasonPhrase",
	ErrInvalidFieldName:    "InvalidFieldName",
	ErrInvalidFieldValue:   "InvalidFieldValue",
	ErrInvalidNewLine:      "InvalidNewLine",
	ErrOutOfCapacity:       "OutOfCapacity",
}

// Error implements the error interface.
func (e Error) Error() string {
	if int(e) < len(errorText) && errorText[e] != "" {
		return "http: " + errorText[e]
	}
	return "http: unknown parse error"
}

// String returns the kind's identifier, e.g. "InvalidVersion".
func (e Error) String() string {
	if int(e) < len(errorNames) && errorNames[e] != "" {
		return errorNames[e]
	}
	return "Unknown"
}

// Kinds lists every error kind in declaration order.
func Kinds() []Error {
	return []Error{
		ErrInvalidMethod,
		ErrInvalidPath,
		ErrInvalidVersion,
		ErrInvalidStatusCode,
		ErrInvalidReasonPhrase,
		ErrInvalidFieldName,
		ErrInvalidFieldValue,
		ErrInvalidNewLine,
		ErrOutOfCapacity,
	}
}
