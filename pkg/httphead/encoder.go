package httphead

// AppendRequestHead appends a request head in wire format to dst: the
// request-line, one "Name: Value" line per field and the blank line, all
// terminated by CRLF. Inputs are written as given; no validation is done.
func AppendRequestHead(dst []byte, method, target string, minorVersion uint8, fields []HeaderField) []byte {
	dst = appendRequestLine(dst, method, target, minorVersion)
	dst = appendHeaders(dst, fields)
	return appendCRLF(dst)
}

// AppendResponseHead appends a response head in wire format to dst.
// See AppendRequestHead.
func AppendResponseHead(dst []byte, minorVersion uint8, statusCode uint16, reason string, fields []HeaderField) []byte {
	dst = appendStatusLine(dst, minorVersion, statusCode, reason)
	dst = appendHeaders(dst, fields)
	return appendCRLF(dst)
}
