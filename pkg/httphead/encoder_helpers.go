package httphead

import "strconv"

// appendCRLF appends \r\n to buf.
func appendCRLF(buf []byte) []byte {
	return append(buf, '\r', '\n')
}

// appendVersion appends "HTTP/1.x".
func appendVersion(buf []byte, minor uint8) []byte {
	buf = append(buf, "HTTP/1."...)
	return append(buf, '0'+minor%10)
}

// appendRequestLine appends "METHOD TARGET HTTP/1.x\r\n" to buf.
func appendRequestLine(buf []byte, method, target string, minor uint8) []byte {
	buf = append(buf, method...)
	buf = append(buf, ' ')
	buf = append(buf, target...)
	buf = append(buf, ' ')
	buf = appendVersion(buf, minor)
	return appendCRLF(buf)
}

// appendStatusLine appends "HTTP/1.x CODE REASON\r\n" to buf. The code is
// zero padded to three digits.
func appendStatusLine(buf []byte, minor uint8, statusCode uint16, reason string) []byte {
	buf = appendVersion(buf, minor)
	buf = append(buf, ' ')
	if statusCode < 100 {
		buf = append(buf, '0')
	}
	if statusCode < 10 {
		buf = append(buf, '0')
	}
	buf = strconv.AppendUint(buf, uint64(statusCode), 10)
	buf = append(buf, ' ')
	buf = append(buf, reason...)
	return appendCRLF(buf)
}

// appendHeaders appends all fields in "Name: Value\r\n" format.
func appendHeaders(buf []byte, fields []HeaderField) []byte {
	for _, f := range fields {
		buf = append(buf, f.Name...)
		buf = append(buf, ':', ' ')
		buf = append(buf, f.Value...)
		buf = appendCRLF(buf)
	}
	return buf
}
