package httphead

import (
	"bytes"
	"testing"
)

// Seed corpora for requests and responses used across multiple fuzz targets.

var requestSeeds = [][]byte{
	[]byte("GET / HTTP/1.1\r\nHost: example.com\r\n\r\n"),
	[]byte("POST /api/users HTTP/1.1\r\nHost: api.example.com\r\nContent-Type: application/json\r\nContent-Length: 15\r\n\r\n{\"name\":\"alice\"}"),
	[]byte("PUT /resource/1 HTTP/1.1\r\nHost: example.com\r\nAuthorization: Bearer token123\r\nContent-Length: 4\r\n\r\ndata"),
	[]byte("DELETE /item/42 HTTP/1.1\r\nHost: example.com\r\n\r\n"),
	[]byte("OPTIONS * HTTP/1.1\r\nHost: example.com\r\n\r\n"),
	[]byte("GET /path?q=hello+world&page=2 HTTP/1.1\r\nHost: example.com\r\nAccept: text/html,application/json\r\nAccept-Encoding: gzip, deflate\r\nConnection: keep-alive\r\n\r\n"),
	// Edge cases
	[]byte("GET / HTTP/1.0\n\n"),
	[]byte("\r\n\nGET / HTTP/1.1\r\n\r\n"),
	[]byte("GET / HTTP/1.1\r\nHost: example.com\r\nX-Empty:\r\n\r\n"),
	[]byte("GET / HTTP/1.1\r\nX-Tab:\tv\t\r\n\r\n"),
	[]byte(benchRequest),
}

var responseSeeds = [][]byte{
	[]byte("HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 5\r\n\r\nhello"),
	[]byte("HTTP/1.1 404 Not Found\r\nContent-Type: application/json\r\nContent-Length: 14\r\n\r\n{\"error\":\"gone\"}"),
	[]byte("HTTP/1.1 204 No Content\r\n\r\n"),
	[]byte("HTTP/1.1 301 Moved Permanently\r\nLocation: https://example.com/\r\nContent-Length: 0\r\n\r\n"),
	[]byte("HTTP/1.1 100 Continue\r\n\r\n"),
	// Edge cases
	[]byte("HTTP/1.0 200 \r\n\r\n"),
	[]byte("HTTP/1.1 200 OK\r\nX-Custom-Header: value with spaces\r\n\r\n"),
}

// FuzzParseRequest checks that the request parser never panics, that a
// complete result never claims more bytes than it was given, and that a
// bounded sink only ever differs from a growable one by running out.
func FuzzParseRequest(f *testing.F) {
	for _, seed := range requestSeeds {
		f.Add(seed)
	}
	// Pathological inputs
	f.Add([]byte(""))
	f.Add([]byte("\r\n\r\n"))
	f.Add([]byte("GET"))
	f.Add([]byte("GET / HTTP/1.1"))
	f.Add([]byte("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"))
	f.Add(bytes.Repeat([]byte("X-Header: value\r\n"), 100))

	f.Fuzz(func(t *testing.T, data []byte) {
		st, err := ParseRequest(data, &GrowableHeaders{})
		if p, ok := st.Get(); ok && p.Consumed > len(data) {
			t.Fatalf("Consumed = %d > %d", p.Consumed, len(data))
		}

		var storage [4]HeaderField
		_, errBounded := ParseRequest(data, NewBoundedHeaders(storage[:]))
		if errBounded != err && errBounded != ErrOutOfCapacity {
			t.Fatalf("bounded sink error = %v, growable = %v", errBounded, err)
		}
	})
}

// FuzzParseResponse checks that the response parser never panics.
func FuzzParseResponse(f *testing.F) {
	for _, seed := range responseSeeds {
		f.Add(seed)
	}
	// Pathological inputs
	f.Add([]byte(""))
	f.Add([]byte("HTTP/1.1"))
	f.Add([]byte("HTTP/1.1 200"))
	f.Add([]byte("HTTP/1.1 200 OK\r\n"))
	f.Add([]byte("HTTP/1.1 99999 Status\r\n\r\n"))
	f.Add([]byte("HTTP/1.1 -1 Bad\r\n\r\n"))

	f.Fuzz(func(t *testing.T, data []byte) {
		st, err := ParseResponse(data, &GrowableHeaders{})
		if err != nil && st.IsComplete() {
			t.Fatalf("complete status with error %v", err)
		}
		if p, ok := st.Get(); ok && p.Message.StatusCode > 999 {
			t.Fatalf("StatusCode = %d", p.Message.StatusCode)
		}
	})
}

// FuzzRoundTrip checks that anything Parse accepts renders to a head that
// parses and renders to the same bytes.
func FuzzRoundTrip(f *testing.F) {
	for _, seed := range requestSeeds {
		f.Add(seed)
	}
	for _, seed := range responseSeeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		node, err := Parse(string(data))
		if err != nil {
			return
		}
		first, err := Render(node)
		if err != nil {
			t.Fatalf("Render() error = %v for %q", err, data)
		}
		node2, err := Parse(string(first))
		if err != nil {
			t.Fatalf("Parse(Render()) error = %v for %q", err, first)
		}
		second, err := Render(node2)
		if err != nil || !bytes.Equal(first, second) {
			t.Fatalf("round trip unstable: %q vs %q (%v)", first, second, err)
		}
	})
}
