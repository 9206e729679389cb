package httphead

import (
	"errors"
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
)

func TestRender_Request(t *testing.T) {
	node, err := Parse("GET /api HTTP/1.0\nHost:\texample.com\nX-Empty:\n\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	got, err := Render(node)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "GET /api HTTP/1.0\r\nHost: example.com\r\nX-Empty: \r\n\r\n"
	if string(got) != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_Response(t *testing.T) {
	node, err := Parse("HTTP/1.1 404 Not Found\r\nContent-Length: 0\r\n\r\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	got, err := Render(node)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if string(got) != "HTTP/1.1 404 Not Found\r\nContent-Length: 0\r\n\r\n" {
		t.Errorf("Render() = %q", got)
	}
}

func TestRender_Errors(t *testing.T) {
	pos := ast.Position{}
	tests := []struct {
		name string
		node ast.SchemaNode
	}{
		{"literal", ast.NewLiteralNode("x", pos)},
		{"no type", ast.NewObjectNode(map[string]ast.SchemaNode{}, pos)},
		{"bad type", ast.NewObjectNode(map[string]ast.SchemaNode{
			"type": ast.NewLiteralNode("trailer", pos),
		}, pos)},
		{"bad version", ast.NewObjectNode(map[string]ast.SchemaNode{
			"type":         ast.NewLiteralNode("request", pos),
			"minorVersion": ast.NewLiteralNode(int64(10), pos),
		}, pos)},
		{"bad headers", ast.NewObjectNode(map[string]ast.SchemaNode{
			"type":    ast.NewLiteralNode("response", pos),
			"headers": ast.NewLiteralNode("Host: x", pos),
		}, pos)},
	}
	for _, tt := range tests {
		if _, err := Render(tt.node); err == nil {
			t.Errorf("%s: Render() error = nil", tt.name)
		}
	}
}

// The grammar accepts an empty method and target, so Render writes them.
func TestRender_EmptyStartLineParts(t *testing.T) {
	node, err := Parse(" / HTTP/1.1\r\n\r\n")
	if err != nil {
		t.Fatalf("Parse(empty method) error = %v", err)
	}
	if got, err := Render(node); err != nil || string(got) != " / HTTP/1.1\r\n\r\n" {
		t.Errorf("Render() = (%q, %v)", got, err)
	}

	node, err = Parse("GET  HTTP/1.1\r\n\r\n")
	if err != nil {
		t.Fatalf("Parse(empty target) error = %v", err)
	}
	if got, err := Render(node); err != nil || string(got) != "GET  HTTP/1.1\r\n\r\n" {
		t.Errorf("Render() = (%q, %v)", got, err)
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("GET / HTTP/1.1\r\n")
	if !errors.Is(err, ErrIncomplete) {
		t.Errorf("Parse(truncated) error = %v, want ErrIncomplete", err)
	}

	_, err = Parse("GET / HTTP/1.1\r\nbad header\r\n\r\n")
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != ErrInvalidFieldName || pe.Position != 19 {
		t.Errorf("Parse(bad header) error = %v", err)
	}
}

func TestParseWith_Strict(t *testing.T) {
	if _, err := ParseWith("\nGET / HTTP/1.1\n\n", Options{Strict: true}); !errors.Is(err, ErrInvalidMethod) {
		t.Errorf("ParseWith(strict) error = %v, want %v", err, ErrInvalidMethod)
	}
}

func TestAppendHeads(t *testing.T) {
	fields := []HeaderField{{Name: "Host", Value: "example.com"}}
	got := AppendRequestHead([]byte("prefix|"), "OPTIONS", "*", 1, fields)
	if string(got) != "prefix|OPTIONS * HTTP/1.1\r\nHost: example.com\r\n\r\n" {
		t.Errorf("AppendRequestHead() = %q", got)
	}

	got = AppendResponseHead(nil, 0, 7, "", nil)
	if string(got) != "HTTP/1.0 007 \r\n\r\n" {
		t.Errorf("AppendResponseHead() = %q", got)
	}

	// The encoder's output parses back to the same values.
	st, err := ParseResponse(got, &GrowableHeaders{})
	if err != nil || st.Unwrap().Message.StatusCode != 7 {
		t.Errorf("ParseResponse(encoded) = (%v, %v)", st, err)
	}
}
