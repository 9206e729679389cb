package httphead

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/valyala/bytebufferpool"

	"github.com/shapestone/shape-httphead/internal/fastparser"
	"github.com/shapestone/shape-httphead/internal/parser"
)

// Render converts an AST node (from Parse) back to wire format.
//
// The node must be an ObjectNode with a "type" property of "request" or
// "response", as produced by Parse. The "length" property is ignored, and
// string properties are written as given, even when empty. Line
// endings are always CRLF and fields are written as "Name: Value", so
// Render(Parse(Render(node))) is byte-for-byte Render(node).
func Render(node ast.SchemaNode) ([]byte, error) {
	msgType, err := parser.NodeType(node)
	if err != nil {
		return nil, fmt.Errorf("http: Render: %w", err)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	switch msgType {
	case fastparser.TypeRequest:
		line, fields, err := parser.NodeToRequest(node)
		if err != nil {
			return nil, fmt.Errorf("http: Render: %w", err)
		}
		buf.B = AppendRequestHead(buf.B, line.Method, line.Target, line.MinorVersion, fields)

	default:
		line, fields, err := parser.NodeToResponse(node)
		if err != nil {
			return nil, fmt.Errorf("http: Render: %w", err)
		}
		buf.B = AppendResponseHead(buf.B, line.MinorVersion, line.StatusCode, line.Reason, fields)
	}

	result := make([]byte, buf.Len())
	copy(result, buf.B)
	return result, nil
}
