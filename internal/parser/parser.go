// Package parser maps HTTP/1.x message heads to shape-core AST nodes and
// back. It builds on the fastparser grammar and only accepts complete heads.
//
// A head is mapped to an ObjectNode with the following structure:
//
// Request:
//
//	{ "type": "request", "method": "GET", "target": "/api",
//	  "minorVersion": 1,
//	  "headers": [{"name": "Host", "value": "example.com"}, ...],
//	  "length": 37 }
//
// Response:
//
//	{ "type": "response", "minorVersion": 1, "statusCode": 200,
//	  "reason": "OK",
//	  "headers": [{"name": "Content-Type", "value": "text/plain"}, ...],
//	  "length": 44 }
//
// "length" is the number of bytes the head occupies in the input, so
// anything after it (usually a body) starts at that offset.
package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-httphead/internal/fastparser"
)

var zeroPos = ast.Position{}

// ErrIncomplete is returned when the input ends before the head does.
var ErrIncomplete = errors.New("http: incomplete message head")

// SyntaxError reports the grammar error kind and the offset of the first
// byte the grammar could not accept.
type SyntaxError struct {
	Kind   fastparser.Error
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Kind.Error(), e.Offset)
}

// Unwrap returns the error kind.
func (e *SyntaxError) Unwrap() error {
	return e.Kind
}

// fieldList is a growable header sink.
type fieldList []fastparser.HeaderField

func (l *fieldList) Push(f fastparser.HeaderField) error {
	*l = append(*l, f)
	return nil
}

// Parser produces AST nodes from a message head.
type Parser struct {
	data []byte
	opts fastparser.Options
}

// NewParser creates a new AST parser for the given input.
func NewParser(data []byte, opts fastparser.Options) *Parser {
	return &Parser{data: data, opts: opts}
}

// Parse parses a request or response head, chosen by the "HTTP/" prefix.
func (p *Parser) Parse() (ast.SchemaNode, error) {
	if fastparser.DetectMessageType(p.data) == fastparser.TypeResponse {
		return p.parseResponse()
	}
	return p.parseRequest()
}

func (p *Parser) parseRequest() (ast.SchemaNode, error) {
	var fields fieldList
	fp := fastparser.NewParserWithOptions(p.data, p.opts)
	line, ok, err := fp.ParseRequest(&fields)
	if err := check(fp, ok, err); err != nil {
		return nil, err
	}
	return RequestToNode(line, fields, fp.Consumed()), nil
}

func (p *Parser) parseResponse() (ast.SchemaNode, error) {
	var fields fieldList
	fp := fastparser.NewParserWithOptions(p.data, p.opts)
	line, ok, err := fp.ParseResponse(&fields)
	if err := check(fp, ok, err); err != nil {
		return nil, err
	}
	return ResponseToNode(line, fields, fp.Consumed()), nil
}

func check(fp *fastparser.Parser, ok bool, err error) error {
	var kind fastparser.Error
	if errors.As(err, &kind) {
		return &SyntaxError{Kind: kind, Offset: fp.Consumed()}
	}
	if err != nil {
		return err
	}
	if !ok {
		return ErrIncomplete
	}
	return nil
}

// RequestToNode builds the AST for a parsed request head.
func RequestToNode(line fastparser.RequestLine, fields []fastparser.HeaderField, length int) ast.SchemaNode {
	return ast.NewObjectNode(map[string]ast.SchemaNode{
		"type":         ast.NewLiteralNode(fastparser.TypeRequest, zeroPos),
		"method":       ast.NewLiteralNode(line.Method, zeroPos),
		"target":       ast.NewLiteralNode(line.Target, zeroPos),
		"minorVersion": ast.NewLiteralNode(int64(line.MinorVersion), zeroPos),
		"headers":      headersToNode(fields),
		"length":       ast.NewLiteralNode(int64(length), zeroPos),
	}, zeroPos)
}

// ResponseToNode builds the AST for a parsed response head.
func ResponseToNode(line fastparser.StatusLine, fields []fastparser.HeaderField, length int) ast.SchemaNode {
	return ast.NewObjectNode(map[string]ast.SchemaNode{
		"type":         ast.NewLiteralNode(fastparser.TypeResponse, zeroPos),
		"minorVersion": ast.NewLiteralNode(int64(line.MinorVersion), zeroPos),
		"statusCode":   ast.NewLiteralNode(int64(line.StatusCode), zeroPos),
		"reason":       ast.NewLiteralNode(line.Reason, zeroPos),
		"headers":      headersToNode(fields),
		"length":       ast.NewLiteralNode(int64(length), zeroPos),
	}, zeroPos)
}

func headersToNode(fields []fastparser.HeaderField) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(fields))
	for i, f := range fields {
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"name":  ast.NewLiteralNode(f.Name, zeroPos),
			"value": ast.NewLiteralNode(f.Value, zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

// NodeType returns the "type" property of a head node.
func NodeType(node ast.SchemaNode) (string, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return "", fmt.Errorf("expected ObjectNode, got %T", node)
	}
	typ := stringProp(obj.Properties(), "type")
	switch typ {
	case fastparser.TypeRequest, fastparser.TypeResponse:
		return typ, nil
	default:
		return "", fmt.Errorf("unknown message type %q", typ)
	}
}

// NodeToRequest converts a request node back to its parts.
func NodeToRequest(node ast.SchemaNode) (fastparser.RequestLine, []fastparser.HeaderField, error) {
	var line fastparser.RequestLine
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return line, nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	line.Method = stringProp(props, "method")
	line.Target = stringProp(props, "target")
	minor, err := intProp(props, "minorVersion", 9)
	if err != nil {
		return line, nil, err
	}
	line.MinorVersion = uint8(minor)

	fields, err := nodeToHeaders(props["headers"])
	if err != nil {
		return line, nil, err
	}
	return line, fields, nil
}

// NodeToResponse converts a response node back to its parts.
func NodeToResponse(node ast.SchemaNode) (fastparser.StatusLine, []fastparser.HeaderField, error) {
	var line fastparser.StatusLine
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return line, nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	minor, err := intProp(props, "minorVersion", 9)
	if err != nil {
		return line, nil, err
	}
	code, err := intProp(props, "statusCode", 999)
	if err != nil {
		return line, nil, err
	}
	line.MinorVersion = uint8(minor)
	line.StatusCode = uint16(code)
	line.Reason = stringProp(props, "reason")

	fields, err := nodeToHeaders(props["headers"])
	if err != nil {
		return line, nil, err
	}
	return line, fields, nil
}

func nodeToHeaders(node ast.SchemaNode) ([]fastparser.HeaderField, error) {
	if node == nil {
		return nil, nil
	}
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected ArrayDataNode for headers, got %T", node)
	}

	elements := arr.Elements()
	fields := make([]fastparser.HeaderField, 0, len(elements))
	for _, elem := range elements {
		obj, ok := elem.(*ast.ObjectNode)
		if !ok {
			continue
		}
		props := obj.Properties()
		fields = append(fields, fastparser.HeaderField{
			Name:  stringProp(props, "name"),
			Value: stringProp(props, "value"),
		})
	}
	return fields, nil
}

func stringProp(props map[string]ast.SchemaNode, key string) string {
	if lit, ok := props[key].(*ast.LiteralNode); ok {
		s, _ := lit.Value().(string)
		return s
	}
	return ""
}

// intProp reads an integer literal in [0, max]. Numbers decoded from JSON
// arrive as float64 and are accepted too.
func intProp(props map[string]ast.SchemaNode, key string, max int64) (int64, error) {
	lit, ok := props[key].(*ast.LiteralNode)
	if !ok {
		return 0, nil
	}
	var n int64
	switch v := lit.Value().(type) {
	case int64:
		n = v
	case int:
		n = int64(v)
	case float64:
		n = int64(v)
	case string:
		var err error
		if n, err = strconv.ParseInt(v, 10, 64); err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
	default:
		return 0, fmt.Errorf("%s: unexpected %T", key, v)
	}
	if n < 0 || n > max {
		return 0, fmt.Errorf("%s %d out of range", key, n)
	}
	return n, nil
}
