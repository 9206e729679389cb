package httphead

import (
	"strings"

	"github.com/shapestone/shape-httphead/internal/fastparser"
)

// HeaderField is a name/value pair borrowed from the input buffer. Both
// strings are validated ASCII.
type HeaderField = fastparser.HeaderField

// HeaderSink receives header fields as the parser validates them. A Push
// error aborts the parse with ErrOutOfCapacity. Fields pushed before a
// failure stay in the sink.
type HeaderSink = fastparser.HeaderSink

// BoundedHeaders stores fields in caller-provided storage and never
// allocates. Push fails once the storage is full.
type BoundedHeaders struct {
	storage []HeaderField
	n       int
}

// NewBoundedHeaders returns a sink whose capacity is len(storage).
func NewBoundedHeaders(storage []HeaderField) *BoundedHeaders {
	return &BoundedHeaders{storage: storage}
}

// Push implements HeaderSink.
func (h *BoundedHeaders) Push(f HeaderField) error {
	if h.n == len(h.storage) {
		return ErrOutOfCapacity
	}
	h.storage[h.n] = f
	h.n++
	return nil
}

// Len returns the number of stored fields.
func (h *BoundedHeaders) Len() int { return h.n }

// Cap returns the maximum number of fields.
func (h *BoundedHeaders) Cap() int { return len(h.storage) }

// Fields returns the stored fields in input order. The slice aliases the
// sink's storage.
func (h *BoundedHeaders) Fields() []HeaderField { return h.storage[:h.n:h.n] }

// Get returns the value of the first field named name (ASCII
// case-insensitive).
func (h *BoundedHeaders) Get(name string) (string, bool) {
	return lookup(h.Fields(), name)
}

// Values returns every value of fields named name, in input order.
func (h *BoundedHeaders) Values(name string) []string {
	return values(h.Fields(), name)
}

// Reset empties the sink so it can be reused for the next parse.
func (h *BoundedHeaders) Reset() {
	clear(h.storage[:h.n])
	h.n = 0
}

// GrowableHeaders appends fields to a slice. Its Push never fails. The zero
// value is ready to use.
type GrowableHeaders struct {
	fields []HeaderField
}

// NewGrowableHeaders returns a sink with room for n fields before the first
// reallocation.
func NewGrowableHeaders(n int) *GrowableHeaders {
	return &GrowableHeaders{fields: make([]HeaderField, 0, n)}
}

// Push implements HeaderSink.
func (h *GrowableHeaders) Push(f HeaderField) error {
	h.fields = append(h.fields, f)
	return nil
}

// Len returns the number of stored fields.
func (h *GrowableHeaders) Len() int { return len(h.fields) }

// Fields returns the stored fields in input order.
func (h *GrowableHeaders) Fields() []HeaderField { return h.fields }

// Get returns the value of the first field named name (ASCII
// case-insensitive).
func (h *GrowableHeaders) Get(name string) (string, bool) {
	return lookup(h.fields, name)
}

// Values returns every value of fields named name, in input order.
func (h *GrowableHeaders) Values(name string) []string {
	return values(h.fields, name)
}

// Reset empties the sink and keeps its backing array.
func (h *GrowableHeaders) Reset() {
	clear(h.fields)
	h.fields = h.fields[:0]
}

func lookup(fields []HeaderField, name string) (string, bool) {
	for _, f := range fields {
		if strings.EqualFold(f.Name, name) {
			return f.Value, true
		}
	}
	return "", false
}

func values(fields []HeaderField, name string) []string {
	var vals []string
	for _, f := range fields {
		if strings.EqualFold(f.Name, name) {
			vals = append(vals, f.Value)
		}
	}
	return vals
}
