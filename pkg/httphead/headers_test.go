package httphead

import (
	"testing"
)

func TestBoundedHeaders(t *testing.T) {
	var storage [2]HeaderField
	h := NewBoundedHeaders(storage[:])
	if h.Cap() != 2 || h.Len() != 0 {
		t.Fatalf("Cap/Len = %d/%d, want 2/0", h.Cap(), h.Len())
	}

	if err := h.Push(HeaderField{Name: "Host", Value: "a"}); err != nil {
		t.Fatalf("Push #1 error = %v", err)
	}
	if err := h.Push(HeaderField{Name: "Accept", Value: "*/*"}); err != nil {
		t.Fatalf("Push #2 error = %v", err)
	}
	if err := h.Push(HeaderField{Name: "X", Value: "y"}); err != ErrOutOfCapacity {
		t.Fatalf("Push #3 error = %v, want %v", err, ErrOutOfCapacity)
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}

	if v, ok := h.Get("host"); !ok || v != "a" {
		t.Errorf("Get(host) = (%q, %v)", v, ok)
	}
	if _, ok := h.Get("X"); ok {
		t.Error("Get(X) found a rejected field")
	}

	h.Reset()
	if h.Len() != 0 || len(h.Fields()) != 0 {
		t.Errorf("after Reset Len() = %d", h.Len())
	}
	if storage[0] != (HeaderField{}) {
		t.Errorf("Reset left %+v in storage", storage[0])
	}
}

func TestBoundedHeaders_ZeroCapacity(t *testing.T) {
	h := NewBoundedHeaders(nil)
	if err := h.Push(HeaderField{Name: "a"}); err != ErrOutOfCapacity {
		t.Errorf("Push error = %v, want %v", err, ErrOutOfCapacity)
	}
}

func TestBoundedHeaders_FieldsClipped(t *testing.T) {
	var storage [4]HeaderField
	h := NewBoundedHeaders(storage[:])
	_ = h.Push(HeaderField{Name: "a", Value: "1"})
	fields := h.Fields()
	_ = append(fields, HeaderField{Name: "b"})
	if storage[1].Name != "" {
		t.Error("append to Fields() wrote into sink storage")
	}
}

func TestGrowableHeaders(t *testing.T) {
	var h GrowableHeaders
	for _, f := range []HeaderField{
		{Name: "Set-Cookie", Value: "a=1"},
		{Name: "Content-Type", Value: "text/plain"},
		{Name: "set-cookie", Value: "b=2"},
	} {
		if err := h.Push(f); err != nil {
			t.Fatalf("Push(%+v) error = %v", f, err)
		}
	}
	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}

	vals := h.Values("SET-COOKIE")
	if len(vals) != 2 || vals[0] != "a=1" || vals[1] != "b=2" {
		t.Errorf("Values(SET-COOKIE) = %v", vals)
	}
	if v, ok := h.Get("content-type"); !ok || v != "text/plain" {
		t.Errorf("Get(content-type) = (%q, %v)", v, ok)
	}
	// Stored names keep their original case.
	if h.Fields()[2].Name != "set-cookie" {
		t.Errorf("Fields()[2].Name = %q", h.Fields()[2].Name)
	}

	h.Reset()
	if h.Len() != 0 {
		t.Errorf("after Reset Len() = %d", h.Len())
	}
	if _, ok := h.Get("Content-Type"); ok {
		t.Error("Get after Reset found a field")
	}
}

func TestBoundedHeaders_Values(t *testing.T) {
	var storage [3]HeaderField
	h := NewBoundedHeaders(storage[:])
	_ = h.Push(HeaderField{Name: "Via", Value: "a"})
	_ = h.Push(HeaderField{Name: "via", Value: "b"})
	if vals := h.Values("VIA"); len(vals) != 2 {
		t.Errorf("Values(VIA) = %v", vals)
	}
	if vals := h.Values("none"); vals != nil {
		t.Errorf("Values(none) = %v, want nil", vals)
	}
}
