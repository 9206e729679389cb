package httphead

import (
	"errors"
	"fmt"
	"io"
)

// DefaultMaxHeadSize is the largest head a Decoder buffers before giving up.
const DefaultMaxHeadSize = 64 << 10

const maxEmptyReads = 100

// ErrHeadTooLarge is returned by a Decoder when no complete head fits in its
// size limit.
var ErrHeadTooLarge = errors.New("http: message head too large")

// ResettableSink is a header sink that can be emptied. A Decoder resets the
// sink before every parse attempt, since an incomplete attempt may already
// have pushed fields.
type ResettableSink interface {
	HeaderSink
	Reset()
}

// Decoder reads message heads from a stream. It drives the Incomplete loop:
// read, parse from the first byte, and read more until the head is complete.
// Bytes after a head stay buffered; see Buffered.
//
// Strings in a decoded head alias the Decoder's buffer and are only valid
// until the next Decode call. A Decoder is not safe for concurrent use.
type Decoder struct {
	r       io.Reader
	buf     []byte
	start   int // first unconsumed byte
	end     int // end of buffered data
	maxSize int
	opts    Options
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r, maxSize: DefaultMaxHeadSize}
}

// SetMaxHeadSize limits how many bytes a single head may occupy.
func (dec *Decoder) SetMaxHeadSize(n int) {
	dec.maxSize = n
}

// SetOptions sets the parse options for subsequent heads.
func (dec *Decoder) SetOptions(opts Options) {
	dec.opts = opts
}

// Buffered returns the bytes read from the stream but not yet consumed by a
// head, usually the start of a body. The slice is valid until the next
// Decode call.
func (dec *Decoder) Buffered() []byte {
	return dec.buf[dec.start:dec.end]
}

// Discard drops n buffered bytes, e.g. a body the caller has handled.
func (dec *Decoder) Discard(n int) {
	dec.start += min(n, dec.end-dec.start)
}

// DecodeRequest reads the next request head from dec into headers.
func DecodeRequest[H ResettableSink](dec *Decoder, headers H) (Request[H], error) {
	for {
		headers.Reset()
		st, err := ParseRequestWith(dec.Buffered(), headers, dec.opts)
		if err != nil {
			return Request[H]{}, fmt.Errorf("http: decode: %w", err)
		}
		if p, ok := st.Get(); ok {
			dec.start += p.Consumed
			return p.Message, nil
		}
		if err := dec.fill(); err != nil {
			return Request[H]{}, err
		}
	}
}

// DecodeResponse reads the next response head from dec into headers.
func DecodeResponse[H ResettableSink](dec *Decoder, headers H) (Response[H], error) {
	for {
		headers.Reset()
		st, err := ParseResponseWith(dec.Buffered(), headers, dec.opts)
		if err != nil {
			return Response[H]{}, fmt.Errorf("http: decode: %w", err)
		}
		if p, ok := st.Get(); ok {
			dec.start += p.Consumed
			return p.Message, nil
		}
		if err := dec.fill(); err != nil {
			return Response[H]{}, err
		}
	}
}

// fill reads at least one more byte into the buffer, compacting or growing
// it as needed. It returns io.EOF only when the stream ended cleanly between
// heads.
func (dec *Decoder) fill() error {
	pending := dec.end - dec.start
	if pending >= dec.maxSize {
		return ErrHeadTooLarge
	}
	if dec.start > 0 {
		copy(dec.buf, dec.buf[dec.start:dec.end])
		dec.start, dec.end = 0, pending
	}
	if dec.end == len(dec.buf) {
		size := min(max(2*len(dec.buf), 512), dec.maxSize)
		buf := make([]byte, size)
		copy(buf, dec.buf[:dec.end])
		dec.buf = buf
	}

	for i := 0; i < maxEmptyReads; i++ {
		n, err := dec.r.Read(dec.buf[dec.end:])
		dec.end += n
		if n > 0 {
			return nil
		}
		if err == io.EOF {
			if dec.end > 0 {
				return fmt.Errorf("http: decode: %w", io.ErrUnexpectedEOF)
			}
			return io.EOF
		}
		if err != nil {
			return fmt.Errorf("http: decode: %w", err)
		}
	}
	return fmt.Errorf("http: decode: %w", io.ErrNoProgress)
}
