package escape

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that yields the HTML-escaped form of its source.
//
// The output is independent of the buffer sizes passed to Read: an entity
// that does not fit is split, and its unread suffix is returned first by the
// following call. A Reader is not safe for concurrent use.
type Reader struct {
	src   io.ByteReader
	table *table

	// pending is the unread suffix of the last entity, a view into spill.
	// It is empty except between two Read calls that split an entity.
	pending []byte
	spill   [MaxEntityLen]byte
}

// NewReader returns a Reader escaping r for use in text content.
// If r does not implement io.ByteReader it is wrapped in a bufio.Reader.
func NewReader(r io.Reader) *Reader {
	return newReader(r, &htmlTable)
}

// NewAttrReader returns a Reader escaping r for use inside a quoted
// attribute value.
func NewAttrReader(r io.Reader) *Reader {
	return newReader(r, &attrTable)
}

func newReader(r io.Reader, t *table) *Reader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{src: br, table: t}
}

// Read implements io.Reader.
//
// It returns 0, io.EOF only once the source is exhausted and no split entity
// is pending. Errors from the source other than io.EOF are returned as is,
// together with the bytes produced before them.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	if len(r.pending) > 0 {
		return n, nil
	}

	for n < len(p) {
		c, err := r.src.ReadByte()
		if err != nil {
			if err == io.EOF && n > 0 {
				return n, nil
			}
			return n, err
		}

		ent := r.table[c]
		if ent == "" {
			p[n] = c
			n++
			continue
		}

		w := copy(p[n:], ent)
		n += w
		if w < len(ent) {
			r.pending = r.spill[:copy(r.spill[:], ent[w:])]
			return n, nil
		}
	}

	return n, nil
}

// Pending reports how many bytes of a split entity are waiting to be read.
func (r *Reader) Pending() int {
	return len(r.pending)
}
