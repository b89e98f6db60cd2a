package escape

import (
	"io"
	"strings"
)

// copyBufSize is the chunk size used when draining a Reader in memory.
const copyBufSize = 512

// String escapes s for safe inclusion in HTML text content.
func String(s string) string {
	return drain(NewReader(strings.NewReader(s)), len(s))
}

// Attr escapes s for safe inclusion in a quoted HTML attribute value.
// In addition to the text entities it encodes newline, carriage return
// and tab so the value survives attribute normalisation.
func Attr(s string) string {
	return drain(NewAttrReader(strings.NewReader(s)), len(s))
}

func drain(r *Reader, sizeHint int) string {
	var b strings.Builder
	b.Grow(sizeHint)

	buf := make([]byte, copyBufSize)
	if _, err := io.CopyBuffer(&b, r, buf); err != nil {
		// strings.Reader and strings.Builder never fail.
		panic("escape: in-memory copy failed: " + err.Error())
	}
	return b.String()
}
