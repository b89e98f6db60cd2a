package markup

import (
	"errors"
	"strings"
)

// ErrFormat is the only failure a Sink reports. It carries no cause.
var ErrFormat = errors.New("markup: format error")

// Sink is a text destination for rendered markup.
//
// WriteText writes s in full or fails. Implementations return nil or
// ErrFormat; any underlying cause is theirs to keep.
type Sink interface {
	WriteText(s string) error
}

// Buffer is an in-memory Sink. Its WriteText never fails.
// The zero value is ready to use.
type Buffer struct {
	b strings.Builder
}

// WriteText implements Sink.
func (b *Buffer) WriteText(s string) error {
	b.b.WriteString(s)
	return nil
}

// String returns the accumulated text.
func (b *Buffer) String() string {
	return b.b.String()
}

// Len returns the number of accumulated bytes.
func (b *Buffer) Len() int {
	return b.b.Len()
}

// Reset discards the accumulated text.
func (b *Buffer) Reset() {
	b.b.Reset()
}
