package markup

import (
	"errors"
	"io"
)

var errBrokenPipe = errors.New("broken pipe")

// failingWriter accepts limit bytes, then fails every write with err.
type failingWriter struct {
	limit   int
	err     error
	written []byte
	calls   int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	room := w.limit - len(w.written)
	if room >= len(p) {
		w.written = append(w.written, p...)
		return len(p), nil
	}
	if room < 0 {
		room = 0
	}
	w.written = append(w.written, p[:room]...)
	return room, w.err
}

// shortWriter reports a short write without an error.
type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return len(p) - 1, nil
}

var _ io.Writer = (*failingWriter)(nil)

// failingSink rejects every write.
type failingSink struct{}

func (failingSink) WriteText(string) error { return ErrFormat }
