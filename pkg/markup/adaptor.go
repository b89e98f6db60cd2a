package markup

import "io"

// adaptor presents an io.Writer as a Sink for the duration of one Render.
// The Sink contract drops the cause of a failure, so the first error from
// the writer is kept here for Render to return.
type adaptor struct {
	w   io.Writer
	n   int64
	err error
}

func (a *adaptor) WriteText(s string) error {
	if a.err != nil {
		return ErrFormat
	}
	n, err := io.WriteString(a.w, s)
	a.n += int64(n)
	if err == nil && n < len(s) {
		err = io.ErrShortWrite
	}
	if err != nil {
		a.err = err
		return ErrFormat
	}
	return nil
}
