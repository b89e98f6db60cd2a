package markup

import "io"

// RenderFunc writes a piece of markup into w.
// It must be deterministic and must not mutate the state it captures.
type RenderFunc func(w Sink) error

// Markup is a block of HTML that has not been rendered yet.
//
// A Markup is immutable. It may be rendered any number of times, and
// concurrently as long as the state captured by its RenderFunc is safe to
// read concurrently.
type Markup struct {
	render RenderFunc
}

// New wraps fn as a Markup.
func New(fn RenderFunc) Markup {
	return Markup{render: fn}
}

// RenderText renders m into w and returns the RenderFunc's result.
// The zero Markup renders nothing.
func (m Markup) RenderText(w Sink) error {
	if m.render == nil {
		return nil
	}
	return m.render(w)
}

// Render renders m into w.
//
// If rendering fails because w failed, the error returned by w is returned
// instead of ErrFormat. When the RenderFunc fails without any write to w
// failing, its own error is returned, which may be ErrFormat. Output written
// before the failure stays written.
func (m Markup) Render(w io.Writer) error {
	_, err := m.WriteTo(w)
	return err
}

// WriteTo implements io.WriterTo. It behaves like Render and also reports the
// number of bytes accepted by w.
func (m Markup) WriteTo(w io.Writer) (int64, error) {
	a := &adaptor{w: w}
	if err := m.RenderText(a); err != nil {
		if a.err != nil {
			return a.n, a.err
		}
		return a.n, err
	}
	return a.n, nil
}

// String renders m into memory.
// It panics if the RenderFunc fails, since a Buffer never rejects a write.
func (m Markup) String() string {
	var b Buffer
	if err := m.RenderText(&b); err != nil {
		panic("markup: render into memory failed: " + err.Error())
	}
	return b.String()
}

// Concat returns a Markup rendering parts in order.
func Concat(parts ...Markup) Markup {
	return New(func(w Sink) error {
		for _, p := range parts {
			if err := p.RenderText(w); err != nil {
				return err
			}
		}
		return nil
	})
}
