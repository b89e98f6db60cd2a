package middleware

import (
	"context"
	"io"
)

// Renderer writes the page called name, produced by src, into w.
// It returns the number of bytes w accepted.
type Renderer interface {
	Render(ctx context.Context, name string, w io.Writer, src io.WriterTo) (int64, error)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(ctx context.Context, name string, w io.Writer, src io.WriterTo) (int64, error)

// Render implements Renderer.
func (f RendererFunc) Render(ctx context.Context, name string, w io.Writer, src io.WriterTo) (int64, error) {
	return f(ctx, name, w, src)
}

// Middleware wraps a Renderer.
type Middleware func(next Renderer) Renderer

// Direct renders src into w with no instrumentation.
var Direct Renderer = RendererFunc(func(_ context.Context, _ string, w io.Writer, src io.WriterTo) (int64, error) {
	return src.WriteTo(w)
})

// Chain wraps base in mws. mws[0] sees each render first.
func Chain(base Renderer, mws ...Middleware) Renderer {
	r := base
	for i := len(mws) - 1; i >= 0; i-- {
		r = mws[i](r)
	}
	return r
}

// Bind returns an io.WriterTo that renders src through r, for destinations
// that accept an io.WriterTo.
func Bind(ctx context.Context, r Renderer, name string, src io.WriterTo) io.WriterTo {
	return bound{ctx: ctx, r: r, name: name, src: src}
}

type bound struct {
	ctx  context.Context
	r    Renderer
	name string
	src  io.WriterTo
}

func (b bound) WriteTo(w io.Writer) (int64, error) {
	return b.r.Render(b.ctx, b.name, w, b.src)
}
