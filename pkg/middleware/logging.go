package middleware

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Logging logs every render. Successful renders are logged at Debug,
// failures at Error. A nil logger uses slog.Default().
func Logging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Renderer) Renderer {
		return RendererFunc(func(ctx context.Context, name string, w io.Writer, src io.WriterTo) (int64, error) {
			start := time.Now()
			n, err := next.Render(ctx, name, w, src)
			attrs := []slog.Attr{
				slog.String("page", name),
				slog.Int64("bytes", n),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
				logger.LogAttrs(ctx, slog.LevelError, "render failed", attrs...)
			} else {
				logger.LogAttrs(ctx, slog.LevelDebug, "rendered", attrs...)
			}
			return n, err
		})
	}
}
