package sink

import (
	"errors"
	"io"

	"github.com/natefinch/atomic"
)

// WriteFile streams src into path atomically.
//
// The file is written to a temporary sibling and renamed over path only if
// src finishes without error, so a failed render never leaves a truncated
// file behind.
func WriteFile(path string, src io.WriterTo) error {
	pr, pw := io.Pipe()
	done := make(chan error, 1)

	go func() {
		_, err := src.WriteTo(pw)
		pw.CloseWithError(err)
		done <- err
	}()

	werr := atomic.WriteFile(path, pr)
	// Unblocks src if atomic.WriteFile gave up early.
	pr.CloseWithError(werr)

	rerr := <-done
	if rerr != nil && (werr == nil || !errors.Is(rerr, werr)) {
		return rerr
	}
	return werr
}
