package sink

import "io"

// DefaultBufferSize is used by Copy for non-positive sizes.
const DefaultBufferSize = 4096

type copySource struct {
	r    io.Reader
	size int
}

// Copy returns an io.WriterTo that drains r into its destination, calling
// r.Read with a buffer of exactly size bytes each time.
//
// Unlike io.CopyBuffer it never hands r or the destination to ReadFrom or
// WriteTo shortcuts, so the read size is always the one requested.
func Copy(r io.Reader, size int) io.WriterTo {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return copySource{r: r, size: size}
}

func (c copySource) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, c.size)
	var total int64
	for {
		n, rerr := c.r.Read(buf)
		if n > 0 {
			m, werr := w.Write(buf[:n])
			total += int64(m)
			if werr != nil {
				return total, werr
			}
			if m < n {
				return total, io.ErrShortWrite
			}
		}
		if rerr == io.EOF {
			return total, nil
		}
		if rerr != nil {
			return total, rerr
		}
	}
}
