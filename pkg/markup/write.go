package markup

import (
	"fmt"

	"github.com/vango-dev/markup/pkg/escape"
)

// Raw writes s to w unchanged.
func Raw(w Sink, s string) error {
	if s == "" {
		return nil
	}
	return w.WriteText(s)
}

// Escaped writes s to w with HTML text entities substituted.
func Escaped(w Sink, s string) error {
	return writeEscaped(w, s, escape.Entity)
}

// EscapedAttr writes s to w escaped for a quoted attribute value.
func EscapedAttr(w Sink, s string) error {
	return writeEscaped(w, s, escape.AttrEntity)
}

// writeEscaped writes runs of unreserved bytes as single slices.
// Reserved bytes are ASCII, so runs never split a UTF-8 sequence.
func writeEscaped(w Sink, s string, entity func(byte) string) error {
	last := 0
	for i := 0; i < len(s); i++ {
		ent := entity(s[i])
		if ent == "" {
			continue
		}
		if last < i {
			if err := w.WriteText(s[last:i]); err != nil {
				return err
			}
		}
		if err := w.WriteText(ent); err != nil {
			return err
		}
		last = i + 1
	}
	if last < len(s) {
		return w.WriteText(s[last:])
	}
	return nil
}

// Splice writes v the way a template interpolation does: a nested Markup is
// rendered as is, anything else is formatted with fmt.Sprint and escaped.
// A nil pointer formats as "<nil>".
func Splice(w Sink, v any) error {
	switch v := v.(type) {
	case Markup:
		return v.RenderText(w)
	case *Markup:
		if v == nil {
			return nil
		}
		return v.RenderText(w)
	case string:
		return Escaped(w, v)
	default:
		return Escaped(w, fmt.Sprint(v))
	}
}
