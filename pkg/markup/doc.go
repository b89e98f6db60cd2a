// Package markup is the runtime behind compiled HTML templates.
//
// A template compiles to a Markup: a deferred render function that writes
// raw and escaped text into a Sink. Nothing is materialized until a
// destination is known, and nesting one template inside another is a call,
// not a string concatenation.
//
// # Generated Code
//
// Emitted template code needs only four primitives:
//
//	page := markup.New(func(w markup.Sink) error {
//	    if err := markup.Raw(w, "<p>"); err != nil {
//	        return err
//	    }
//	    if err := markup.Escaped(w, user.Name); err != nil {
//	        return err
//	    }
//	    if err := header.RenderText(w); err != nil {
//	        return err
//	    }
//	    return markup.Raw(w, "</p>")
//	})
//
// # Rendering
//
// A Markup can be rendered any number of times:
//
//	s := page.String()             // in memory
//	err := page.Render(httpWriter) // any io.Writer
//	err = page.RenderText(sink)    // another Sink
//
// # Errors
//
// A Sink reports failure with ErrFormat and nothing else. When rendering to
// an io.Writer, Render hands back the error the writer actually returned, so
// callers see "broken pipe" rather than a bare format error.
package markup
