// Package render wraps page content in a complete HTML document.
//
// Document takes the body as a markup.Markup and returns another Markup, so
// the page stays deferred until it is rendered:
//
//	doc := render.Document(render.PageData{
//	    Title: "Ponies",
//	    Body:  body,
//	    StyleSheets: []string{"/styles.css"},
//	})
//	err := doc.Render(w)
//
// Titles, attribute values and meta content are escaped. Inline styles and
// inline scripts are written as given and must come from trusted code.
package render
