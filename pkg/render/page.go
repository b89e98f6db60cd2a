package render

import "github.com/vango-dev/markup/pkg/markup"

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the page content.
	Body markup.Markup

	// Title is the page title.
	Title string

	// Meta contains meta tags for the page.
	Meta []MetaTag

	// Links contains link tags (favicon, preload, etc.).
	Links []LinkTag

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS.
	Styles []string

	// Scripts contains script tags appended to the body, or placed in the
	// head when deferred or async.
	Scripts []ScriptTag

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string // name attribute
	Content   string // content attribute
	Property  string // property attribute (for OpenGraph)
	HTTPEquiv string // http-equiv attribute
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel         string // rel attribute
	Href        string // href attribute
	Type        string // type attribute
	Sizes       string // sizes attribute
	CrossOrigin string // crossorigin attribute
	Media       string // media attribute
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Type   string // type attribute
	Defer  bool   // defer attribute
	Async  bool   // async attribute
	Module bool   // type="module"
	Inline string // inline script content
}

// Document returns page as a complete HTML document.
func Document(page PageData) markup.Markup {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	return markup.New(func(w markup.Sink) error {
		e := &emitter{w: w}
		e.raw("<!DOCTYPE html>\n<html")
		e.attr("lang", lang)
		e.raw(">\n")
		e.head(page)
		e.raw("<body>\n")
		if e.err == nil {
			e.err = page.Body.RenderText(w)
		}
		for _, s := range page.Scripts {
			if !s.Defer && !s.Async {
				e.script(s)
			}
		}
		e.raw("</body>\n</html>\n")
		return e.err
	})
}

// emitter stops writing after the first failure, so the layout reads as a
// flat sequence of writes.
type emitter struct {
	w   markup.Sink
	err error
}

func (e *emitter) raw(s string) {
	if e.err == nil {
		e.err = markup.Raw(e.w, s)
	}
}

func (e *emitter) text(s string) {
	if e.err == nil {
		e.err = markup.Escaped(e.w, s)
	}
}

// attr writes name="value", skipping empty values.
func (e *emitter) attr(name, value string) {
	if value == "" {
		return
	}
	e.raw(" " + name + `="`)
	if e.err == nil {
		e.err = markup.EscapedAttr(e.w, value)
	}
	e.raw(`"`)
}

// flag writes a boolean attribute when set.
func (e *emitter) flag(name string, set bool) {
	if set {
		e.raw(" " + name)
	}
}

func (e *emitter) head(page PageData) {
	e.raw("<head>\n")
	e.raw(`  <meta charset="utf-8">` + "\n")
	e.raw(`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")

	if page.Title != "" {
		e.raw("  <title>")
		e.text(page.Title)
		e.raw("</title>\n")
	}

	for _, m := range page.Meta {
		e.raw("  <meta")
		e.attr("name", m.Name)
		e.attr("property", m.Property)
		e.attr("http-equiv", m.HTTPEquiv)
		e.attr("content", m.Content)
		e.raw(">\n")
	}

	for _, l := range page.Links {
		e.raw("  <link")
		e.attr("rel", l.Rel)
		e.attr("href", l.Href)
		e.attr("type", l.Type)
		e.attr("sizes", l.Sizes)
		e.attr("crossorigin", l.CrossOrigin)
		e.attr("media", l.Media)
		e.raw(">\n")
	}

	for _, href := range page.StyleSheets {
		e.raw(`  <link rel="stylesheet"`)
		e.attr("href", href)
		e.raw(">\n")
	}

	for _, style := range page.Styles {
		e.raw("  <style>" + style + "</style>\n")
	}

	for _, s := range page.Scripts {
		if s.Defer || s.Async {
			e.script(s)
		}
	}

	e.raw("</head>\n")
}

func (e *emitter) script(s ScriptTag) {
	typ := s.Type
	if s.Module {
		typ = "module"
	}

	e.raw("  <script")
	e.attr("type", typ)
	e.attr("src", s.Src)
	e.flag("defer", s.Defer)
	e.flag("async", s.Async)
	e.raw(">")
	if s.Src == "" {
		e.raw(s.Inline)
	}
	e.raw("</script>\n")
}
