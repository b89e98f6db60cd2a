package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vango-dev/markup/pkg/markup"
)

func text(s string) markup.Markup {
	return markup.New(func(w markup.Sink) error {
		return markup.Escaped(w, s)
	})
}

func TestDocumentMinimal(t *testing.T) {
	got := Document(PageData{Body: text("hi")}).String()
	want := "<!DOCTYPE html>\n" +
		`<html lang="en">` + "\n" +
		"<head>\n" +
		`  <meta charset="utf-8">` + "\n" +
		`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n" +
		"</head>\n" +
		"<body>\n" +
		"hi" +
		"</body>\n</html>\n"
	if got != want {
		t.Errorf("Document =\n%s\nwant\n%s", got, want)
	}
}

func TestDocumentEscaping(t *testing.T) {
	got := Document(PageData{
		Title: "Tom & Jerry <3",
		Lang:  `en" onload="x`,
		Body:  text("<script>"),
		Meta:  []MetaTag{{Name: "description", Content: "a \"quoted\"\nvalue"}},
	}).String()

	for _, want := range []string{
		`<html lang="en&quot; onload=&quot;x">`,
		"<title>Tom &amp; Jerry &lt;3</title>",
		`<meta name="description" content="a &quot;quoted&quot;&#10;value">`,
		"&lt;script&gt;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Document missing %q:\n%s", want, got)
		}
	}
}

func TestDocumentHeadElements(t *testing.T) {
	got := Document(PageData{
		Links:       []LinkTag{{Rel: "icon", Href: "/favicon.ico", Sizes: "32x32"}},
		StyleSheets: []string{"/app.css"},
		Styles:      []string{"body{margin:0}"},
		Scripts: []ScriptTag{
			{Src: "/head.js", Defer: true},
			{Src: "/mod.js", Module: true, Async: true},
			{Inline: "console.log(1)"},
		},
	}).String()

	head, body, ok := strings.Cut(got, "<body>")
	if !ok {
		t.Fatalf("no body in %s", got)
	}

	for _, want := range []string{
		`  <link rel="icon" href="/favicon.ico" sizes="32x32">`,
		`  <link rel="stylesheet" href="/app.css">`,
		"  <style>body{margin:0}</style>",
		`  <script src="/head.js" defer></script>`,
		`  <script type="module" src="/mod.js" async></script>`,
	} {
		if !strings.Contains(head, want) {
			t.Errorf("head missing %q:\n%s", want, head)
		}
	}
	if !strings.Contains(body, "  <script>console.log(1)</script>") {
		t.Errorf("body missing inline script:\n%s", body)
	}
}

func TestDocumentNestedBodyRendersOncePerRender(t *testing.T) {
	doc := Document(PageData{Title: "x", Body: text("body")})
	if doc.String() != doc.String() {
		t.Error("Document is not repeatable")
	}
}

var errWrite = errors.New("write failed")

type limitedWriter struct {
	buf   bytes.Buffer
	limit int
}

func (l *limitedWriter) Write(p []byte) (int, error) {
	if l.buf.Len()+len(p) > l.limit {
		return 0, errWrite
	}
	return l.buf.Write(p)
}

func TestDocumentStopsOnWriteFailure(t *testing.T) {
	var bodyCalls int
	body := markup.New(func(w markup.Sink) error {
		bodyCalls++
		return markup.Raw(w, "content")
	})

	w := &limitedWriter{limit: 20}
	err := Document(PageData{Body: body}).Render(w)
	if !errors.Is(err, errWrite) {
		t.Fatalf("Render error = %v, want %v", err, errWrite)
	}
	if bodyCalls != 0 {
		t.Errorf("body rendered %d times after the head failed", bodyCalls)
	}
}
