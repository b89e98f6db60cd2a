package main

import (
	"strconv"

	"github.com/vango-dev/markup/pkg/handler"
	"github.com/vango-dev/markup/pkg/markup"
	"github.com/vango-dev/markup/pkg/render"
)

// The pages below are written the way generated template code calls the
// runtime: one callback per fragment, raw writes for literal markup and
// escaped writes for every value.

type pony struct {
	first, last string
}

func (p pony) String() string { return p.first + " " + p.last }

func registerPages(reg *handler.Registry) {
	reg.Register("elements", page("Elements", elements()))
	reg.Register("attributes", page("Attributes", attributes("hotpink", "Hello!")))
	reg.Register("splices", page("Splices", splices(pony{"Pinkie", "Pie"}, 10)))
	reg.Register("escaping", page("Escaping", escaping(`<flim&flam> "quoted" 'single'`)))
}

func page(title string, body markup.Markup) markup.Markup {
	return render.Document(render.PageData{
		Title: title,
		Meta:  []render.MetaTag{{Name: "generator", Content: "markup"}},
		Body:  body,
	})
}

func elements() markup.Markup {
	return markup.New(func(w markup.Sink) error {
		if err := markup.Raw(w, "<p><b>pickle</b>barrel<i>kumquat</i></p>\n"); err != nil {
			return err
		}
		return markup.Raw(w, "<p>pinkie<br>pie</p>\n")
	})
}

func attributes(class, text string) markup.Markup {
	return markup.New(func(w markup.Sink) error {
		if err := markup.Raw(w, `<section id="midriff"><p class="`); err != nil {
			return err
		}
		if err := markup.EscapedAttr(w, class); err != nil {
			return err
		}
		if err := markup.Raw(w, `">`); err != nil {
			return err
		}
		if err := markup.Escaped(w, text); err != nil {
			return err
		}
		return markup.Raw(w, "</p></section>\n")
	})
}

func splices(who pony, n int) markup.Markup {
	name := markup.New(func(w markup.Sink) error {
		if err := markup.Raw(w, "<b>"); err != nil {
			return err
		}
		if err := markup.Splice(w, who); err != nil {
			return err
		}
		return markup.Raw(w, "</b>")
	})

	return markup.New(func(w markup.Sink) error {
		if err := markup.Raw(w, "<p>Hi, "); err != nil {
			return err
		}
		if err := markup.Splice(w, name); err != nil {
			return err
		}
		if err := markup.Raw(w, "!</p>\n<p>"); err != nil {
			return err
		}
		if err := markup.Escaped(w, strconv.Itoa(n)+"! = "); err != nil {
			return err
		}
		if err := markup.Splice(w, factorial(n)); err != nil {
			return err
		}
		return markup.Raw(w, "</p>\n")
	})
}

func factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

func escaping(text string) markup.Markup {
	return markup.New(func(w markup.Sink) error {
		if err := markup.Raw(w, `<p title="`); err != nil {
			return err
		}
		if err := markup.EscapedAttr(w, text); err != nil {
			return err
		}
		if err := markup.Raw(w, `">`); err != nil {
			return err
		}
		if err := markup.Escaped(w, text); err != nil {
			return err
		}
		return markup.Raw(w, "</p>\n")
	})
}
