package markup

import (
	"strings"
	"testing"
)

type stringer struct{ s string }

func (s stringer) String() string { return s.s }

type pony struct{ name string }

func (p pony) String() string { return p.name }

// recordingSink records each slice passed to WriteText.
type recordingSink struct {
	parts []string
}

func (r *recordingSink) WriteText(s string) error {
	r.parts = append(r.parts, s)
	return nil
}

func TestEscaped(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "plain", input: "hello", expected: "hello"},
		{name: "flim flam", input: "<flim&flam>", expected: "&lt;flim&amp;flam&gt;"},
		{name: "quotes", input: `"it's"`, expected: "&quot;it&#39;s&quot;"},
		{name: "unicode", input: "日本<語>", expected: "日本&lt;語&gt;"},
		{name: "whitespace kept", input: "a\nb", expected: "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Buffer
			if err := Escaped(&b, tt.input); err != nil {
				t.Fatalf("Escaped: %v", err)
			}
			if b.String() != tt.expected {
				t.Errorf("Escaped(%q) = %q, want %q", tt.input, b.String(), tt.expected)
			}
		})
	}
}

func TestEscapedWritesRuns(t *testing.T) {
	var r recordingSink
	if err := Escaped(&r, "ab<cd>"); err != nil {
		t.Fatal(err)
	}
	want := []string{"ab", "&lt;", "cd", "&gt;"}
	if strings.Join(r.parts, "|") != strings.Join(want, "|") {
		t.Errorf("parts = %q, want %q", r.parts, want)
	}
}

func TestEscapedAttr(t *testing.T) {
	var b Buffer
	if err := EscapedAttr(&b, "a\n\"b\"\t"); err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), "a&#10;&quot;b&quot;&#9;"; got != want {
		t.Errorf("EscapedAttr = %q, want %q", got, want)
	}
}

func TestEscapedStopsOnFailure(t *testing.T) {
	if err := Escaped(failingSink{}, "a<b"); err != ErrFormat {
		t.Fatalf("Escaped(failing) = %v, want ErrFormat", err)
	}
}

func TestRawEmptyDoesNotWrite(t *testing.T) {
	var r recordingSink
	if err := Raw(&r, ""); err != nil {
		t.Fatal(err)
	}
	if len(r.parts) != 0 {
		t.Errorf("Raw(\"\") wrote %q", r.parts)
	}
}

func TestSplice(t *testing.T) {
	nested := New(func(w Sink) error { return Raw(w, "<b>bold</b>") })

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "string", value: "<pinkie>", expected: "&lt;pinkie&gt;"},
		{name: "int", value: 3628800, expected: "3628800"},
		{name: "float", value: 3.14, expected: "3.14"},
		{name: "stringer", value: stringer{"a&b"}, expected: "a&amp;b"},
		{name: "stringer pointer", value: &pony{"<Pinkie>"}, expected: "&lt;Pinkie&gt;"},
		{name: "nil stringer pointer", value: (*pony)(nil), expected: "&lt;nil&gt;"},
		{name: "nil", value: nil, expected: "&lt;nil&gt;"},
		{name: "markup", value: nested, expected: "<b>bold</b>"},
		{name: "markup pointer", value: &nested, expected: "<b>bold</b>"},
		{name: "nil markup pointer", value: (*Markup)(nil), expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Buffer
			if err := Splice(&b, tt.value); err != nil {
				t.Fatalf("Splice: %v", err)
			}
			if b.String() != tt.expected {
				t.Errorf("Splice(%v) = %q, want %q", tt.value, b.String(), tt.expected)
			}
		})
	}
}

func TestBuffer(t *testing.T) {
	var b Buffer
	_ = b.WriteText("abc")
	_ = b.WriteText("def")
	if b.Len() != 6 || b.String() != "abcdef" {
		t.Fatalf("Buffer = %q (%d)", b.String(), b.Len())
	}
	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("Reset left %d bytes", b.Len())
	}
}
