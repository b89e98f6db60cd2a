package escape

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text",
			input:    "Hello, World!",
			expected: "Hello, World!",
		},
		{
			name:     "flim flam",
			input:    "<flim&flam>",
			expected: "&lt;flim&amp;flam&gt;",
		},
		{
			name:     "ampersand",
			input:    "Tom & Jerry",
			expected: "Tom &amp; Jerry",
		},
		{
			name:     "double quote",
			input:    `say "hello"`,
			expected: "say &quot;hello&quot;",
		},
		{
			name:     "single quote",
			input:    "it's fine",
			expected: "it&#39;s fine",
		},
		{
			name:     "script tag",
			input:    "<script>alert('xss')</script>",
			expected: "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;",
		},
		{
			name:     "whitespace untouched",
			input:    "a\n\tb",
			expected: "a\n\tb",
		},
		{
			name:     "unicode preserved",
			input:    "Hello 世界 🌍 <é>",
			expected: "Hello 世界 🌍 &lt;é&gt;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := String(tt.input)
			if result != tt.expected {
				t.Errorf("String(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestStringWithoutReservedIsIdentity(t *testing.T) {
	inputs := []string{
		"",
		"pinkie pie",
		"du\tcks-233.14\ngeese",
		strings.Repeat("abcdefghij", 200),
		"ünïcödé ✓ 日本語",
	}
	for _, in := range inputs {
		if got := String(in); got != in {
			t.Errorf("String(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestStringLargeInput(t *testing.T) {
	in := strings.Repeat(`<"'&>`, 1000)
	want := strings.Repeat("&lt;&quot;&#39;&amp;&gt;", 1000)
	if got := String(in); got != want {
		t.Errorf("String(large) length = %d, want %d", len(got), len(want))
	}
}

func TestAttr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text",
			input:    "hello",
			expected: "hello",
		},
		{
			name:     "double quote",
			input:    `value="test"`,
			expected: "value=&quot;test&quot;",
		},
		{
			name:     "newline",
			input:    "line1\nline2",
			expected: "line1&#10;line2",
		},
		{
			name:     "carriage return",
			input:    "line1\rline2",
			expected: "line1&#13;line2",
		},
		{
			name:     "tab",
			input:    "col1\tcol2",
			expected: "col1&#9;col2",
		},
		{
			name:     "all special chars",
			input:    `<>&"'` + "\n\r\t",
			expected: "&lt;&gt;&amp;&quot;&#39;&#10;&#13;&#9;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Attr(tt.input)
			if result != tt.expected {
				t.Errorf("Attr(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestEntityTablesFitSpill(t *testing.T) {
	for c := 0; c < 256; c++ {
		if n := len(Entity(byte(c))); n > MaxEntityLen {
			t.Errorf("Entity(%q) has length %d > MaxEntityLen %d", byte(c), n, MaxEntityLen)
		}
		if n := len(AttrEntity(byte(c))); n > MaxEntityLen {
			t.Errorf("AttrEntity(%q) has length %d > MaxEntityLen %d", byte(c), n, MaxEntityLen)
		}
	}
	if MaxEntityLen != 6 {
		t.Errorf("MaxEntityLen = %d, want 6", MaxEntityLen)
	}
}

func TestEntityNonReservedIsEmpty(t *testing.T) {
	for _, c := range []byte("az09 \n\t\x00\x80\xff") {
		if got := Entity(c); got != "" {
			t.Errorf("Entity(%q) = %q, want empty", c, got)
		}
	}
}
