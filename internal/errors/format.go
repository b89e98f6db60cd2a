package errors

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorWhite = "\033[37m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// detailWidth is the column at which details are wrapped.
const detailWidth = 70

// colorEnabled controls whether ANSI colors are used.
var colorEnabled = true

// DisableColors disables ANSI color output.
func DisableColors() {
	colorEnabled = false
}

// EnableColors enables ANSI color output.
func EnableColors() {
	colorEnabled = true
}

// color wraps text in ANSI color codes if colors are enabled.
func color(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + colorReset
}

func red(text string) string   { return color(colorRed, text) }
func cyan(text string) string  { return color(colorCyan, text) }
func white(text string) string { return color(colorWhite, text) }
func gray(text string) string  { return color(colorGray, text) }
func bold(text string) string  { return color(colorBold, text) }

// Format returns the error formatted for terminal display.
func (e *MarkupError) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	if e.Code != "" {
		b.WriteString(red(bold("ERROR ")))
		b.WriteString(white(bold(e.Code + ": ")))
	} else {
		b.WriteString(red(bold("ERROR: ")))
	}
	b.WriteString(white(e.Message))
	b.WriteString("\n\n")

	if e.Detail != "" {
		for _, line := range wrapText(e.Detail, detailWidth) {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if e.Wrapped != nil {
		b.WriteString("  ")
		b.WriteString(gray("Cause: "))
		b.WriteString(e.Wrapped.Error())
		b.WriteString("\n\n")
	}

	if e.Suggestion != "" {
		b.WriteString("  ")
		b.WriteString(cyan("Hint: "))
		b.WriteString(e.Suggestion)
		b.WriteString("\n\n")
	}

	return b.String()
}

// FormatCompact returns a compact single-line error format.
func (e *MarkupError) FormatCompact() string {
	var b strings.Builder
	if e.Code != "" {
		b.WriteString(e.Code)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Wrapped != nil {
		b.WriteString(": ")
		b.WriteString(e.Wrapped.Error())
	}
	return b.String()
}

// jsonError is the wire form of FormatJSON.
type jsonError struct {
	Code       string   `json:"code,omitempty"`
	Category   Category `json:"category,omitempty"`
	Message    string   `json:"message"`
	Detail     string   `json:"detail,omitempty"`
	Cause      string   `json:"cause,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// FormatJSON returns the error as a JSON object.
func (e *MarkupError) FormatJSON() string {
	je := jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Suggestion: e.Suggestion,
	}
	if e.Wrapped != nil {
		je.Cause = e.Wrapped.Error()
	}
	data, err := json.Marshal(je)
	if err != nil {
		// Only strings are marshaled.
		panic("errors: marshal: " + err.Error())
	}
	return string(data)
}

// wrapText wraps text to the specified width.
func wrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	return strings.Split(wordwrap.String(text, width), "\n")
}

// Output selects how Fprint renders an error.
type Output string

const (
	OutputText    Output = "text"
	OutputCompact Output = "compact"
	OutputJSON    Output = "json"
)

// ParseOutput validates an --error-format value.
func ParseOutput(s string) (Output, error) {
	switch o := Output(s); o {
	case OutputText, OutputCompact, OutputJSON:
		return o, nil
	}
	return "", fmt.Errorf("unknown error format %q (want text, compact or json)", s)
}

// Fprint writes err to w in the given output format. Errors without a code
// are rendered as a bare message.
func Fprint(w io.Writer, err error, out Output) {
	me, ok := As(err)
	if !ok {
		me = &MarkupError{Message: err.Error()}
	}

	switch out {
	case OutputCompact:
		fmt.Fprintln(w, me.FormatCompact())
	case OutputJSON:
		fmt.Fprintln(w, me.FormatJSON())
	default:
		if !ok {
			fmt.Fprintf(w, "\n%s %s\n\n", red(bold("ERROR:")), err.Error())
			return
		}
		fmt.Fprint(w, me.Format())
	}
}
