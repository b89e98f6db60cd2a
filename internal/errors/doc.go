// Package errors provides structured, actionable error messages for the
// markup tools.
//
// Errors carry a code that maps to a short message and a longer explanation.
// The CLI prints them as text, a compact line or JSON:
//
//	err := errors.New("E041").
//	    WithDetail("--buffer must be at least 1, got 0").
//	    WithSuggestion("Pass a positive size, e.g. --buffer 4096")
//
//	errors.Fprint(os.Stderr, err, errors.OutputText)
//	// ERROR E041: Invalid buffer size
//	//
//	//   --buffer must be at least 1, got 0
//	//
//	//   Hint: Pass a positive size, e.g. --buffer 4096
//
// # Error Categories
//
//   - runtime: rendering, escaping and output failures
//   - config: markup.json problems
//   - validation: bad flags or arguments
//   - cli: command execution failures
package errors
