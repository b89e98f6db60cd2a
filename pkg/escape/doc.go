// Package escape converts text into HTML-safe text.
//
// Two entry points share one entity table:
//
//   - String escapes an in-memory string in one call.
//   - Reader wraps an io.Reader and produces the escaped byte stream on
//     demand, so large inputs never have to be materialized.
//
// # Entities
//
// Only five bytes are reserved:
//
//	&  &amp;
//	<  &lt;
//	>  &gt;
//	"  &quot;
//	'  &#39;
//
// Every other byte, including UTF-8 continuation bytes, passes through
// unchanged. The attribute variants (Attr, NewAttrReader) additionally
// encode newline, carriage return and tab.
//
// # Streaming
//
// A Reader honours whatever buffer the caller hands to Read, down to a single
// byte. When an entity does not fit, the rest of it is held back and emitted
// first on the next call, so the concatenated output never depends on how it
// was chunked:
//
//	r := escape.NewReader(file)
//	_, err := io.Copy(w, r)
package escape
