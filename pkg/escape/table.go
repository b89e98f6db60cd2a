package escape

// MaxEntityLen is the length of the longest replacement in any table.
// A Reader never holds back more than this many bytes.
const MaxEntityLen = len("&quot;")

// table maps a byte to its replacement. An empty entry passes through.
type table [256]string

var htmlTable = table{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&quot;",
	'\'': "&#39;",
}

var attrTable = table{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&quot;",
	'\'': "&#39;",
	'\n': "&#10;",
	'\r': "&#13;",
	'\t': "&#9;",
}

// Entity returns the replacement for c in text content, or "" when c is
// written as is.
func Entity(c byte) string {
	return htmlTable[c]
}

// AttrEntity returns the replacement for c inside a quoted attribute value,
// or "" when c is written as is.
func AttrEntity(c byte) string {
	return attrTable[c]
}
