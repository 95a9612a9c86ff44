package completion

import (
	"strings"
	"unicode"
)

// Query is raw input split into the program token and its arguments
type Query struct {
	Raw       string
	Program   string // first whitespace-delimited token
	Remainder string // everything after the token, verbatim
}

// ParseQuery splits raw input. Leading whitespace before the program and
// the whitespace run separating it from the arguments are dropped; the
// remainder is otherwise kept as typed.
func ParseQuery(raw string) Query {
	q := Query{Raw: raw}

	rest := strings.TrimLeftFunc(raw, unicode.IsSpace)
	end := strings.IndexFunc(rest, unicode.IsSpace)
	if end < 0 {
		q.Program = rest
		return q
	}

	q.Program = rest[:end]
	q.Remainder = strings.TrimLeftFunc(rest[end:], unicode.IsSpace)
	return q
}

// IsEmpty reports whether the input holds nothing but whitespace
func (q Query) IsEmpty() bool {
	return q.Program == ""
}
