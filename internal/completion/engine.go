// Package completion turns partial input into ranked command candidates
// using exact prefix matching against an index snapshot.
package completion

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"pathrun/internal/index"
)

const fallbackTitle = "I'm Feeling Lucky"

// Candidate is one suggested command line
type Candidate struct {
	Name        string // matched executable, empty for the fallback
	CommandLine string
	Title       string
	Description string
	Completion  string // text substituted into the input when accepted
	Fallback    bool
}

// Result holds the candidates for one query
type Result struct {
	Query        Query
	Candidates   []Candidate // prefix matches in ascending order, then the fallback
	CommonPrefix string
}

// Matches returns the prefix-match candidates without the fallback
func (r Result) Matches() []Candidate {
	if n := len(r.Candidates); n > 0 && r.Candidates[n-1].Fallback {
		return r.Candidates[:n-1]
	}
	return r.Candidates
}

// Empty reports whether there is nothing to show
func (r Result) Empty() bool {
	return len(r.Candidates) == 0
}

// Complete computes the candidates for raw against snapshot. At most limit
// prefix matches are surfaced when limit > 0; the common prefix always
// covers every match.
func Complete(snapshot *index.Snapshot, raw string, limit int) Result {
	q := ParseQuery(raw)
	res := Result{Query: q}
	if q.IsEmpty() {
		return res
	}

	matched := 0
	for i := snapshot.LowerBound(q.Program); i < snapshot.Len(); i++ {
		name := snapshot.At(i)
		if !strings.HasPrefix(name, q.Program) {
			break
		}

		if matched == 0 {
			res.CommonPrefix = name
		} else {
			res.CommonPrefix = commonPrefix(res.CommonPrefix, name)
		}
		matched++

		if limit > 0 && len(res.Candidates) >= limit {
			continue
		}
		cmdline := name
		if q.Remainder != "" {
			cmdline = name + " " + q.Remainder
		}
		res.Candidates = append(res.Candidates, Candidate{
			Name:        name,
			CommandLine: cmdline,
			Title:       cmdline,
			Description: fmt.Sprintf("Run '%s'", cmdline),
		})
	}

	completion := res.CommonPrefix + " " + q.Remainder
	for i := range res.Candidates {
		res.Candidates[i].Completion = completion
	}

	res.Candidates = append(res.Candidates, Candidate{
		CommandLine: raw,
		Title:       fallbackTitle,
		Description: fmt.Sprintf("Try running '%s'", raw),
		Completion:  raw,
		Fallback:    true,
	})
	return res
}

// commonPrefix returns the longest shared leading substring of a and b,
// cut on a rune boundary
func commonPrefix(a, b string) string {
	i := 0
	for i < len(a) && i < len(b) {
		_, sa := utf8.DecodeRuneInString(a[i:])
		_, sb := utf8.DecodeRuneInString(b[i:])
		if sa != sb || a[i:i+sa] != b[i:i+sb] {
			break
		}
		i += sa
	}
	return a[:i]
}

// Engine answers queries against whatever snapshot a store currently holds
type Engine struct {
	store *index.Store
	limit int
}

// NewEngine creates an engine reading from store. limit caps the surfaced
// prefix matches, 0 meaning unlimited.
func NewEngine(store *index.Store, limit int) *Engine {
	return &Engine{store: store, limit: limit}
}

// Complete evaluates raw against the current snapshot without blocking
func (e *Engine) Complete(raw string) Result {
	return Complete(e.store.Load(), raw, e.limit)
}
