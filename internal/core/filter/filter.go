// Package filter provides the compound predicate primitives shared by all
// dataset filters
//
// Every primitive treats an absent constraint as a pass so dataset Matches
// functions can AND them without special cases
package filter

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
)

// pool of fresh case folding transformers
// cases.Fold is not safe for concurrent use so each caller takes its own
var foldPool = sync.Pool{
	New: func() any { return cases.Fold() },
}

// Fold returns the Unicode case folded form of s
func Fold(s string) string {
	if s == "" {
		return ""
	}
	c := foldPool.Get().(cases.Caser)
	out, _, _ := transform.String(c, s)
	c.Reset()
	foldPool.Put(c)
	return out
}

// AnyOf reports whether v is a member of allowed
// an empty or nil allowed slice is no constraint and always passes
func AnyOf(v string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// SearchFold reports whether the folded query is a substring of any field
// an empty query always passes
func SearchFold(q string, fields ...string) bool {
	if strings.TrimSpace(q) == "" {
		return true
	}
	fq := Fold(q)
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(Fold(f), fq) {
			return true
		}
	}
	return false
}

// InRange reports whether date falls inside the inclusive [from, to] range
// comparison is lexicographic, which orders ISO style date strings correctly
// empty bounds are open ends
func InRange(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}
