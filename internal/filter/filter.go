// Package filter narrows a recipe collection by free text and tags. Every
// function is pure and always evaluates against the full collection it is
// given.
package filter

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/goliatone/go-cookbook/internal/recipes"
)

// Query is a free-text term plus a set of tags that must all be present.
type Query struct {
	SearchTerm string   `json:"q"`
	Tags       []string `json:"tags"`
}

// Empty reports whether q matches every record.
func (q Query) Empty() bool {
	return q.SearchTerm == "" && len(q.Tags) == 0
}

// Match reports whether record satisfies q: the search term is a
// case-insensitive substring of the title or the description, and every
// selected tag is among the record's tags (exact comparison).
func Match(record recipes.Record, q Query) bool {
	return matchesText(record, q.SearchTerm) && hasAllTags(record.Tags, q.Tags)
}

// Apply returns the records matching q in their original order. The result
// is never nil.
func Apply(records []recipes.Record, q Query) []recipes.Record {
	out := make([]recipes.Record, 0, len(records))
	for _, record := range records {
		if Match(record, q) {
			out = append(out, record)
		}
	}
	return out
}

// AvailableTags returns every distinct tag in records, sorted ascending.
// Tags differing only in case are kept apart.
func AvailableTags(records []recipes.Record) []string {
	seen := map[string]struct{}{}
	tags := []string{}
	for _, record := range records {
		for _, tag := range record.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	slices.Sort(tags)
	return tags
}

func matchesText(record recipes.Record, term string) bool {
	if term == "" {
		return true
	}
	// cases.Caser is stateful, so one per call.
	fold := cases.Fold()
	needle := fold.String(term)
	return strings.Contains(fold.String(record.Title), needle) ||
		strings.Contains(fold.String(record.Description), needle)
}

func hasAllTags(have, want []string) bool {
	for _, tag := range want {
		if !slices.Contains(have, tag) {
			return false
		}
	}
	return true
}
