package filter

import (
	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-cookbook/internal/recipes"
)

// Facet is one tag badge of the listing view.
type Facet struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Count    int    `json:"count"`
	Selected bool   `json:"selected"`
}

// Facets describes every available tag of records: how many records carry
// it and whether sel has it selected. Counts are over the full collection.
// Order follows AvailableTags.
func Facets(records []recipes.Record, sel *Selection) []Facet {
	counts := map[string]int{}
	for _, record := range records {
		seen := map[string]bool{}
		for _, tag := range record.Tags {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			counts[tag]++
		}
	}

	tags := AvailableTags(records)
	facets := make([]Facet, 0, len(tags))
	for _, tag := range tags {
		facets = append(facets, Facet{
			Name:     tag,
			Slug:     tagSlug(tag),
			Count:    counts[tag],
			Selected: sel != nil && sel.Selected(tag),
		})
	}
	return facets
}

func tagSlug(tag string) string {
	normalized, err := slug.Normalize(tag)
	if err != nil || normalized == "" {
		return tag
	}
	return normalized
}
