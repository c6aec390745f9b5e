package filter

import "slices"

// Selection is the mutable filter state of one listing view. The zero value
// is an empty selection. It is not safe for concurrent use.
type Selection struct {
	term string
	tags []string
}

// NewSelection starts from q.
func NewSelection(q Query) *Selection {
	s := &Selection{term: q.SearchTerm}
	for _, tag := range q.Tags {
		if !slices.Contains(s.tags, tag) {
			s.tags = append(s.tags, tag)
		}
	}
	return s
}

// SetSearchTerm replaces the free-text term.
func (s *Selection) SetSearchTerm(term string) {
	s.term = term
}

// ToggleTag removes tag when selected, otherwise appends it.
func (s *Selection) ToggleTag(tag string) {
	if i := slices.Index(s.tags, tag); i >= 0 {
		s.tags = slices.Delete(s.tags, i, i+1)
		return
	}
	s.tags = append(s.tags, tag)
}

// Selected reports whether tag is part of the selection.
func (s *Selection) Selected(tag string) bool {
	return slices.Contains(s.tags, tag)
}

// Clear drops the term and all tags.
func (s *Selection) Clear() {
	s.term = ""
	s.tags = nil
}

// Active reports whether anything is selected.
func (s *Selection) Active() bool {
	return s.term != "" || len(s.tags) > 0
}

// Query snapshots the selection. Tags keep their selection order.
func (s *Selection) Query() Query {
	return Query{SearchTerm: s.term, Tags: slices.Clone(s.tags)}
}
