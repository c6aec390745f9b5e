package filter

import (
	"reflect"
	"testing"

	"github.com/goliatone/go-cookbook/internal/recipes"
)

func TestSelectionToggleKeepsInsertionOrder(t *testing.T) {
	var sel Selection
	sel.ToggleTag("sweet")
	sel.ToggleTag("breakfast")
	sel.ToggleTag("french")
	sel.ToggleTag("breakfast")

	if got := sel.Query().Tags; !reflect.DeepEqual(got, []string{"sweet", "french"}) {
		t.Fatalf("unexpected tags %v", got)
	}
	sel.ToggleTag("breakfast")
	if got := sel.Query().Tags; !reflect.DeepEqual(got, []string{"sweet", "french", "breakfast"}) {
		t.Fatalf("unexpected tags after re-toggle %v", got)
	}
}

func TestSelectionClearAndActive(t *testing.T) {
	sel := NewSelection(Query{SearchTerm: "cake", Tags: []string{"sweet", "sweet"}})
	if !sel.Active() || len(sel.Query().Tags) != 1 {
		t.Fatalf("expected active selection with deduplicated tags, got %+v", sel.Query())
	}
	sel.Clear()
	if sel.Active() {
		t.Fatal("expected inactive selection after Clear")
	}
	if q := sel.Query(); !q.Empty() {
		t.Fatalf("expected empty query, got %+v", q)
	}
}

func TestSelectionQueryIsSnapshot(t *testing.T) {
	sel := NewSelection(Query{Tags: []string{"a"}})
	q := sel.Query()
	q.Tags[0] = "mutated"
	if !sel.Selected("a") {
		t.Fatal("expected snapshot to be independent of the selection")
	}
}

func TestFacets(t *testing.T) {
	records := append(sample(), recipes.Record{ID: "hot", Tags: []string{"Spicy Food", "sweet", "sweet"}})
	sel := NewSelection(Query{Tags: []string{"sweet"}})

	facets := Facets(records, sel)
	byName := map[string]Facet{}
	for _, f := range facets {
		byName[f.Name] = f
	}
	if len(facets) != len(AvailableTags(records)) {
		t.Fatalf("expected one facet per tag, got %d", len(facets))
	}
	if f := byName["sweet"]; f.Count != 3 || !f.Selected {
		t.Fatalf("unexpected sweet facet %+v", f)
	}
	if f := byName["Spicy Food"]; f.Slug != "spicy-food" || f.Selected {
		t.Fatalf("unexpected spicy facet %+v", f)
	}
	if f := Facets(records, nil)[0]; f.Selected {
		t.Fatalf("nil selection must select nothing, got %+v", f)
	}
}
