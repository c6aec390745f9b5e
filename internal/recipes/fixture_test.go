package recipes_test

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-cookbook/internal/recipes"
	"github.com/goliatone/go-cookbook/pkg/testsupport"
)

type goldenRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Tags        []string  `json:"tags"`
	PublishedAt time.Time `json:"published_at"`
}

func TestListFixtureCollection(t *testing.T) {
	svc := newService(testsupport.NewFixtureStore("testdata"), recipes.Config{})

	records, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var want []goldenRecord
	if err := testsupport.LoadGolden("testdata/list.golden.json", &want); err != nil {
		t.Fatalf("load golden: %v", err)
	}
	got := make([]goldenRecord, 0, len(records))
	for _, record := range records {
		got = append(got, goldenRecord{
			ID:          record.ID,
			Title:       record.Title,
			Tags:        record.Tags,
			PublishedAt: record.PublishedAt.UTC(),
		})
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("records mismatch\nwant: %+v\ngot:  %+v", want, got)
	}

	pancakes := records[1]
	if pancakes.Details != (recipes.Details{PrepTime: "10 min", CookTime: "20 min", Difficulty: "easy", Servings: 4}) {
		t.Fatalf("unexpected details %+v", pancakes.Details)
	}
	if !strings.Contains(pancakes.Body, "](https://raw.githubusercontent.com/octo/kitchen/main/recipes/pancakes/assets/stack.jpg)") {
		t.Fatalf("expected rewritten image link, got %q", pancakes.Body)
	}
	if !strings.Contains(records[0].Body, "https://raw.githubusercontent.com/octo/kitchen/main/recipes/shakshuka/assets/notes.pdf") {
		t.Fatalf("expected rewritten link in a document without metadata, got %q", records[0].Body)
	}
}

func TestGetFixtureRecipe(t *testing.T) {
	svc := newService(testsupport.NewFixtureStore("testdata"), recipes.Config{})

	record, err := svc.Get(context.Background(), "tomato-soup")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if record.Details.Servings != 6 || !strings.Contains(record.Body, "<details>") {
		t.Fatalf("unexpected record %+v", record)
	}

	fixture, err := testsupport.LoadFixture("testdata/recipes/tomato-soup/README.md")
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	if !strings.HasSuffix(string(fixture), record.Body) {
		t.Fatalf("expected body to be the document tail")
	}
}
