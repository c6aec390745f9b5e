package recipes_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/goliatone/go-cookbook/internal/metrics"
	"github.com/goliatone/go-cookbook/internal/recipes"
	"github.com/goliatone/go-cookbook/internal/routes"
	"github.com/goliatone/go-cookbook/pkg/interfaces"
)

var ingestedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type stubStore struct {
	mu        sync.Mutex
	entries   []interfaces.DirectoryEntry
	listErr   error
	documents map[string]string
	fetchErr  map[string]error
	fetched   []interfaces.DocumentRef
}

func (s *stubStore) ListDirectory(ctx context.Context, owner, store, root string) ([]interfaces.DirectoryEntry, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.entries, nil
}

func (s *stubStore) FetchDocument(ctx context.Context, ref interfaces.DocumentRef) (string, error) {
	s.mu.Lock()
	s.fetched = append(s.fetched, ref)
	s.mu.Unlock()
	if err := s.fetchErr[ref.ID]; err != nil {
		return "", err
	}
	doc, ok := s.documents[ref.ID]
	if !ok {
		return "", fmt.Errorf("missing %s: %w", ref.ID, interfaces.ErrNotFound)
	}
	return doc, nil
}

func dirs(names ...string) []interfaces.DirectoryEntry {
	out := make([]interfaces.DirectoryEntry, 0, len(names))
	for _, name := range names {
		out = append(out, interfaces.DirectoryEntry{Name: name, Path: "recipes/" + name, Type: interfaces.EntryTypeDir})
	}
	return out
}

func newService(store interfaces.ContentStore, cfg recipes.Config, opts ...recipes.Option) *recipes.Service {
	if cfg.Owner == "" {
		cfg = recipes.Config{Owner: "octo", Store: "kitchen", Ref: "main", Root: "recipes"}
	}
	r := routes.New(routes.DefaultConfig(routes.Bases{
		API:  "https://api.github.com",
		Raw:  "https://raw.githubusercontent.com",
		Web:  "https://github.com",
		Site: "/",
	}))
	opts = append([]recipes.Option{recipes.WithClock(func() time.Time { return ingestedAt })}, opts...)
	return recipes.NewService(store, r, cfg, opts...)
}

func TestListBuildsRecordsNewestFirst(t *testing.T) {
	store := &stubStore{
		entries: append(dirs("pancakes", "waffles", "toast"), interfaces.DirectoryEntry{Name: "README.md", Type: "file"}),
		documents: map[string]string{
			"pancakes": "---\ntitle: Pancakes\ndescription: Fluffy\ndate: 2024-01-02\ntags: [breakfast, sweet]\nprepTime: 10 min\nservings: 4\n---\n![stack](./assets/stack.jpg)\n",
			"waffles":  "---\ntitle: Waffles\ndate: 2024-03-05T08:00:00Z\ntags: breakfast\n---\nCrisp.",
			"toast":    "Just toast, no metadata.",
		},
	}
	svc := newService(store, recipes.Config{})

	records, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(store.fetched) != 3 {
		t.Fatalf("expected only directories to be fetched, got %d", len(store.fetched))
	}

	gotOrder := []string{records[0].ID, records[1].ID, records[2].ID}
	if want := []string{"toast", "waffles", "pancakes"}; !reflect.DeepEqual(gotOrder, want) {
		t.Fatalf("expected %v, got %v", want, gotOrder)
	}

	toast := records[0]
	if toast.Title != "toast" || toast.Description != "" || !toast.PublishedAt.Equal(ingestedAt) {
		t.Fatalf("expected defaults for toast, got %+v", toast)
	}
	if toast.Tags == nil || len(toast.Tags) != 0 {
		t.Fatalf("expected empty non-nil tags, got %#v", toast.Tags)
	}
	if toast.Body != "Just toast, no metadata." {
		t.Fatalf("expected untouched body, got %q", toast.Body)
	}

	if got := records[1].Tags; !reflect.DeepEqual(got, []string{"breakfast"}) {
		t.Fatalf("expected scalar tag to become a list, got %v", got)
	}

	pancakes := records[2]
	if pancakes.ThumbnailPath != "https://raw.githubusercontent.com/octo/kitchen/main/recipes/pancakes/assets/thumbnail.png" {
		t.Fatalf("unexpected thumbnail %q", pancakes.ThumbnailPath)
	}
	if pancakes.Body != "![stack](https://raw.githubusercontent.com/octo/kitchen/main/recipes/pancakes/assets/stack.jpg)\n" {
		t.Fatalf("unexpected body %q", pancakes.Body)
	}
	if pancakes.Details.PrepTime != "10 min" || pancakes.Details.Servings != 4 {
		t.Fatalf("unexpected details %+v", pancakes.Details)
	}
	if pancakes.UID == records[1].UID {
		t.Fatalf("expected distinct uids")
	}
}

func TestListKeepsDiscoveryOrderForEqualDates(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e", "f"}
	docs := map[string]string{}
	for _, name := range names {
		docs[name] = "---\ndate: 2024-01-01\n---\n"
	}
	svc := newService(&stubStore{entries: dirs(names...), documents: docs}, recipes.Config{})

	records, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for i, record := range records {
		if record.ID != names[i] {
			t.Fatalf("position %d: expected %s, got %s", i, names[i], record.ID)
		}
	}
}

func TestListDropsFailedItems(t *testing.T) {
	m := metrics.New("test")
	store := &stubStore{
		entries:   dirs("good", "broken", "gone"),
		documents: map[string]string{"good": "---\ntitle: Good\n---\n"},
		fetchErr:  map[string]error{"broken": errors.New("connection reset")},
	}
	svc := newService(store, recipes.Config{}, recipes.WithMetrics(m))

	records, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("item failures must not fail the listing: %v", err)
	}
	if len(records) != 1 || records[0].ID != "good" {
		t.Fatalf("expected only the good record, got %+v", records)
	}
	if got := testutil.ToFloat64(m.Documents.WithLabelValues(metrics.OutcomeFailed)); got != 2 {
		t.Fatalf("expected 2 failed documents, got %v", got)
	}
}

func TestListFailsWhenListingFails(t *testing.T) {
	svc := newService(&stubStore{listErr: errors.New("rate limited")}, recipes.Config{})

	records, err := svc.List(context.Background())
	if records != nil {
		t.Fatalf("expected no records, got %v", records)
	}
	if !errors.Is(err, recipes.ErrListingFailed) {
		t.Fatalf("expected ErrListingFailed, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryExternal) {
		t.Fatalf("expected external category, got %v", err)
	}
}

func TestListEmptyCollection(t *testing.T) {
	records, err := newService(&stubStore{}, recipes.Config{}).List(context.Background())
	if err != nil || len(records) != 0 {
		t.Fatalf("expected empty result, got %v %v", records, err)
	}
}

func TestListCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := newService(&stubStore{entries: dirs("a"), documents: map[string]string{"a": ""}}, recipes.Config{})
	if _, err := svc.List(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestAssetBaseURLOverride(t *testing.T) {
	cfg := recipes.Config{Owner: "octo", Store: "kitchen", Ref: "main", Root: "recipes", AssetBaseURL: "https://cdn.example.com/site/"}
	svc := newService(&stubStore{documents: map[string]string{"pancakes": "![a](./assets/a.png)"}}, cfg)

	record, err := svc.Get(context.Background(), "pancakes")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if record.ThumbnailPath != "https://cdn.example.com/site/recipes/pancakes/assets/thumbnail.png" {
		t.Fatalf("unexpected thumbnail %q", record.ThumbnailPath)
	}
	if record.Body != "![a](https://cdn.example.com/site/recipes/pancakes/assets/a.png)" {
		t.Fatalf("unexpected body %q", record.Body)
	}
}

func TestGetErrors(t *testing.T) {
	store := &stubStore{
		documents: map[string]string{},
		fetchErr:  map[string]error{"flaky": errors.New("timeout")},
	}
	svc := newService(store, recipes.Config{})

	cases := []struct {
		id       string
		sentinel error
		category goerrors.Category
	}{
		{"", recipes.ErrInvalidID, goerrors.CategoryValidation},
		{"../etc", recipes.ErrInvalidID, goerrors.CategoryValidation},
		{"missing", recipes.ErrRecipeNotFound, goerrors.CategoryNotFound},
		{"flaky", recipes.ErrRecipeFetchFailed, goerrors.CategoryExternal},
	}
	for _, tc := range cases {
		_, err := svc.Get(context.Background(), tc.id)
		if !errors.Is(err, tc.sentinel) {
			t.Fatalf("%q: expected %v, got %v", tc.id, tc.sentinel, err)
		}
		if !goerrors.IsCategory(err, tc.category) {
			t.Fatalf("%q: expected category %v, got %v", tc.id, tc.category, err)
		}
	}
}

func TestListEscapesIDsOnceInAssetLinks(t *testing.T) {
	store := &stubStore{
		entries:   dirs("my toast"),
		documents: map[string]string{"my toast": "![slice](./assets/slice.png)"},
	}
	svc := newService(store, recipes.Config{})

	records, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}
	prefix := "https://raw.githubusercontent.com/octo/kitchen/main/recipes/my%20toast/assets/"
	if records[0].ThumbnailPath != prefix+"thumbnail.png" {
		t.Fatalf("unexpected thumbnail %q", records[0].ThumbnailPath)
	}
	if records[0].Body != "![slice]("+prefix+"slice.png)" {
		t.Fatalf("unexpected body %q", records[0].Body)
	}
}

func TestBlankTagsLineYieldsNoTags(t *testing.T) {
	store := &stubStore{
		entries: dirs("soup", "stew"),
		documents: map[string]string{
			"soup": "---\ntitle: Soup\ntags:\n---\nHot.",
			"stew": "---\ntitle: Stew\ntags: []\n---\nSlow.",
		},
	}
	svc := newService(store, recipes.Config{})

	records, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	byID := map[string]recipes.Record{}
	for _, record := range records {
		byID[record.ID] = record
	}
	if tags := byID["soup"].Tags; tags == nil || len(tags) != 0 {
		t.Fatalf("expected empty non-nil tags for a blank tags line, got %#v", tags)
	}
	if tags := byID["stew"].Tags; !reflect.DeepEqual(tags, []string{""}) {
		t.Fatalf("expected bracketed empty list to keep one empty tag, got %#v", tags)
	}
}
