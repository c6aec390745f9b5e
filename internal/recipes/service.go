package recipes

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-cookbook/internal/logging"
	"github.com/goliatone/go-cookbook/internal/metrics"
	"github.com/goliatone/go-cookbook/internal/routes"
	"github.com/goliatone/go-cookbook/pkg/interfaces"
)

// Service ingests recipes from a content store.
type Service struct {
	store   interfaces.ContentStore
	routes  *routes.Routes
	cfg     Config
	now     func() time.Time
	logger  interfaces.Logger
	metrics *metrics.Metrics
}

// Option configures the service at construction time.
type Option func(*Service)

// WithClock overrides the clock used for the default publish date.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records listing and fetch outcomes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService builds a Service reading cfg's collection from store. r resolves
// asset prefixes when cfg.AssetBaseURL is empty.
func NewService(store interfaces.ContentStore, r *routes.Routes, cfg Config, opts ...Option) *Service {
	if cfg.Document == "" {
		cfg.Document = "README.md"
	}
	if cfg.Thumbnail == "" {
		cfg.Thumbnail = "thumbnail.png"
	}
	s := &Service{
		store:  store,
		routes: r,
		cfg:    cfg,
		now:    time.Now,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type fetchOutcome struct {
	record Record
	err    error
}

// List discovers every recipe directory, fetches the documents concurrently
// and returns the records newest first. Only a failed listing is an error;
// documents that fail to fetch are logged and left out. Equal dates keep the
// listing order.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	logger := logging.WithRecipeContext(s.logger.WithContext(ctx), s.cfg.Owner, s.cfg.Store, "")

	entries, err := s.store.ListDirectory(ctx, s.cfg.Owner, s.cfg.Store, s.cfg.Root)
	s.metrics.ObserveListing(err)
	if err != nil {
		logger.Error("recipes.list.listing_failed", "root", s.cfg.Root, "error", err)
		return nil, listingError(err)
	}

	ids := candidates(entries)
	ingestedAt := s.now()
	outcomes := make([]fetchOutcome, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes[i] = s.fetch(ctx, id, ingestedAt)
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(outcomes))
	for i, outcome := range outcomes {
		if outcome.err != nil {
			logger.Warn("recipes.list.item_skipped", "recipe_id", ids[i], "error", outcome.err)
			continue
		}
		records = append(records, outcome.record)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].PublishedAt.After(records[j].PublishedAt)
	})

	logger.Debug("recipes.list.completed", "candidates", len(ids), "records", len(records))
	return records, nil
}

// Get fetches a single recipe by directory name.
func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	id = strings.TrimSpace(id)
	if err := validation.Validate(id, validation.Required, validation.By(directoryName)); err != nil {
		return Record{}, invalidIDError(err)
	}

	outcome := s.fetch(ctx, id, s.now())
	if outcome.err == nil {
		return outcome.record, nil
	}
	if errors.Is(outcome.err, context.Canceled) || errors.Is(outcome.err, context.DeadlineExceeded) {
		return Record{}, outcome.err
	}
	if errors.Is(outcome.err, interfaces.ErrNotFound) {
		return Record{}, notFoundError(id, outcome.err)
	}
	s.logger.WithContext(ctx).Warn("recipes.get.fetch_failed", "recipe_id", id, "error", outcome.err)
	return Record{}, fetchError(id, outcome.err)
}

func (s *Service) fetch(ctx context.Context, id string, ingestedAt time.Time) fetchOutcome {
	prefix, err := s.assetPrefix(id)
	if err != nil {
		return fetchOutcome{err: err}
	}
	source, err := s.store.FetchDocument(ctx, interfaces.DocumentRef{
		Owner: s.cfg.Owner,
		Store: s.cfg.Store,
		Ref:   s.cfg.Ref,
		Root:  s.cfg.Root,
		ID:    id,
		Name:  s.cfg.Document,
	})
	s.metrics.ObserveDocument(err)
	if err != nil {
		return fetchOutcome{err: err}
	}
	return fetchOutcome{record: s.buildRecord(id, source, prefix, ingestedAt)}
}

// candidates keeps directory entries, in listing order.
func candidates(entries []interfaces.DirectoryEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type != interfaces.EntryTypeDir || strings.TrimSpace(entry.Name) == "" {
			continue
		}
		ids = append(ids, entry.Name)
	}
	return ids
}

func directoryName(value any) error {
	id, _ := value.(string)
	if id == "." || id == ".." || strings.ContainsAny(id, "/\\?#") {
		return validation.NewError("validation_recipe_id", "must be a single directory name")
	}
	return nil
}
