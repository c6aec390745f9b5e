package threads

import (
	"context"
	"strings"

	"github.com/goliatone/go-cookbook/internal/logging"
	"github.com/goliatone/go-cookbook/internal/metrics"
	"github.com/goliatone/go-cookbook/internal/routes"
	"github.com/goliatone/go-cookbook/pkg/interfaces"
)

// Resolver maps recipes onto tracker issues.
type Resolver struct {
	tracker interfaces.IssueTracker
	routes  *routes.Routes
	cfg     Config
	logger  interfaces.Logger
	metrics *metrics.Metrics
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the resolver logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics records lookup outcomes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Resolver) {
		r.metrics = m
	}
}

// NewResolver builds a Resolver. Blank cfg fields take DefaultConfig values.
func NewResolver(tracker interfaces.IssueTracker, r *routes.Routes, cfg Config, opts ...Option) *Resolver {
	defaults := DefaultConfig()
	if cfg.Label == "" {
		cfg.Label = defaults.Label
	}
	if cfg.TitlePrefix == "" {
		cfg.TitlePrefix = defaults.TitlePrefix
	}
	if cfg.BodyTemplate == "" {
		cfg.BodyTemplate = defaults.BodyTemplate
	}
	resolver := &Resolver{
		tracker: tracker,
		routes:  r,
		cfg:     cfg,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(resolver)
	}
	return resolver
}

// SearchQuery is the tracker query used to find the thread of ref.
func (r *Resolver) SearchQuery(ref Ref) string {
	parts := []string{"repo:" + ref.Owner + "/" + ref.Store, "is:issue"}
	if r.cfg.OpenOnly {
		parts = append(parts, "is:open")
	}
	parts = append(parts, "label:"+r.cfg.Label, ref.ContentID, "in:title")
	return strings.Join(parts, " ")
}

// FindThread looks up the thread of ref and its comments. It returns nil and
// no error when no thread exists. When several issues match, the first whose
// title carries the bracketed id wins, else the first hit. A failed search
// returns nil; a failed comment fetch returns the thread without comments.
// Both report ErrLookupFailed.
func (r *Resolver) FindThread(ctx context.Context, ref Ref) (*Thread, error) {
	if err := ref.Validate(); err != nil {
		return nil, invalidRefError(err)
	}
	logger := logging.WithRecipeContext(r.logger.WithContext(ctx), ref.Owner, ref.Store, ref.ContentID)

	items, err := r.tracker.SearchIssues(ctx, r.SearchQuery(ref))
	if err != nil {
		r.metrics.ObserveThreadLookup(false, err)
		logger.Warn("threads.find.search_failed", "error", err)
		return nil, lookupError("search", err)
	}
	item, ok := canonical(items, ref.ContentID)
	if !ok {
		r.metrics.ObserveThreadLookup(false, nil)
		logger.Debug("threads.find.not_found")
		return nil, nil
	}

	number := item.Number
	thread := &Thread{
		ThreadID: &number,
		Title:    item.Title,
		URL:      item.HTMLURL,
		Comments: []Comment{},
	}
	if thread.URL == "" {
		if issueURL, err := r.routes.Issue(ref.Owner, ref.Store, number); err == nil {
			thread.URL = issueURL
		}
	}

	comments, err := r.tracker.ListComments(ctx, ref.Owner, ref.Store, number)
	r.metrics.ObserveThreadLookup(true, err)
	if err != nil {
		logger.Warn("threads.find.comments_failed", "thread_id", number, "error", err)
		return thread, lookupError("comments", err)
	}
	for _, c := range comments {
		thread.Comments = append(thread.Comments, Comment{
			ID:               c.ID,
			Author:           c.Author.Login,
			AvatarURL:        c.Author.AvatarURL,
			AuthorProfileURL: c.Author.ProfileURL,
			CreatedAt:        c.CreatedAt,
			Body:             c.Body,
			Permalink:        c.Permalink,
		})
	}
	return thread, nil
}

// Load resolves the comments section of a detail view. It never fails; a
// lookup error becomes StatusFailed and ComposeURL is still filled in.
func (r *Resolver) Load(ctx context.Context, ref Ref, title string) Discussion {
	thread, err := r.FindThread(ctx, ref)

	var threadID *int
	if thread != nil {
		threadID = thread.ThreadID
	}
	discussion := Discussion{Thread: thread}
	switch {
	case err != nil:
		discussion.Status = StatusFailed
	case thread == nil || len(thread.Comments) == 0:
		discussion.Status = StatusEmpty
	default:
		discussion.Status = StatusLoaded
	}

	composeURL, composeErr := r.ComposerURL(ref, title, threadID)
	if composeErr != nil {
		r.logger.WithContext(ctx).Error("threads.load.composer_failed", "recipe_id", ref.ContentID, "error", composeErr)
	}
	discussion.ComposeURL = composeURL
	return discussion
}

func canonical(items []interfaces.TrackerItem, contentID string) (interfaces.TrackerItem, bool) {
	if len(items) == 0 {
		return interfaces.TrackerItem{}, false
	}
	marker := "[" + contentID + "]"
	for _, item := range items {
		if strings.Contains(item.Title, marker) {
			return item, true
		}
	}
	return items[0], true
}
