// Package cookbook serves a recipe collection kept as markdown documents in a
// GitHub repository, with per-recipe discussion threads backed by labelled
// issues of the same repository.
package cookbook

import (
	"context"
	"net/http"

	threadscmd "github.com/goliatone/go-cookbook/internal/commands/threads"
	"github.com/goliatone/go-cookbook/internal/di"
	"github.com/goliatone/go-cookbook/internal/filter"
	"github.com/goliatone/go-cookbook/internal/recipes"
	"github.com/goliatone/go-cookbook/internal/threads"
	"github.com/goliatone/go-cookbook/pkg/interfaces"
)

// Recipe is one ingested recipe.
type Recipe = recipes.Record

// RecipeDetails are the optional cooking facts of a recipe.
type RecipeDetails = recipes.Details

// Query filters a recipe collection.
type Query = filter.Query

// Facet is one tag badge with its record count.
type Facet = filter.Facet

// Selection is the mutable filter state of one listing view.
type Selection = filter.Selection

// NewSelection starts a selection from q.
func NewSelection(q Query) *Selection {
	return filter.NewSelection(q)
}

// ThreadRef identifies the recipe a discussion thread belongs to.
type ThreadRef = threads.Ref

// Thread is a recipe's discussion thread.
type Thread = threads.Thread

// Discussion is the comments section of a detail view.
type Discussion = threads.Discussion

// OpenComposerCommand sends the reader to the comment composer of a recipe.
type OpenComposerCommand = threadscmd.OpenComposerCommand

// Module represents the top level cookbook runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a cookbook module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Recipes returns every recipe of the collection, newest first.
func (m *Module) Recipes(ctx context.Context) ([]Recipe, error) {
	return m.container.RecipeService().List(ctx)
}

// Recipe returns one recipe by directory name.
func (m *Module) Recipe(ctx context.Context, id string) (Recipe, error) {
	return m.container.RecipeService().Get(ctx, id)
}

// Filter applies q to records without touching the remote store.
func (m *Module) Filter(records []Recipe, q Query) []Recipe {
	return filter.Apply(records, q)
}

// Tags lists the distinct tags of records in ascending order.
func (m *Module) Tags(records []Recipe) []string {
	return filter.AvailableTags(records)
}

// Discussion loads the comments section of the recipe id.
func (m *Module) Discussion(ctx context.Context, id, title string) Discussion {
	return m.container.ThreadResolver().Load(ctx, m.threadRef(id), title)
}

// ComposerURL returns the comment composer target of the recipe id without
// performing any I/O.
func (m *Module) ComposerURL(id, title string, threadID *int) (string, error) {
	return m.container.ThreadResolver().ComposerURL(m.threadRef(id), title, threadID)
}

// OpenComposer executes the OpenComposer command. nav overrides the default
// navigator when non-nil.
func (m *Module) OpenComposer(ctx context.Context, nav interfaces.Navigator, msg OpenComposerCommand) error {
	if nav != nil {
		ctx = threadscmd.WithNavigator(ctx, nav)
	}
	return m.container.ThreadCommands().OpenComposer.Execute(ctx, msg)
}

// Handler returns the site HTTP handler.
func (m *Module) Handler() (http.Handler, error) {
	return m.container.SiteAPI().Handler()
}

// Register attaches the site endpoints to mux.
func (m *Module) Register(mux *http.ServeMux) error {
	return m.container.SiteAPI().Register(mux)
}

func (m *Module) threadRef(id string) ThreadRef {
	return ThreadRef{
		Owner:     m.container.Config.Content.Owner,
		Store:     m.container.Config.Content.Store,
		ContentID: id,
	}
}
