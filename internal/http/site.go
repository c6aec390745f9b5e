package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	command "github.com/goliatone/go-command"

	threadscmd "github.com/goliatone/go-cookbook/internal/commands/threads"
	"github.com/goliatone/go-cookbook/internal/logging"
	"github.com/goliatone/go-cookbook/internal/metrics"
	"github.com/goliatone/go-cookbook/internal/recipes"
	"github.com/goliatone/go-cookbook/internal/routes"
	"github.com/goliatone/go-cookbook/internal/threads"
	"github.com/goliatone/go-cookbook/pkg/interfaces"
)

// RecipeService is the part of recipes.Service the site reads from.
type RecipeService interface {
	List(ctx context.Context) ([]recipes.Record, error)
	Get(ctx context.Context, id string) (recipes.Record, error)
}

// DiscussionLoader builds the comments section of a detail view.
type DiscussionLoader interface {
	Load(ctx context.Context, ref threads.Ref, title string) threads.Discussion
}

// SiteAPI registers the public recipe endpoints.
type SiteAPI struct {
	owner       string
	store       string
	recipes     RecipeService
	discussions DiscussionLoader
	composer    command.Commander[threadscmd.OpenComposerCommand]
	renderer    interfaces.MarkdownRenderer
	routes      *routes.Routes
	metrics     *metrics.Metrics
	metricsPath string
	logger      interfaces.Logger
}

// SiteOption mutates the SiteAPI configuration.
type SiteOption func(*SiteAPI)

// NewSiteAPI constructs a SiteAPI for the owner/store collection.
func NewSiteAPI(owner, store string, opts ...SiteOption) *SiteAPI {
	api := &SiteAPI{
		owner:       strings.TrimSpace(owner),
		store:       strings.TrimSpace(store),
		metricsPath: "/metrics",
		logger:      logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithRecipeService wires the ingestion service.
func WithRecipeService(service RecipeService) SiteOption {
	return func(api *SiteAPI) {
		if api != nil {
			api.recipes = service
		}
	}
}

// WithDiscussions wires the thread resolver.
func WithDiscussions(loader DiscussionLoader) SiteOption {
	return func(api *SiteAPI) {
		if api != nil {
			api.discussions = loader
		}
	}
}

// WithComposer wires the OpenComposer command handler used by the discuss route.
func WithComposer(handler command.Commander[threadscmd.OpenComposerCommand]) SiteOption {
	return func(api *SiteAPI) {
		if api != nil {
			api.composer = handler
		}
	}
}

// WithRenderer wires the markdown renderer for detail bodies.
func WithRenderer(renderer interfaces.MarkdownRenderer) SiteOption {
	return func(api *SiteAPI) {
		if api != nil {
			api.renderer = renderer
		}
	}
}

// WithRoutes sets the route manager used for the links in responses.
func WithRoutes(r *routes.Routes) SiteOption {
	return func(api *SiteAPI) {
		if api != nil {
			api.routes = r
		}
	}
}

// WithMetrics enables request instrumentation and the /metrics endpoint.
func WithMetrics(m *metrics.Metrics) SiteOption {
	return func(api *SiteAPI) {
		if api != nil {
			api.metrics = m
		}
	}
}

// WithMetricsPath overrides where the metrics exposition is served.
func WithMetricsPath(path string) SiteOption {
	return func(api *SiteAPI) {
		if api == nil {
			return
		}
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.metricsPath = trimmed
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(logger interfaces.Logger) SiteOption {
	return func(api *SiteAPI) {
		if api != nil && logger != nil {
			api.logger = logger
		}
	}
}

// Register attaches the site endpoints to the provided mux.
func (api *SiteAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: site api is nil")
	}

	api.handle(mux, "GET /api/recipes", api.handleListing)
	api.handle(mux, "GET /api/recipes/{id}", api.handleDetail)
	api.handle(mux, "GET /api/recipes/{id}/comments", api.handleComments)
	api.handle(mux, "GET /recipes/{id}/discuss", api.handleDiscuss)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if api.metrics != nil {
		mux.Handle("GET "+api.metricsPath, api.metrics.Handler())
	}
	return nil
}

// Handler returns a new mux with every endpoint registered.
func (api *SiteAPI) Handler() (http.Handler, error) {
	mux := http.NewServeMux()
	if err := api.Register(mux); err != nil {
		return nil, err
	}
	return mux, nil
}

func (api *SiteAPI) handle(mux *http.ServeMux, pattern string, fn http.HandlerFunc) {
	mux.Handle(pattern, api.instrument(pattern, fn))
}

func (api *SiteAPI) link(route, id string, query url.Values) string {
	if api.routes == nil {
		return ""
	}
	out, err := api.routes.Site(route, id, query)
	if err != nil {
		api.logger.Warn("http.link.build_failed", "route", route, "error", err)
		return ""
	}
	return out
}
