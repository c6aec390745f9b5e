package di

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	threadscmd "github.com/goliatone/go-cookbook/internal/commands/threads"
	"github.com/goliatone/go-cookbook/internal/github"
	sitehttp "github.com/goliatone/go-cookbook/internal/http"
	"github.com/goliatone/go-cookbook/internal/logging"
	"github.com/goliatone/go-cookbook/internal/logging/console"
	"github.com/goliatone/go-cookbook/internal/logging/gologger"
	"github.com/goliatone/go-cookbook/internal/markdown"
	"github.com/goliatone/go-cookbook/internal/metrics"
	"github.com/goliatone/go-cookbook/internal/recipes"
	"github.com/goliatone/go-cookbook/internal/routes"
	"github.com/goliatone/go-cookbook/internal/runtimeconfig"
	"github.com/goliatone/go-cookbook/internal/threads"
	"github.com/goliatone/go-cookbook/pkg/interfaces"
)

// Container wires module dependencies from a runtimeconfig.Config. Every
// collaborator can be replaced through an Option before the services are
// built.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	httpClient     *http.Client
	clock          func() time.Time
	registry       threadscmd.CommandRegistry

	routes       *routes.Routes
	client       *github.Client
	contentStore interfaces.ContentStore
	tracker      interfaces.IssueTracker
	navigator    interfaces.Navigator
	renderer     interfaces.MarkdownRenderer
	metrics      *metrics.Metrics

	recipeSvc      *recipes.Service
	resolver       *threads.Resolver
	threadCommands *threadscmd.HandlerSet
	siteAPI        *sitehttp.SiteAPI
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected by the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithHTTPClient sets the client used by the remote content and tracker client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Container) {
		c.httpClient = client
	}
}

// WithContentStore replaces the remote content store.
func WithContentStore(store interfaces.ContentStore) Option {
	return func(c *Container) {
		c.contentStore = store
	}
}

// WithIssueTracker replaces the remote discussion tracker.
func WithIssueTracker(tracker interfaces.IssueTracker) Option {
	return func(c *Container) {
		c.tracker = tracker
	}
}

// WithNavigator sets the default navigator of the OpenComposer command.
func WithNavigator(nav interfaces.Navigator) Option {
	return func(c *Container) {
		c.navigator = nav
	}
}

// WithRenderer replaces the goldmark renderer.
func WithRenderer(renderer interfaces.MarkdownRenderer) Option {
	return func(c *Container) {
		c.renderer = renderer
	}
}

// WithMetrics supplies the metrics registry instead of building one.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Container) {
		c.metrics = m
	}
}

// WithClock overrides the ingestion clock.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		c.clock = clock
	}
}

// WithCommandRegistry registers the command handlers with reg once built.
func WithCommandRegistry(reg threadscmd.CommandRegistry) Option {
	return func(c *Container) {
		c.registry = reg
	}
}

// NewContainer validates cfg and builds every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	c.configureRoutes()
	c.configureRemote()
	c.configureMetrics()

	if c.renderer == nil {
		c.renderer = markdown.NewGoldmarkRenderer(interfaces.RenderOptions{
			Extensions: cfg.Markdown.Extensions,
			HardWraps:  cfg.Markdown.HardWraps,
			SafeMode:   cfg.Markdown.SafeMode,
		})
	}

	if err := c.configureServices(); err != nil {
		return nil, err
	}

	logging.ModuleLogger(c.loggerProvider, "cookbook").Info("container.configured",
		"owner", cfg.Content.Owner,
		"store", cfg.Content.Store,
		"metrics", c.metrics != nil,
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return fmt.Errorf("di: configure logger: %w", err)
		}
		c.loggerProvider = provider
	default:
		c.loggerProvider = console.NewProvider(console.Options{Level: c.Config.Logging.Level})
	}
	return nil
}

func (c *Container) configureRoutes() {
	cfg := c.Config.Remote.Routes
	if cfg == nil {
		cfg = routes.DefaultConfig(routes.Bases{
			API:  c.Config.Remote.APIBaseURL,
			Raw:  c.Config.Remote.RawBaseURL,
			Web:  c.Config.Remote.WebBaseURL,
			Site: c.Config.HTTP.SiteBaseURL,
		})
	}
	c.routes = routes.New(cfg)
}

func (c *Container) configureRemote() {
	if c.contentStore != nil && c.tracker != nil {
		return
	}
	c.client = github.NewClient(c.routes, github.Options{
		HTTPClient: c.httpClient,
		UserAgent:  c.Config.Remote.UserAgent,
		Timeout:    c.Config.Remote.Timeout,
		MaxBody:    c.Config.Remote.MaxDocumentBytes,
		Logger:     logging.GitHubLogger(c.loggerProvider),
	})
	if c.contentStore == nil {
		c.contentStore = c.client
	}
	if c.tracker == nil {
		c.tracker = c.client
	}
}

func (c *Container) configureMetrics() {
	if c.metrics != nil || !c.Config.Features.Metrics {
		return
	}
	c.metrics = metrics.New(c.Config.Metrics.Namespace)
}

func (c *Container) configureServices() error {
	content := c.Config.Content
	recipeOpts := []recipes.Option{
		recipes.WithLogger(logging.RecipesLogger(c.loggerProvider)),
		recipes.WithMetrics(c.metrics),
	}
	if c.clock != nil {
		recipeOpts = append(recipeOpts, recipes.WithClock(c.clock))
	}
	c.recipeSvc = recipes.NewService(c.contentStore, c.routes, recipes.Config{
		Owner:        content.Owner,
		Store:        content.Store,
		Ref:          content.Ref,
		Root:         content.Root,
		Document:     content.Document,
		Thumbnail:    content.Thumbnail,
		AssetBaseURL: content.AssetBaseURL,
	}, recipeOpts...)

	discussions := c.Config.Discussions
	c.resolver = threads.NewResolver(c.tracker, c.routes, threads.Config{
		Label:        discussions.Label,
		OpenOnly:     discussions.OpenOnly,
		TitlePrefix:  discussions.TitlePrefix,
		BodyTemplate: discussions.BodyTemplate,
	},
		threads.WithLogger(logging.ThreadsLogger(c.loggerProvider)),
		threads.WithMetrics(c.metrics),
	)

	set, err := threadscmd.RegisterThreadCommands(c.registry, c.resolver, c.loggerProvider,
		threadscmd.WithDefaultNavigator(c.navigator),
	)
	if err != nil {
		return fmt.Errorf("di: register thread commands: %w", err)
	}
	c.threadCommands = set

	c.siteAPI = sitehttp.NewSiteAPI(content.Owner, content.Store,
		sitehttp.WithRecipeService(c.recipeSvc),
		sitehttp.WithDiscussions(c.resolver),
		sitehttp.WithComposer(set.OpenComposer),
		sitehttp.WithRenderer(c.renderer),
		sitehttp.WithRoutes(c.routes),
		sitehttp.WithMetrics(c.metrics),
		sitehttp.WithMetricsPath(c.Config.Metrics.Path),
		sitehttp.WithLogger(logging.HTTPLogger(c.loggerProvider)),
	)
	return nil
}

// LoggerProvider returns the active logger provider; nil when logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Routes returns the route manager wrapper.
func (c *Container) Routes() *routes.Routes {
	return c.routes
}

// ContentStore returns the content store backing ingestion.
func (c *Container) ContentStore() interfaces.ContentStore {
	return c.contentStore
}

// IssueTracker returns the tracker backing discussions.
func (c *Container) IssueTracker() interfaces.IssueTracker {
	return c.tracker
}

// Renderer returns the markdown renderer.
func (c *Container) Renderer() interfaces.MarkdownRenderer {
	return c.renderer
}

// Metrics returns the metrics registry; nil when metrics are disabled.
func (c *Container) Metrics() *metrics.Metrics {
	return c.metrics
}

// RecipeService returns the ingestion service.
func (c *Container) RecipeService() *recipes.Service {
	return c.recipeSvc
}

// ThreadResolver returns the discussion thread resolver.
func (c *Container) ThreadResolver() *threads.Resolver {
	return c.resolver
}

// ThreadCommands returns the thread command handlers.
func (c *Container) ThreadCommands() *threadscmd.HandlerSet {
	return c.threadCommands
}

// SiteAPI returns the HTTP adapter.
func (c *Container) SiteAPI() *sitehttp.SiteAPI {
	return c.siteAPI
}
