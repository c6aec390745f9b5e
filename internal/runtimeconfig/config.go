package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	urlkit "github.com/goliatone/go-urlkit"
)

var ErrContentOwnerRequired = errors.New("cookbook config: content owner is required")
var ErrContentStoreRequired = errors.New("cookbook config: content store is required")
var ErrContentConfigInvalid = errors.New("cookbook config: content section is invalid")
var ErrDiscussionsConfigInvalid = errors.New("cookbook config: discussions section is invalid")
var ErrRemoteBaseURLRequired = errors.New("cookbook config: remote base urls are required")
var ErrRemoteTimeoutInvalid = errors.New("cookbook config: remote timeout must be zero or positive")
var ErrRemoteDocumentLimitInvalid = errors.New("cookbook config: document size limit must be positive")
var ErrHTTPAddrRequired = errors.New("cookbook config: http listen address is required")
var ErrMetricsPathInvalid = errors.New("cookbook config: metrics path must be absolute")

// ErrLoggingProviderRequired is returned when the logger feature is on but no provider is set.
var ErrLoggingProviderRequired = errors.New("cookbook config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("cookbook config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("cookbook config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("cookbook config: logging format is invalid")

// Config aggregates everything the cookbook module needs at runtime.
type Config struct {
	Content     ContentConfig     `mapstructure:"content"`
	Discussions DiscussionsConfig `mapstructure:"discussions"`
	Remote      RemoteConfig      `mapstructure:"remote"`
	Markdown    MarkdownConfig    `mapstructure:"markdown"`
	HTTP        HTTPConfig        `mapstructure:"http"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
	Features    Features          `mapstructure:"features"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// ContentConfig locates the recipe collection inside the content store.
type ContentConfig struct {
	Owner     string `mapstructure:"owner"`
	Store     string `mapstructure:"store"`
	Ref       string `mapstructure:"ref"`
	Root      string `mapstructure:"root"`
	Document  string `mapstructure:"document"`
	Thumbnail string `mapstructure:"thumbnail"`
	// AssetBaseURL overrides the prefix used for thumbnails and rewritten
	// asset links. Empty means the raw content host for Owner/Store/Ref.
	AssetBaseURL string `mapstructure:"asset_base_url"`
}

// DiscussionsConfig describes how recipe threads are found on the tracker.
type DiscussionsConfig struct {
	Label        string `mapstructure:"label"`
	OpenOnly     bool   `mapstructure:"open_only"`
	TitlePrefix  string `mapstructure:"title_prefix"`
	BodyTemplate string `mapstructure:"body_template"`
}

// RemoteConfig captures the GitHub endpoints and client limits.
type RemoteConfig struct {
	APIBaseURL       string        `mapstructure:"api_base_url"`
	RawBaseURL       string        `mapstructure:"raw_base_url"`
	WebBaseURL       string        `mapstructure:"web_base_url"`
	UserAgent        string        `mapstructure:"user_agent"`
	Timeout          time.Duration `mapstructure:"timeout"`
	MaxDocumentBytes int64         `mapstructure:"max_document_bytes"`
	// Routes replaces the generated urlkit configuration when set.
	Routes *urlkit.Config `mapstructure:"-"`
}

// MarkdownConfig mirrors interfaces.RenderOptions.
type MarkdownConfig struct {
	Extensions []string `mapstructure:"extensions"`
	HardWraps  bool     `mapstructure:"hard_wraps"`
	SafeMode   bool     `mapstructure:"safe_mode"`
}

// HTTPConfig configures the site adapter served by the binary.
type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	SiteBaseURL     string        `mapstructure:"site_base_url"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	Namespace string `mapstructure:"namespace"`
	Path      string `mapstructure:"path"`
}

// Features toggles optional behaviour.
type Features struct {
	Logger  bool `mapstructure:"logger"`
	Metrics bool `mapstructure:"metrics"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `mapstructure:"provider"`
	Level     string   `mapstructure:"level"`
	Format    string   `mapstructure:"format"`
	AddSource bool     `mapstructure:"add_source"`
	Focus     []string `mapstructure:"focus"`
}

// DefaultConfig returns the settings of the public cookbook deployment minus
// the owner and store, which every host has to supply.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			Ref:       "main",
			Root:      "recipes",
			Document:  "README.md",
			Thumbnail: "thumbnail.png",
		},
		Discussions: DiscussionsConfig{
			Label:        "recipe-comment",
			OpenOnly:     true,
			TitlePrefix:  "Comments for recipe:",
			BodyTemplate: `This issue is for comments on the recipe "%s". Please add your comments below!`,
		},
		Remote: RemoteConfig{
			APIBaseURL:       "https://api.github.com",
			RawBaseURL:       "https://raw.githubusercontent.com",
			WebBaseURL:       "https://github.com",
			UserAgent:        "go-cookbook",
			Timeout:          30 * time.Second,
			MaxDocumentBytes: 5 << 20,
		},
		Markdown: MarkdownConfig{
			Extensions: []string{"gfm", "linkify", "tasklist"},
		},
		HTTP: HTTPConfig{
			Addr:            ":8080",
			SiteBaseURL:     "/",
			ShutdownTimeout: 10 * time.Second,
		},
		Metrics: MetricsConfig{
			Namespace: "cookbook",
			Path:      "/metrics",
		},
		Features: Features{
			Logger:  true,
			Metrics: true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.Owner) == "" {
		return ErrContentOwnerRequired
	}
	if strings.TrimSpace(cfg.Content.Store) == "" {
		return ErrContentStoreRequired
	}
	if err := cfg.Content.validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrContentConfigInvalid, err)
	}
	if err := cfg.Discussions.validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrDiscussionsConfigInvalid, err)
	}
	if cfg.Remote.Routes == nil {
		for _, base := range []string{cfg.Remote.APIBaseURL, cfg.Remote.RawBaseURL, cfg.Remote.WebBaseURL} {
			if strings.TrimSpace(base) == "" {
				return ErrRemoteBaseURLRequired
			}
		}
	}
	if cfg.Remote.Timeout < 0 {
		return ErrRemoteTimeoutInvalid
	}
	if cfg.Remote.MaxDocumentBytes <= 0 {
		return ErrRemoteDocumentLimitInvalid
	}
	if strings.TrimSpace(cfg.HTTP.Addr) == "" {
		return ErrHTTPAddrRequired
	}
	if cfg.Features.Metrics && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return fmt.Errorf("%w: %q", ErrMetricsPathInvalid, cfg.Metrics.Path)
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func (c ContentConfig) validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Ref, validation.Required),
		validation.Field(&c.Root, validation.Required, validation.By(singleSegment)),
		validation.Field(&c.Document, validation.Required, validation.By(singleSegment)),
		validation.Field(&c.Thumbnail, validation.Required, validation.By(singleSegment)),
	)
}

func (d DiscussionsConfig) validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Label, validation.Required),
		validation.Field(&d.TitlePrefix, validation.Required),
		validation.Field(&d.BodyTemplate, validation.Required, validation.By(singleVerb)),
	)
}

// singleSegment keeps path settings usable as route parameters.
func singleSegment(value any) error {
	s, _ := value.(string)
	if strings.ContainsAny(s, "/\\") || s == "." || s == ".." {
		return validation.NewError("validation_path_segment", "must be a single path segment")
	}
	return nil
}

func singleVerb(value any) error {
	s, _ := value.(string)
	if strings.Count(s, "%s") != 1 || strings.Count(s, "%") != 1 {
		return validation.NewError("validation_template_verb", "must contain exactly one %s placeholder")
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
