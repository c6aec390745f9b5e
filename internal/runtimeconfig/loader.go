package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces the environment variables read by Load.
const EnvPrefix = "COOKBOOK"

// Load reads an optional YAML file over DefaultConfig. A blank path looks for
// cookbook.yaml in the working directory and tolerates its absence; an
// explicit path must exist. Only the content owner and store are read from
// the environment (COOKBOOK_OWNER, COOKBOOK_STORE).
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("cookbook")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	if err := v.BindEnv("content.owner", EnvPrefix+"_OWNER"); err != nil {
		return Config{}, err
	}
	if err := v.BindEnv("content.store", EnvPrefix+"_STORE"); err != nil {
		return Config{}, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return Config{}, fmt.Errorf("cookbook config: read %s: %w", describe(path), err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("cookbook config: decode: %w", err)
	}
	return cfg, nil
}

func describe(path string) string {
	if path == "" {
		return "cookbook.yaml"
	}
	return path
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("content.ref", cfg.Content.Ref)
	v.SetDefault("content.root", cfg.Content.Root)
	v.SetDefault("content.document", cfg.Content.Document)
	v.SetDefault("content.thumbnail", cfg.Content.Thumbnail)
	v.SetDefault("discussions.label", cfg.Discussions.Label)
	v.SetDefault("discussions.open_only", cfg.Discussions.OpenOnly)
	v.SetDefault("discussions.title_prefix", cfg.Discussions.TitlePrefix)
	v.SetDefault("discussions.body_template", cfg.Discussions.BodyTemplate)
	v.SetDefault("remote.api_base_url", cfg.Remote.APIBaseURL)
	v.SetDefault("remote.raw_base_url", cfg.Remote.RawBaseURL)
	v.SetDefault("remote.web_base_url", cfg.Remote.WebBaseURL)
	v.SetDefault("remote.user_agent", cfg.Remote.UserAgent)
	v.SetDefault("remote.timeout", cfg.Remote.Timeout)
	v.SetDefault("remote.max_document_bytes", cfg.Remote.MaxDocumentBytes)
	v.SetDefault("markdown.extensions", cfg.Markdown.Extensions)
	v.SetDefault("http.addr", cfg.HTTP.Addr)
	v.SetDefault("http.site_base_url", cfg.HTTP.SiteBaseURL)
	v.SetDefault("http.shutdown_timeout", cfg.HTTP.ShutdownTimeout)
	v.SetDefault("metrics.namespace", cfg.Metrics.Namespace)
	v.SetDefault("metrics.path", cfg.Metrics.Path)
	v.SetDefault("features.logger", cfg.Features.Logger)
	v.SetDefault("features.metrics", cfg.Features.Metrics)
	v.SetDefault("logging.provider", cfg.Logging.Provider)
	v.SetDefault("logging.level", cfg.Logging.Level)
}
