package cookbook

import "github.com/goliatone/go-cookbook/internal/runtimeconfig"

var (
	ErrContentOwnerRequired       = runtimeconfig.ErrContentOwnerRequired
	ErrContentStoreRequired       = runtimeconfig.ErrContentStoreRequired
	ErrContentConfigInvalid       = runtimeconfig.ErrContentConfigInvalid
	ErrDiscussionsConfigInvalid   = runtimeconfig.ErrDiscussionsConfigInvalid
	ErrRemoteBaseURLRequired      = runtimeconfig.ErrRemoteBaseURLRequired
	ErrRemoteTimeoutInvalid       = runtimeconfig.ErrRemoteTimeoutInvalid
	ErrRemoteDocumentLimitInvalid = runtimeconfig.ErrRemoteDocumentLimitInvalid
	ErrHTTPAddrRequired           = runtimeconfig.ErrHTTPAddrRequired
	ErrMetricsPathInvalid         = runtimeconfig.ErrMetricsPathInvalid
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config            = runtimeconfig.Config
	ContentConfig     = runtimeconfig.ContentConfig
	DiscussionsConfig = runtimeconfig.DiscussionsConfig
	RemoteConfig      = runtimeconfig.RemoteConfig
	MarkdownConfig    = runtimeconfig.MarkdownConfig
	HTTPConfig        = runtimeconfig.HTTPConfig
	MetricsConfig     = runtimeconfig.MetricsConfig
	Features          = runtimeconfig.Features
	LoggingConfig     = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the baseline configuration. Owner and store must be
// set before the config validates.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads path (or ./cookbook.yaml when blank) on top of the
// defaults. COOKBOOK_OWNER and COOKBOOK_STORE override the content location.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.Load(path)
}
