package interfaces

// MarkdownRenderer converts recipe markdown bodies into HTML. Implementations
// must support raw HTML passthrough and the GFM table extension.
type MarkdownRenderer interface {
	// Render converts Markdown into HTML using the renderer defaults.
	Render(markdown []byte) ([]byte, error)
	// RenderWithOptions converts Markdown into HTML using the supplied overrides.
	RenderWithOptions(markdown []byte, opts RenderOptions) ([]byte, error)
}

// RenderOptions customises Markdown rendering, keeping option names readable
// for configuration unmarshalling.
type RenderOptions struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}
