package recipes

import (
	"time"

	"github.com/google/uuid"
)

// Record is one recipe as read from its directory in the content store.
// ID is the directory name and the only key used for lookups and thread
// mapping; UID is derived from it for consumers that want a UUID.
type Record struct {
	ID            string    `json:"id"`
	UID           uuid.UUID `json:"uid"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	PublishedAt   time.Time `json:"published_at"`
	ThumbnailPath string    `json:"thumbnail"`
	Tags          []string  `json:"tags"`
	Body          string    `json:"body"`
	Details       Details   `json:"details"`
}

// Details are the optional cooking facts shown on the detail view.
type Details struct {
	PrepTime   string `json:"prep_time,omitempty"`
	CookTime   string `json:"cook_time,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Servings   int    `json:"servings,omitempty"`
}

// Config locates the collection and its assets.
type Config struct {
	Owner     string
	Store     string
	Ref       string
	Root      string
	Document  string
	Thumbnail string
	// AssetBaseURL replaces the raw content host as the asset prefix.
	AssetBaseURL string
}
