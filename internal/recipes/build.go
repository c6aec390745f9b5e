package recipes

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-cookbook/internal/identity"
	"github.com/goliatone/go-cookbook/internal/markdown"
)

// Metadata keys read from the frontmatter block.
const (
	KeyTitle       = "title"
	KeyDescription = "description"
	KeyDate        = "date"
	KeyTags        = "tags"
	KeyPrepTime    = "prepTime"
	KeyCookTime    = "cookTime"
	KeyServings    = "servings"
	KeyDifficulty  = "difficulty"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate accepts the layouts above; ok is false when none matches.
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// buildRecord turns a parsed block into a Record. Missing values fall back to
// id for the title, empty strings, an empty tag list and ingestedAt for the
// date. assetPrefix is the URL of the recipe directory.
func (s *Service) buildRecord(id, source, assetPrefix string, ingestedAt time.Time) Record {
	block := markdown.ParseFrontmatter(source)

	title := block.String(KeyTitle)
	if title == "" {
		title = id
	}

	published, ok := parseDate(block.String(KeyDate))
	if !ok {
		if raw := block.String(KeyDate); raw != "" {
			s.logger.Debug("recipes.record.date_invalid", "recipe_id", id, "value", raw)
		}
		published = ingestedAt
	}

	tags := []string{}
	if value, ok := block.Lookup(KeyTags); ok && (value.IsList() || strings.TrimSpace(value.String()) != "") {
		tags = value.Strings()
	}

	return Record{
		ID:            id,
		UID:           identity.RecipeUUID(s.cfg.Owner, s.cfg.Store, id),
		Title:         title,
		Description:   block.String(KeyDescription),
		PublishedAt:   published,
		ThumbnailPath: assetPrefix + "/" + markdown.AssetDir + "/" + s.cfg.Thumbnail,
		Tags:          tags,
		Body:          markdown.RewriteAssetLinks(block.Body, assetPrefix),
		Details: Details{
			PrepTime:   block.String(KeyPrepTime),
			CookTime:   block.String(KeyCookTime),
			Difficulty: block.String(KeyDifficulty),
			Servings:   atoi(block.String(KeyServings)),
		},
	}
}

// assetPrefix is the directory URL of recipe id.
func (s *Service) assetPrefix(id string) (string, error) {
	if base := strings.TrimSpace(s.cfg.AssetBaseURL); base != "" {
		return url.JoinPath(base, s.cfg.Root, id)
	}
	prefix, err := s.routes.Directory(s.cfg.Owner, s.cfg.Store, s.cfg.Ref, s.cfg.Root, id)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(prefix, "/"), nil
}

func atoi(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
