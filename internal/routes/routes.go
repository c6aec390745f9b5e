// Package routes describes every URL the cookbook talks to or hands out as a
// go-urlkit route manager: the GitHub REST API, the raw content host, the
// GitHub web UI and the site's own pages.
package routes

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

// Route group names.
const (
	GroupAPI  = "api"
	GroupRaw  = "raw"
	GroupWeb  = "web"
	GroupSite = "site"
)

// Route names.
const (
	RouteContents    = "contents"
	RouteSearch      = "search_issues"
	RouteComments    = "issue_comments"
	RouteDocument    = "document"
	RouteDirectory   = "directory"
	RouteIssue       = "issue"
	RouteNewIssue    = "new_issue"
	RouteListing     = "listing"
	RouteDetail      = "detail"
	RouteDiscuss     = "discuss"
	RouteAPIListing  = "api_listing"
	RouteAPIDetail   = "api_detail"
	RouteAPIComments = "api_comments"
)

// ReplyFragment anchors the GitHub comment box on an issue page.
const ReplyFragment = "new_comment_field"

// Bases holds the base URL of each route group.
type Bases struct {
	API  string
	Raw  string
	Web  string
	Site string
}

// DefaultConfig returns the urlkit configuration for bases.
func DefaultConfig(b Bases) *urlkit.Config {
	return &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    GroupAPI,
				BaseURL: trimBase(b.API),
				Paths: map[string]string{
					RouteContents: "/repos/:owner/:store/contents/:root",
					RouteSearch:   "/search/issues",
					RouteComments: "/repos/:owner/:store/issues/:number/comments",
				},
			},
			{
				Name:    GroupRaw,
				BaseURL: trimBase(b.Raw),
				Paths: map[string]string{
					RouteDocument:  "/:owner/:store/:ref/:root/:id/:document",
					RouteDirectory: "/:owner/:store/:ref/:root/:id",
				},
			},
			{
				Name:    GroupWeb,
				BaseURL: trimBase(b.Web),
				Paths: map[string]string{
					RouteIssue:    "/:owner/:store/issues/:number",
					RouteNewIssue: "/:owner/:store/issues/new",
				},
			},
			{
				Name:    GroupSite,
				BaseURL: trimBase(b.Site),
				Paths: map[string]string{
					RouteListing:     "/",
					RouteDetail:      "/recipes/:id",
					RouteDiscuss:     "/recipes/:id/discuss",
					RouteAPIListing:  "/api/recipes",
					RouteAPIDetail:   "/api/recipes/:id",
					RouteAPIComments: "/api/recipes/:id/comments",
				},
			},
		},
	}
}

func trimBase(base string) string {
	return strings.TrimRight(strings.TrimSpace(base), "/")
}

// Routes builds URLs from a urlkit.RouteManager.
type Routes struct {
	manager *urlkit.RouteManager
}

// New wraps a route manager built from cfg.
func New(cfg *urlkit.Config) *Routes {
	return &Routes{manager: urlkit.NewRouteManager(cfg)}
}

// Manager exposes the underlying route manager.
func (r *Routes) Manager() *urlkit.RouteManager {
	return r.manager
}

// Build renders route in group with params and query values.
func (r *Routes) Build(group, route string, params map[string]any, query url.Values) (string, error) {
	builder, err := r.builder(group, route)
	if err != nil {
		return "", err
	}
	for key, value := range params {
		builder.WithParam(key, value)
	}
	if len(query) > 0 {
		builder.WithQueryValues(query)
	}
	out, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("routes: build %s.%s: %w", group, route, err)
	}
	return escapeOnce(out)
}

// escapeOnce undoes the second round of path escaping urlkit applies when it
// joins an already escaped route path onto the group base, so each param
// ends up escaped exactly once.
func escapeOnce(raw string) (string, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("routes: parse %q: %w", raw, err)
	}
	escaped := parsed.Path
	decoded, err := url.PathUnescape(escaped)
	if err != nil {
		return "", fmt.Errorf("routes: unescape %q: %w", escaped, err)
	}
	parsed.Path = decoded
	parsed.RawPath = escaped
	return parsed.String(), nil
}

// Contents is the API listing of the collection root.
func (r *Routes) Contents(owner, store, root string) (string, error) {
	return r.Build(GroupAPI, RouteContents, map[string]any{"owner": owner, "store": store, "root": root}, nil)
}

// Document is the raw URL of one item's document.
func (r *Routes) Document(owner, store, ref, root, id, document string) (string, error) {
	return r.Build(GroupRaw, RouteDocument, map[string]any{
		"owner": owner, "store": store, "ref": ref, "root": root, "id": id, "document": document,
	}, nil)
}

// Directory is the raw URL of one item's directory, used as the asset prefix
// when no dedicated asset host is configured.
func (r *Routes) Directory(owner, store, ref, root, id string) (string, error) {
	return r.Build(GroupRaw, RouteDirectory, map[string]any{
		"owner": owner, "store": store, "ref": ref, "root": root, "id": id,
	}, nil)
}

// SearchIssues is the issue search endpoint for query.
func (r *Routes) SearchIssues(query string) (string, error) {
	return r.Build(GroupAPI, RouteSearch, nil, url.Values{"q": {query}})
}

// IssueComments lists the comments of issue number.
func (r *Routes) IssueComments(owner, store string, number int) (string, error) {
	return r.Build(GroupAPI, RouteComments, map[string]any{
		"owner": owner, "store": store, "number": strconv.Itoa(number),
	}, nil)
}

// Issue is the web page of issue number.
func (r *Routes) Issue(owner, store string, number int) (string, error) {
	return r.Build(GroupWeb, RouteIssue, map[string]any{
		"owner": owner, "store": store, "number": strconv.Itoa(number),
	}, nil)
}

// IssueReply is the issue page anchored on the comment box.
func (r *Routes) IssueReply(owner, store string, number int) (string, error) {
	issue, err := r.Issue(owner, store, number)
	if err != nil {
		return "", err
	}
	return issue + "#" + ReplyFragment, nil
}

// NewIssue is the prefilled issue creation page.
func (r *Routes) NewIssue(owner, store string, query url.Values) (string, error) {
	return r.Build(GroupWeb, RouteNewIssue, map[string]any{"owner": owner, "store": store}, query)
}

// Site renders one of the site routes; id is ignored by routes without it.
func (r *Routes) Site(route, id string, query url.Values) (string, error) {
	var params map[string]any
	if id != "" {
		params = map[string]any{"id": id}
	}
	return r.Build(GroupSite, route, params, query)
}

func (r *Routes) builder(groupName, route string) (builder *urlkit.Builder, err error) {
	if r == nil || r.manager == nil {
		return nil, fmt.Errorf("routes: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			builder = nil
			err = fmt.Errorf("routes: %s.%s not found: %v", groupName, route, rec)
		}
	}()
	group := r.manager.Group(groupName)
	if group == nil {
		return nil, fmt.Errorf("routes: group %q not found", groupName)
	}
	return group.Builder(route), nil
}
