package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	threadscmd "github.com/goliatone/go-cookbook/internal/commands/threads"
	"github.com/goliatone/go-cookbook/internal/filter"
	"github.com/goliatone/go-cookbook/internal/recipes"
	"github.com/goliatone/go-cookbook/internal/routes"
	"github.com/goliatone/go-cookbook/internal/threads"
)

type recipeLinks struct {
	Detail   string `json:"detail,omitempty"`
	Discuss  string `json:"discuss,omitempty"`
	Comments string `json:"comments,omitempty"`
	Listing  string `json:"listing,omitempty"`
}

type recipeView struct {
	recipes.Record
	Links recipeLinks `json:"links"`
}

// facetView is a tag badge plus the listing URL with that tag toggled.
type facetView struct {
	filter.Facet
	Toggle string `json:"toggle,omitempty"`
}

type listingResponse struct {
	Recipes []recipeView `json:"recipes"`
	Tags    []string     `json:"tags"`
	Facets  []facetView  `json:"facets"`
	Query   filter.Query `json:"query"`
	Clear   string       `json:"clear,omitempty"`
	Total   int          `json:"total"`
	Matched int          `json:"matched"`
}

type detailResponse struct {
	recipeView
	BodyHTML string `json:"body_html"`
}

func (api *SiteAPI) handleListing(w http.ResponseWriter, r *http.Request) {
	if api.recipes == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	records, err := api.recipes.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	params := r.URL.Query()
	sel := filter.NewSelection(filter.Query{
		SearchTerm: params.Get("q"),
		Tags:       queryTags(params["tag"]),
	})
	query := sel.Query()
	matched := filter.Apply(records, query)

	views := make([]recipeView, 0, len(matched))
	for _, record := range matched {
		views = append(views, api.view(record))
	}
	facets := filter.Facets(records, sel)
	facetViews := make([]facetView, 0, len(facets))
	for _, facet := range facets {
		next := filter.NewSelection(query)
		next.ToggleTag(facet.Name)
		facetViews = append(facetViews, facetView{Facet: facet, Toggle: api.listingLink(next)})
	}

	resp := listingResponse{
		Recipes: views,
		Tags:    filter.AvailableTags(records),
		Facets:  facetViews,
		Query:   query,
		Total:   len(records),
		Matched: len(matched),
	}
	if sel.Active() {
		cleared := filter.NewSelection(query)
		cleared.Clear()
		resp.Clear = api.listingLink(cleared)
	}
	writeJSON(w, http.StatusOK, resp)
}

// listingLink is the listing API URL that reproduces sel.
func (api *SiteAPI) listingLink(sel *filter.Selection) string {
	q := sel.Query()
	values := url.Values{}
	if term := strings.TrimSpace(q.SearchTerm); term != "" {
		values.Set("q", term)
	}
	if len(q.Tags) > 0 {
		values["tag"] = q.Tags
	}
	return api.link(routes.RouteAPIListing, "", values)
}

func (api *SiteAPI) handleDetail(w http.ResponseWriter, r *http.Request) {
	if api.recipes == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	record, err := api.recipes.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := detailResponse{recipeView: api.view(record)}
	if api.renderer != nil {
		html, err := api.renderer.Render([]byte(record.Body))
		if err != nil {
			api.logger.WithContext(r.Context()).Error("http.detail.render_failed", "recipe_id", record.ID, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "render_failed"})
			return
		}
		resp.BodyHTML = string(html)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (api *SiteAPI) handleComments(w http.ResponseWriter, r *http.Request) {
	if api.discussions == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	discussion := api.discussions.Load(r.Context(), threads.Ref{
		Owner:     api.owner,
		Store:     api.store,
		ContentID: strings.TrimSpace(r.PathValue("id")),
	}, r.URL.Query().Get("title"))
	writeJSON(w, http.StatusOK, discussion)
}

func (api *SiteAPI) handleDiscuss(w http.ResponseWriter, r *http.Request) {
	if api.composer == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	params := r.URL.Query()
	threadID, err := parseThreadID(params.Get("thread"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	id := strings.TrimSpace(r.PathValue("id"))
	title := strings.TrimSpace(params.Get("title"))
	if title == "" {
		title = api.recipeTitle(r.Context(), id)
	}
	if threadID == nil && api.discussions != nil {
		discussion := api.discussions.Load(r.Context(), threads.Ref{Owner: api.owner, Store: api.store, ContentID: id}, title)
		if discussion.Thread != nil {
			threadID = discussion.Thread.ThreadID
		}
	}

	ctx := threadscmd.WithNavigator(r.Context(), redirectNavigator{w: w, r: r})
	err = api.composer.Execute(ctx, threadscmd.OpenComposerCommand{
		Owner:     api.owner,
		Store:     api.store,
		ContentID: id,
		Title:     title,
		ThreadID:  threadID,
	})
	if err != nil {
		writeError(w, err)
	}
}

// recipeTitle looks up the title of id for discuss links that arrive
// without one. It returns "" when the recipe cannot be fetched.
func (api *SiteAPI) recipeTitle(ctx context.Context, id string) string {
	if api.recipes == nil {
		return ""
	}
	record, err := api.recipes.Get(ctx, id)
	if err != nil {
		api.logger.WithContext(ctx).Debug("http.discuss.title_lookup_failed", "recipe_id", id, "error", err)
		return ""
	}
	return record.Title
}

func (api *SiteAPI) view(record recipes.Record) recipeView {
	titled := url.Values{"title": {record.Title}}
	return recipeView{
		Record: record,
		Links: recipeLinks{
			Detail:   api.link(routes.RouteDetail, record.ID, nil),
			Discuss:  api.link(routes.RouteDiscuss, record.ID, titled),
			Comments: api.link(routes.RouteAPIComments, record.ID, titled),
			Listing:  api.link(routes.RouteListing, "", nil),
		},
	}
}
