// Package http exposes the cookbook over net/http.
//
// Routes mount on a Go 1.22 ServeMux:
//   - Listing: GET /api/recipes?q=&tag=
//   - Detail: GET /api/recipes/{id}
//   - Comments: GET /api/recipes/{id}/comments?title=
//   - Discuss: GET /recipes/{id}/discuss?title=&thread= (302 to the comment composer)
//   - Health: GET /healthz
//   - Metrics: GET /metrics (configurable) when a metrics registry is wired
//
// Host applications can register handlers on their own mux as needed.
package http
