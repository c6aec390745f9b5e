package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-cookbook/internal/recipes"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status, payload := mapError(err)
	writeJSON(w, status, payload)
}

func mapError(err error) (int, errorResponse) {
	if err == nil {
		return http.StatusInternalServerError, errorResponse{Error: "unknown_error"}
	}

	switch {
	case errors.Is(err, recipes.ErrListingFailed):
		return http.StatusBadGateway, errorResponse{Error: "listing_failed", Message: "recipes are unavailable"}
	case errors.Is(err, recipes.ErrRecipeNotFound):
		return http.StatusNotFound, errorResponse{Error: "not_found", Message: "recipe not found"}
	case errors.Is(err, recipes.ErrInvalidID):
		return http.StatusBadRequest, errorResponse{Error: "invalid_id", Message: err.Error()}
	case errors.Is(err, recipes.ErrRecipeFetchFailed):
		return http.StatusBadGateway, errorResponse{Error: "fetch_failed", Message: "recipe is unavailable"}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, errorResponse{Error: "timeout"}
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, errorResponse{Error: "cancelled"}
	}

	switch {
	case goerrors.IsCategory(err, goerrors.CategoryValidation):
		return http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()}
	case goerrors.IsCategory(err, goerrors.CategoryNotFound):
		return http.StatusNotFound, errorResponse{Error: "not_found", Message: err.Error()}
	case goerrors.IsCategory(err, goerrors.CategoryExternal):
		return http.StatusBadGateway, errorResponse{Error: "upstream_failed", Message: err.Error()}
	}

	return http.StatusInternalServerError, errorResponse{Error: "internal_error"}
}

// parseThreadID reads an optional positive issue number.
func parseThreadID(value string) (*int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n <= 0 {
		return nil, errors.New("thread must be a positive issue number")
	}
	return &n, nil
}

func queryTags(values []string) []string {
	tags := make([]string, 0, len(values))
	for _, value := range values {
		if value == "" {
			continue
		}
		tags = append(tags, value)
	}
	return tags
}
