package recipes

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

var (
	ErrListingFailed     = errors.New("recipes: directory listing failed")
	ErrRecipeNotFound    = errors.New("recipes: recipe not found")
	ErrRecipeFetchFailed = errors.New("recipes: recipe fetch failed")
	ErrInvalidID         = errors.New("recipes: invalid recipe id")
)

const (
	listingFailedCode = "RECIPES_LISTING_FAILED"
	notFoundCode      = "RECIPES_NOT_FOUND"
	fetchFailedCode   = "RECIPES_FETCH_FAILED"
	invalidIDCode     = "RECIPES_INVALID_ID"
)

func listingError(cause error) error {
	return goerrors.Wrap(fmt.Errorf("%w: %w", ErrListingFailed, cause), goerrors.CategoryExternal, "recipe listing unavailable").
		WithTextCode(listingFailedCode)
}

func notFoundError(id string, cause error) error {
	return goerrors.Wrap(fmt.Errorf("%w: %q: %w", ErrRecipeNotFound, id, cause), goerrors.CategoryNotFound, "recipe not found").
		WithTextCode(notFoundCode)
}

func fetchError(id string, cause error) error {
	return goerrors.Wrap(fmt.Errorf("%w: %q: %w", ErrRecipeFetchFailed, id, cause), goerrors.CategoryExternal, "recipe unavailable").
		WithTextCode(fetchFailedCode)
}

func invalidIDError(cause error) error {
	return goerrors.Wrap(fmt.Errorf("%w: %w", ErrInvalidID, cause), goerrors.CategoryValidation, "recipe id is invalid").
		WithTextCode(invalidIDCode)
}
