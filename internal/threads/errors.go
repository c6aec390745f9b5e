package threads

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

var (
	ErrLookupFailed = errors.New("threads: discussion lookup failed")
	ErrInvalidRef   = errors.New("threads: invalid thread reference")
)

const (
	lookupFailedCode = "THREADS_LOOKUP_FAILED"
	invalidRefCode   = "THREADS_INVALID_REF"
)

func lookupError(stage string, cause error) error {
	return goerrors.Wrap(fmt.Errorf("%w: %s: %w", ErrLookupFailed, stage, cause), goerrors.CategoryExternal, "discussion unavailable").
		WithTextCode(lookupFailedCode)
}

func invalidRefError(cause error) error {
	return goerrors.Wrap(fmt.Errorf("%w: %w", ErrInvalidRef, cause), goerrors.CategoryValidation, "thread reference is invalid").
		WithTextCode(invalidRefCode)
}
