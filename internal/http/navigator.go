package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// redirectNavigator answers the current request with a 302 to the target.
type redirectNavigator struct {
	w http.ResponseWriter
	r *http.Request
}

func (n redirectNavigator) Navigate(_ context.Context, target string) error {
	if strings.TrimSpace(target) == "" {
		return errors.New("http: empty navigation target")
	}
	http.Redirect(n.w, n.r, target, http.StatusFound)
	return nil
}
