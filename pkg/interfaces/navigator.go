package interfaces

import "context"

// Navigator directs the current user to an external location, for example by
// opening a new browser tab or answering with an HTTP redirect. Navigation is
// fire-and-forget; the returned error only reports that the hand-off failed.
type Navigator interface {
	Navigate(ctx context.Context, target string) error
}
