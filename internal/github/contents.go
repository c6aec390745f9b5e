package github

import (
	"context"

	"github.com/goliatone/go-cookbook/pkg/interfaces"
)

// ListDirectory returns the entries directly under root. A root that is a
// file rather than a directory decodes as an error.
func (c *Client) ListDirectory(ctx context.Context, owner, store, root string) ([]interfaces.DirectoryEntry, error) {
	target, err := c.routes.Contents(owner, store, root)
	if err != nil {
		return nil, err
	}
	var entries []interfaces.DirectoryEntry
	if err := c.getJSON(ctx, target, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FetchDocument downloads the raw text of ref from the raw content host.
func (c *Client) FetchDocument(ctx context.Context, ref interfaces.DocumentRef) (string, error) {
	target, err := c.routes.Document(ref.Owner, ref.Store, ref.Ref, ref.Root, ref.ID, ref.Name)
	if err != nil {
		return "", err
	}
	body, err := c.get(ctx, target, "")
	if err != nil {
		return "", err
	}
	return string(body), nil
}
