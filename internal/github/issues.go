package github

import (
	"context"

	"github.com/goliatone/go-cookbook/pkg/interfaces"
)

type searchResponse struct {
	TotalCount int                      `json:"total_count"`
	Items      []interfaces.TrackerItem `json:"items"`
}

// SearchIssues runs an issue search and returns the first page of hits in
// the order GitHub ranked them.
func (c *Client) SearchIssues(ctx context.Context, query string) ([]interfaces.TrackerItem, error) {
	target, err := c.routes.SearchIssues(query)
	if err != nil {
		return nil, err
	}
	var resp searchResponse
	if err := c.getJSON(ctx, target, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// ListComments returns the first page of comments on issue number, oldest first.
func (c *Client) ListComments(ctx context.Context, owner, store string, number int) ([]interfaces.TrackerComment, error) {
	target, err := c.routes.IssueComments(owner, store, number)
	if err != nil {
		return nil, err
	}
	var comments []interfaces.TrackerComment
	if err := c.getJSON(ctx, target, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
