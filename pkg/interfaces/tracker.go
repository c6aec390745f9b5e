package interfaces

import (
	"context"
	"time"
)

// TrackerItem is an issue returned by a tracker search.
type TrackerItem struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	HTMLURL string `json:"html_url"`
}

// TrackerUser is the author of a tracker comment.
type TrackerUser struct {
	Login      string `json:"login"`
	AvatarURL  string `json:"avatar_url"`
	ProfileURL string `json:"html_url"`
}

// TrackerComment is a single comment on a tracker item.
type TrackerComment struct {
	ID        int64       `json:"id"`
	Author    TrackerUser `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
	Body      string      `json:"body"`
	Permalink string      `json:"html_url"`
}

// IssueTracker is the remote discussion tracker that hosts recipe threads.
type IssueTracker interface {
	SearchIssues(ctx context.Context, query string) ([]TrackerItem, error)
	ListComments(ctx context.Context, owner, store string, number int) ([]TrackerComment, error)
}
