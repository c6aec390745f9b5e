package threads

import "time"

// Ref identifies the recipe a thread belongs to.
type Ref struct {
	Owner     string
	Store     string
	ContentID string
}

// Thread is the tracker issue holding a recipe's comments. A nil ThreadID
// means the issue has not been created yet.
type Thread struct {
	ThreadID *int      `json:"thread_id"`
	Title    string    `json:"title,omitempty"`
	URL      string    `json:"url,omitempty"`
	Comments []Comment `json:"comments"`
}

// Comment is one reply on a thread.
type Comment struct {
	ID               int64     `json:"id"`
	Author           string    `json:"author"`
	AvatarURL        string    `json:"avatar_url"`
	AuthorProfileURL string    `json:"author_profile_url"`
	CreatedAt        time.Time `json:"created_at"`
	Body             string    `json:"body"`
	Permalink        string    `json:"permalink"`
}

// Status is the state of the comments section of a detail view.
type Status string

const (
	StatusLoaded Status = "loaded"
	StatusEmpty  Status = "empty"
	StatusFailed Status = "failed"
)

// Discussion is everything the detail view needs to show comments.
// ComposeURL points at the reply box when a thread exists and at the
// prefilled creation form otherwise.
type Discussion struct {
	Status     Status  `json:"status"`
	Thread     *Thread `json:"thread,omitempty"`
	ComposeURL string  `json:"compose_url"`
}

// Config controls how threads are found and created.
type Config struct {
	Label        string
	OpenOnly     bool
	TitlePrefix  string
	BodyTemplate string
}

// DefaultConfig matches the conventions of existing cookbook repositories.
func DefaultConfig() Config {
	return Config{
		Label:        "recipe-comment",
		OpenOnly:     true,
		TitlePrefix:  "Comments for recipe:",
		BodyTemplate: `This issue is for comments on the recipe "%s". Please add your comments below!`,
	}
}
