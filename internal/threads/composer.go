package threads

import (
	"fmt"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks that every part of the reference is present.
func (r Ref) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Owner, validation.Required),
		validation.Field(&r.Store, validation.Required),
		validation.Field(&r.ContentID, validation.Required),
	)
}

// ThreadTitle is the issue title that ties a thread to contentID. The
// bracketed id is what searches match on.
func (r *Resolver) ThreadTitle(contentID, title string) string {
	return fmt.Sprintf("%s %s [%s]", r.cfg.TitlePrefix, title, contentID)
}

// ComposerURL returns where a reader goes to comment: the reply box of
// threadID when it is set, otherwise the tracker's new issue form prefilled
// with the conventional title, body and label. It performs no I/O.
func (r *Resolver) ComposerURL(ref Ref, title string, threadID *int) (string, error) {
	if err := ref.Validate(); err != nil {
		return "", invalidRefError(err)
	}
	if threadID != nil {
		return r.routes.IssueReply(ref.Owner, ref.Store, *threadID)
	}
	if strings.TrimSpace(title) == "" {
		title = ref.ContentID
	}
	query := url.Values{
		"title":  {r.ThreadTitle(ref.ContentID, title)},
		"body":   {fmt.Sprintf(r.cfg.BodyTemplate, title)},
		"labels": {r.cfg.Label},
	}
	return r.routes.NewIssue(ref.Owner, ref.Store, query)
}
