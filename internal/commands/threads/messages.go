package threadscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const openComposerMessageType = "cookbook.threads.open_composer"

// OpenComposerCommand sends the reader to the place where they can comment on
// a recipe: the reply box of ThreadID when it is known, otherwise the
// prefilled new thread form.
type OpenComposerCommand struct {
	Owner     string `json:"owner"`
	Store     string `json:"store"`
	ContentID string `json:"content_id"`
	// Title is the recipe title used for the new thread; the content id is
	// used when it is blank.
	Title    string `json:"title,omitempty"`
	ThreadID *int   `json:"thread_id,omitempty"`
}

// Type implements command.Message.
func (OpenComposerCommand) Type() string { return openComposerMessageType }

// Validate ensures the recipe reference is complete and the thread number, when
// present, is positive.
func (cmd OpenComposerCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Owner, validation.By(notBlank("owner"))),
		validation.Field(&cmd.Store, validation.By(notBlank("store"))),
		validation.Field(&cmd.ContentID, validation.By(notBlank("content_id"))),
		validation.Field(&cmd.ThreadID, validation.By(func(value any) error {
			id, _ := value.(*int)
			if id != nil && *id <= 0 {
				return validation.NewError("cookbook.threads.open_composer.thread_id_invalid", "thread id must be positive")
			}
			return nil
		})),
	)
}

func notBlank(field string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return validation.NewError("cookbook.threads.open_composer."+field+"_required", field+" is required")
		}
		return nil
	}
}
