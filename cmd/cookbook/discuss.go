package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-cookbook"
)

// printNavigator hands the target to the terminal user.
type printNavigator struct {
	out io.Writer
}

func (n printNavigator) Navigate(_ context.Context, target string) error {
	_, err := fmt.Fprintln(n.out, target)
	return err
}

func newDiscussCommand(root *rootOptions) *cobra.Command {
	var (
		title    string
		threadID int
	)
	cmd := &cobra.Command{
		Use:   "discuss <recipe-id>",
		Short: "Print where to comment on a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := cookbook.OpenComposerCommand{
				Owner:     root.config.Content.Owner,
				Store:     root.config.Content.Store,
				ContentID: args[0],
				Title:     title,
			}
			if cmd.Flags().Changed("thread") {
				msg.ThreadID = &threadID
			} else if discussion := root.module.Discussion(cmd.Context(), args[0], title); discussion.Thread != nil {
				msg.ThreadID = discussion.Thread.ThreadID
			}
			return root.module.OpenComposer(cmd.Context(), printNavigator{out: cmd.OutOrStdout()}, msg)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "recipe title used when a new thread is needed")
	cmd.Flags().IntVar(&threadID, "thread", 0, "existing thread number; skips the lookup")
	return cmd
}
