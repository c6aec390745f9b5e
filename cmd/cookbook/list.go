package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-cookbook"
)

func newListCommand(root *rootOptions) *cobra.Command {
	var (
		term   string
		tags   []string
		all    bool
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := root.module.Recipes(cmd.Context())
			if err != nil {
				return err
			}
			sel := cookbook.NewSelection(cookbook.Query{})
			sel.SetSearchTerm(strings.TrimSpace(term))
			for _, tag := range tags {
				sel.ToggleTag(strings.TrimSpace(tag))
			}
			if all {
				sel.Clear()
			}
			matched := root.module.Filter(records, sel.Query())

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(matched)
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPUBLISHED\tTITLE\tTAGS")
			for _, record := range matched {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					record.ID,
					record.PublishedAt.Format("2006-01-02"),
					record.Title,
					strings.Join(record.Tags, ", "),
				)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "%d of %d recipes\n", len(matched), len(records))
			if sel.Active() {
				q := sel.Query()
				fmt.Fprintf(out, "filtered by query=%q tags=[%s]\n", q.SearchTerm, strings.Join(q.Tags, ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&term, "query", "q", "", "case-insensitive text matched against title and description")
	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "toggle a required tag; repeating a tag deselects it")
	cmd.Flags().BoolVar(&all, "all", false, "ignore --query and --tag")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print records as JSON")
	return cmd
}
