package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTagsCmd(a *app) *cobra.Command {
	var tag string
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List tags, or the posts carrying one tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if tag != "" {
				posts, err := a.posts.PostsByTag(cmd.Context(), tag)
				if err != nil {
					return err
				}
				if len(posts) == 0 {
					fmt.Fprintf(out, "no posts tagged %q\n", tag)
					return nil
				}
				printPostTable(out, posts)
				return nil
			}

			tags, err := a.posts.ListTags(cmd.Context())
			if err != nil {
				return err
			}
			for _, t := range tags {
				fmt.Fprintln(out, t)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&tag, "tag", "", "show the posts with this tag")
	return cmd
}
