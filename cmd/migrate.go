package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Data migrations",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "timestamps",
		Short: "Derive created/updated times for posts that lack them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			n, err := a.posts.BackfillTimestamps(cmd.Context())
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "all posts already have timestamps")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated %d posts\n", n)
			return nil
		},
	})
	return cmd
}
