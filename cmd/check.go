package cmd

import (
	"errors"
	"fmt"
	"io"

	"quillpad/app/services"
	"quillpad/app/validation"

	"github.com/spf13/cobra"
)

var errCheckFailed = errors.New("validation failed")

// report prints "ok" or one line per problem.
func report(out io.Writer, err error) error {
	if err == nil {
		fmt.Fprintln(out, "ok")
		return nil
	}
	if !services.IsValidation(err) {
		return err
	}
	for _, p := range validation.Problems(err) {
		fmt.Fprintln(out, p)
	}
	return errCheckFailed
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the input checks without storing anything",
	}

	var title, content, excerpt, tags string
	post := &cobra.Command{
		Use:   "post",
		Short: "Check post fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report(cmd.OutOrStdout(), validation.ValidatePost(title, content, excerpt, tags))
		},
	}
	post.Flags().StringVar(&title, "title", "", "post title")
	post.Flags().StringVar(&content, "content", "", "post body")
	post.Flags().StringVar(&excerpt, "excerpt", "", "post summary")
	post.Flags().StringVar(&tags, "tags", "", "comma separated tags")

	var text, author string
	comment := &cobra.Command{
		Use:   "comment",
		Short: "Check comment fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report(cmd.OutOrStdout(), validation.ValidateComment(text, author))
		},
	}
	comment.Flags().StringVar(&text, "text", "", "comment text")
	comment.Flags().StringVar(&author, "author", "", "comment author")

	image := &cobra.Command{
		Use:   "image <url>",
		Short: "Check an image URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(cmd.OutOrStdout(), validation.ValidateImageURL(args[0]))
		},
	}

	page := &cobra.Command{
		Use:   "page [value]",
		Short: "Parse and check a page parameter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := ""
			if len(args) == 1 {
				raw = args[0]
			}
			n, err := validation.PageFromQuery(raw, validation.DefaultPerPage)
			fmt.Fprintf(cmd.OutOrStdout(), "page %d\n", n)
			return report(cmd.OutOrStdout(), err)
		},
	}

	tagsCmd := &cobra.Command{
		Use:   "tags <tags>",
		Short: "Print the normalised form of a tag list",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), validation.SanitizeTags(args[0]))
		},
	}

	cmd.AddCommand(post, comment, image, page, tagsCmd)
	return cmd
}
