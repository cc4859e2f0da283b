package cmd

import (
	"fmt"
	"net/url"

	"quillpad/app/forms"

	"github.com/spf13/cobra"
)

type commentFlags struct {
	author string
	text   string
}

func (f *commentFlags) register(cmd *cobra.Command, authorUsage string) {
	cmd.Flags().StringVar(&f.author, "author", "", authorUsage)
	cmd.Flags().StringVar(&f.text, "text", "", "comment text")
}

// values renders the flags as the fields of a submitted comment form.
func (f *commentFlags) values() url.Values {
	return url.Values{
		forms.FieldAuthor:  {f.author},
		forms.FieldComment: {f.text},
	}
}

func newCommentCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Add, edit, show, list and delete comments",
	}
	cmd.AddCommand(
		newCommentAddCmd(a),
		newCommentEditCmd(a),
		newCommentShowCmd(a),
		newCommentListCmd(a),
		newCommentDeleteCmd(a),
	)
	return cmd
}

func newCommentAddCmd(a *app) *cobra.Command {
	var f commentFlags
	cmd := &cobra.Command{
		Use:   "add <post-id>",
		Short: "Comment on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			postID, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			comment, err := a.comments.AddComment(cmd.Context(), postID, forms.CommentInputFromValues(f.values()))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added comment %d by %s\n", comment.ID, comment.Author)
			return nil
		},
	}
	f.register(cmd, "name shown with the comment (default Anonymous)")
	return cmd
}

func newCommentEditCmd(a *app) *cobra.Command {
	var f commentFlags
	cmd := &cobra.Command{
		Use:   "edit <post-id> <comment-id>",
		Short: "Replace the text and author of a comment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			postID, err := parseID(args[0])
			if err != nil {
				return err
			}
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			if _, err := a.comments.UpdateComment(cmd.Context(), postID, id, forms.CommentInputFromValues(f.values())); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated comment %d\n", id)
			return nil
		},
	}
	f.register(cmd, "name shown with the comment")
	return cmd
}

func newCommentShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <comment-id>",
		Short: "Show one comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			c, err := a.comments.GetComment(cmd.Context(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Comment %d on post %d\n", c.ID, c.PostID)
			fmt.Fprintf(out, "By %s on %s\n\n%s\n", c.DisplayAuthor(), c.Date, c.Text)
			return nil
		},
	}
}

func newCommentListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <post-id>",
		Short: "List the comments on a post, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			postID, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			comments, err := a.comments.ListPostComments(cmd.Context(), postID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(comments) == 0 {
				fmt.Fprintln(out, "no comments")
				return nil
			}
			for _, c := range comments {
				fmt.Fprintf(out, "[%d] %s on %s: %s\n", c.ID, c.DisplayAuthor(), c.Date, c.Text)
			}
			return nil
		},
	}
}

func newCommentDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <comment-id>",
		Short: "Delete a comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			if err := a.comments.DeleteComment(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted comment %d\n", id)
			return nil
		},
	}
}
