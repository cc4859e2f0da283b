package cmd

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"text/tabwriter"

	"quillpad/app/forms"
	"quillpad/app/models"

	"github.com/spf13/cobra"
)

type postFlags struct {
	title       string
	content     string
	contentFile string
	excerpt     string
	tags        string
	imageURL    string
	imageOption string
	date        string
}

func (f *postFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "post title")
	cmd.Flags().StringVar(&f.content, "content", "", "post body")
	cmd.Flags().StringVar(&f.contentFile, "content-file", "", "read the post body from a file")
	cmd.Flags().StringVar(&f.excerpt, "excerpt", "", "short summary shown in listings")
	cmd.Flags().StringVar(&f.tags, "tags", "", "comma separated tags")
	cmd.Flags().StringVar(&f.imageURL, "image-url", "", "http(s) URL of the post image")
	cmd.Flags().StringVar(&f.date, "date", "", "publication date (YYYY-MM-DD)")
}

// values renders the flags as the fields of a submitted post form.
func (f *postFlags) values(content string) url.Values {
	return url.Values{
		forms.FieldTitle:       {f.title},
		forms.FieldContent:     {content},
		forms.FieldExcerpt:     {f.excerpt},
		forms.FieldTags:        {f.tags},
		forms.FieldImageURL:    {f.imageURL},
		forms.FieldImageOption: {f.imageOption},
		forms.FieldDate:        {f.date},
	}
}

func (f *postFlags) body() (string, error) {
	if f.contentFile == "" {
		return f.content, nil
	}
	data, err := os.ReadFile(f.contentFile)
	if err != nil {
		return "", fmt.Errorf("read content file: %w", err)
	}
	return string(data), nil
}

func newPostCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Create, edit, show, list and delete posts",
	}
	cmd.AddCommand(
		newPostCreateCmd(a),
		newPostUpdateCmd(a),
		newPostShowCmd(a),
		newPostListCmd(a),
		newPostDeleteCmd(a),
	)
	return cmd
}

func newPostCreateCmd(a *app) *cobra.Command {
	var f postFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			content, err := f.body()
			if err != nil {
				return err
			}
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			post, err := a.posts.CreatePost(cmd.Context(), forms.PostInputFromValues(f.values(content)))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created post %d\n", post.ID)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newPostUpdateCmd(a *app) *cobra.Command {
	var f postFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a post; fields not given keep their stored value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			current, err := a.posts.GetPost(cmd.Context(), id)
			if err != nil {
				return err
			}

			content := current.Content
			if cmd.Flags().Changed("content") || cmd.Flags().Changed("content-file") {
				if content, err = f.body(); err != nil {
					return err
				}
			}
			values := f.values(content)
			// These flags share their form field names.
			stored := map[string]string{
				forms.FieldTitle:   current.Title,
				forms.FieldExcerpt: current.Excerpt,
				forms.FieldTags:    current.Tags,
			}
			for field, value := range stored {
				if !cmd.Flags().Changed(field) {
					values.Set(field, value)
				}
			}

			post, err := a.posts.UpdatePost(cmd.Context(), id, forms.PostInputFromValues(values))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated post %d\n", post.ID)
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&f.imageOption, "image-option", "", "keep, url or remove (default: url when --image-url is set, else keep)")
	return cmd
}

func newPostShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a post with its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			post, err := a.posts.GetPost(cmd.Context(), id)
			if err != nil {
				return err
			}
			printPost(cmd.OutOrStdout(), post)
			return nil
		},
	}
}

func printPost(w io.Writer, post *models.Post) {
	fmt.Fprintf(w, "#%d %s\n", post.ID, post.Title)
	fmt.Fprintf(w, "Date: %s\n", post.Date)
	if tags := post.TagList(); len(tags) > 0 {
		fmt.Fprintf(w, "Tags: %s\n", strings.Join(tags, ", "))
	}
	if post.ImageURL != "" {
		fmt.Fprintf(w, "Image: %s\n", post.ImageURL)
	}
	fmt.Fprintf(w, "\n%s\n\n%s\n", post.Excerpt, post.Content)

	fmt.Fprintf(w, "\nComments (%d):\n", len(post.Comments))
	for _, c := range post.Comments {
		fmt.Fprintf(w, "  [%d] %s on %s: %s\n", c.ID, c.DisplayAuthor(), c.Date, c.Text)
	}
}

func newPostListCmd(a *app) *cobra.Command {
	var (
		page    string
		sort    string
		tag     string
		perPage int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts one page at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			if perPage < 1 {
				perPage = a.cfg.PerPage
			}
			lq := forms.ListQueryFromValues(url.Values{
				forms.FieldPage: {page},
				forms.FieldSort: {sort},
				forms.FieldTag:  {tag},
			}, perPage)

			result, err := a.posts.ListPosts(cmd.Context(), lq.Query)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if lq.Notice != "" {
				fmt.Fprintf(out, "notice: %s\n", lq.Notice)
			}
			fmt.Fprintf(out, "Page %d of %d (%d posts, %s)\n", result.Page, result.TotalPages, result.TotalPosts, result.Sort)
			printPostTable(out, result.Posts)
			return nil
		},
	}
	cmd.Flags().StringVar(&page, "page", "", "page number")
	cmd.Flags().StringVar(&sort, "sort", "", "date_desc, date_asc, title_asc or title_desc")
	cmd.Flags().StringVar(&tag, "tag", "", "only posts with this tag")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "posts per page (default blog.per_page)")
	return cmd
}

func printPostTable(out io.Writer, posts []*models.Post) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTITLE\tTAGS")
	for _, p := range posts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Date, p.Title, p.Tags)
	}
	w.Flush()
}

func newPostDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a post and its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			if err := a.posts.DeletePost(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted post %d\n", id)
			return nil
		},
	}
}
