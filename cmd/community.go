package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/winter3671/TakeMeTrip/internal/domain"
)

func newCommunityCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "community",
		Short: "Browse and write community articles",
	}

	cmd.AddCommand(
		newCommunityListCmd(app),
		newCommunityShowCmd(app),
		newCommunityCreateCmd(app),
		newCommunityLikeCmd(app),
		newCommunityCommentCmd(app),
		newCommunityDeleteCmd(app),
		newCommunityDeleteCommentCmd(app),
	)

	return cmd
}

func newCommunityListCmd(app *app) *cobra.Command {
	var search string
	var condition string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List articles, optionally filtered",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := domain.ParseSearchCondition(condition)
			if err != nil {
				return err
			}

			articles, err := app.community.ListArticles(cmd.Context(), domain.ArticleQuery{Search: search, Condition: parsed})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, articles)
			}

			out := cmd.OutOrStdout()
			if len(articles) == 0 {
				_, err := fmt.Fprintln(out, "No articles found")
				return err
			}
			for _, article := range articles {
				if _, err := fmt.Fprintf(out, "%-5d %s  by %s  (%d likes, %d comments, %d views)\n",
					article.ID, article.Title, article.Username, article.LikeCount, article.CommentCount, article.Hits); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Search text")
	cmd.Flags().StringVar(&condition, "condition", string(domain.SearchTitleContent), "Search field (title|content|author|title_content)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newCommunityShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <article-id>",
		Short: "Show an article and its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseArticleID(args[0])
			if err != nil {
				return err
			}

			article, err := app.community.GetArticle(cmd.Context(), id)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, article)
			}

			return writeArticle(cmd, article)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newCommunityCreateCmd(app *app) *cobra.Command {
	var draft domain.ArticleDraft

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish an article",
		RunE: func(cmd *cobra.Command, _ []string) error {
			article, err := app.community.CreateArticle(cmd.Context(), draft)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Published article %d\n", article.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&draft.Title, "title", "", "Article title")
	cmd.Flags().StringVar(&draft.Content, "content", "", "Article body")

	return cmd
}

func newCommunityLikeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "like <article-id>",
		Short: "Like an article, or remove your like",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseArticleID(args[0])
			if err != nil {
				return err
			}

			state, err := app.community.ToggleLike(cmd.Context(), id)
			if err != nil {
				return err
			}

			verb := "Unliked"
			if state.Liked {
				verb = "Liked"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s article %d (%d likes)\n", verb, id, state.Count)
			return err
		},
	}
}

func newCommunityCommentCmd(app *app) *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "comment <article-id>",
		Short: "Comment on an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseArticleID(args[0])
			if err != nil {
				return err
			}

			comment, err := app.community.AddComment(cmd.Context(), id, content)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added comment %d\n", comment.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Comment text")

	return cmd
}

func newCommunityDeleteCmd(app *app) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "delete <article-id>",
		Short: "Delete one of your articles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseArticleID(args[0])
			if err != nil {
				return err
			}

			pending, err := app.community.DeleteArticle(cmd.Context(), id)
			if err != nil {
				return err
			}

			return confirmAndRun(cmd, app, pending, assumeYes)
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newCommunityDeleteCommentCmd(app *app) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "delete-comment <article-id> <comment-id>",
		Short: "Delete one of your comments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseArticleID(args[0])
			if err != nil {
				return err
			}
			commentID, err := parseID("comment", args[1])
			if err != nil {
				return err
			}

			pending, err := app.community.DeleteComment(cmd.Context(), id, domain.CommentID(commentID))
			if err != nil {
				return err
			}

			return confirmAndRun(cmd, app, pending, assumeYes)
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func confirmAndRun(cmd *cobra.Command, app *app, pending domain.PendingConfirmation, assumeYes bool) error {
	ok, err := confirmed(app.prompter, pending.Prompt, assumeYes)
	if err != nil {
		return err
	}
	if !ok {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
		return err
	}

	return pending.Confirm(cmd.Context())
}

func writeArticle(cmd *cobra.Command, article domain.Article) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", article.Title)
	fmt.Fprintf(&b, "by %s  |  %d likes  |  %d views\n\n", article.Username, article.LikeCount, article.Hits)
	fmt.Fprintf(&b, "%s\n", article.Content)

	if len(article.Comments) > 0 {
		fmt.Fprintf(&b, "\nComments (%d)\n", len(article.Comments))
		for _, comment := range article.Comments {
			fmt.Fprintf(&b, "  [%d] %s: %s\n", comment.ID, comment.Username, comment.Content)
		}
	}

	_, err := fmt.Fprint(cmd.OutOrStdout(), b.String())
	return err
}

func parseArticleID(raw string) (domain.ArticleID, error) {
	id, err := parseID("article", raw)
	return domain.ArticleID(id), err
}

func parseID(kind, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s id %q is not a positive number", domain.ErrInvalidInput, kind, raw)
	}

	return id, nil
}
