package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/eringen/studyblog"
	"github.com/eringen/studyblog/markdown"
)

var (
	idStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func newPostsCmd(e *env) *cobra.Command {
	var query, tag, tagLike string
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List posts, optionally filtered",
		Long: `List posts in collection order.

--query matches title, summary and tags ignoring case.
--tag keeps posts carrying exactly that tag.
--tag-like keeps posts with any tag containing the value, ignoring case.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			posts := studyblog.ComputeFeed(e.store.All(), query, tag)
			if tagLike != "" {
				posts = intersect(posts, e.store.FilterByTag(tagLike))
			}
			out := cmd.OutOrStdout()
			for _, p := range posts {
				printPostLine(out, p)
			}
			fmt.Fprintln(out, mutedStyle.Render(studyblog.FeedCaption(len(posts), studyblog.FilterState{Query: query, Tag: tag})))
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "free-text search")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "exact tag filter")
	cmd.Flags().StringVar(&tagLike, "tag-like", "", "case-insensitive tag substring filter")
	return cmd
}

func newShowCmd(e *env) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Render a post in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			post, ok := e.store.GetByID(args[0])
			if !ok {
				return fmt.Errorf("post %q not found", args[0])
			}
			theme := markdown.DefaultTheme()
			if plain {
				theme = markdown.PlainTheme()
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, theme.H1.Render(post.Title))
			fmt.Fprintf(out, "%s · %s · %d min read\n", post.Author, studyblog.FormatDate(post.Date), post.ReadTime)
			fmt.Fprintf(out, "Tags: %s\n\n", strings.Join(post.Tags, ", "))
			return markdown.RenderTerminal(out, markdown.Render(post.Content), theme)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors and styling")
	return cmd
}

func newTagsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List every distinct tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range studyblog.DistinctTags(e.store.All()) {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}
}

func printPostLine(w io.Writer, p studyblog.Post) {
	fmt.Fprintf(w, "%s  %s  %s %s\n",
		idStyle.Render(p.ID),
		p.Date.Format("2006-01-02"),
		p.Title,
		mutedStyle.Render("["+strings.Join(p.Tags, ", ")+"]"),
	)
}

// intersect keeps the posts of a whose ID also appears in b, in a's order.
func intersect(a, b []studyblog.Post) []studyblog.Post {
	ids := make(map[string]struct{}, len(b))
	for _, p := range b {
		ids[p.ID] = struct{}{}
	}
	var out []studyblog.Post
	for _, p := range a {
		if _, ok := ids[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}
