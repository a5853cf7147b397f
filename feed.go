package studyblog

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// ComputeFeed returns the posts that match both the query and the selected tag, in
// their original order. An empty query matches every post. An empty tag means no tag
// is selected; otherwise the tag must equal one of the post's tags exactly.
func ComputeFeed(posts []Post, query, tag string) []Post {
	q := strings.ToLower(query)
	var out []Post
	for _, p := range posts {
		matchesSearch := query == "" || matchesQuery(p, q)
		matchesTag := tag == "" || slices.Contains(p.Tags, tag)
		if matchesSearch && matchesTag {
			out = append(out, p)
		}
	}
	return out
}

// DistinctTags returns every tag used by posts, deduplicated and sorted ascending.
func DistinctTags(posts []Post) []string {
	set := make(map[string]struct{})
	for _, p := range posts {
		for _, t := range p.Tags {
			set[t] = struct{}{}
		}
	}
	result := make([]string, 0, len(set))
	for t := range set {
		result = append(result, t)
	}
	sort.Strings(result)
	return result
}

// SuggestTags returns up to n tags that fuzzily match query, best match first.
// It is used to offer alternatives when a feed comes back empty.
func SuggestTags(query string, tags []string, n int) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	matches := fuzzy.Find(query, tags)
	if len(matches) == 0 {
		return nil
	}
	limit := n
	if n <= 0 || len(matches) < limit {
		limit = len(matches)
	}
	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = matches[i].Str
	}
	return out
}

// RelatedPosts returns up to n posts other than current that share at least one tag
// with it, in their original order.
func RelatedPosts(current Post, posts []Post, n int) []Post {
	var related []Post
	for _, p := range posts {
		if p.ID == current.ID {
			continue
		}
		for _, t := range p.Tags {
			if slices.Contains(current.Tags, t) {
				related = append(related, p)
				break
			}
		}
		if n > 0 && len(related) == n {
			break
		}
	}
	return related
}

// FeedCaption describes the result count and the active filters,
// e.g. `Showing 1 blog for "python" in Programming`.
func FeedCaption(count int, f FilterState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Showing %d blog", count)
	if count != 1 {
		b.WriteString("s")
	}
	if f.Query != "" {
		b.WriteString(` for "` + f.Query + `"`)
	}
	if f.Tag != "" {
		b.WriteString(" in " + f.Tag)
	}
	return b.String()
}
