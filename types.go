package studyblog

import (
	"time"

	"github.com/eringen/studyblog/markdown"
)

// Post is a single study-note article. Posts are loaded once from the seed and never
// mutated afterwards.
type Post struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Summary  string    `json:"summary"`
	Content  string    `json:"content,omitempty"`
	Author   string    `json:"author"`
	Date     time.Time `json:"date"`
	Tags     []string  `json:"tags"`
	ReadTime int       `json:"read_time"`
}

// Link returns the site-relative URL of the post detail page.
func (p Post) Link() string {
	return "/blog/" + PathEscape(p.ID) + "/"
}

// FilterState is the free-text query and optional tag a reader applied to the feed.
type FilterState struct {
	Query string
	Tag   string
}

// Active reports whether any filter is applied.
func (f FilterState) Active() bool {
	return f.Query != "" || f.Tag != ""
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	JSONLD      string
}

// Flash is a one-shot notification shown as a toast on the next rendered page.
type Flash struct {
	Title       string
	Description string
	Destructive bool
}

// Page is the per-request data every view receives.
type Page struct {
	Site  SiteConfig
	Meta  PageMeta
	Path  string
	Flash *Flash
	CSRF  string
}

// FeedData is the view model of the blog feed.
type FeedData struct {
	Filter      FilterState
	Posts       []Post
	Tags        []string
	Suggestions []string
	Caption     string
}

// PostData is the view model of a post detail page.
type PostData struct {
	Post    Post
	Blocks  []markdown.Block
	Related []Post
}

// WriteForm holds the fields of the write page. Nothing in it is ever stored.
type WriteForm struct {
	Title   string
	Summary string
	Content string
	Tags    string
	Author  string
}

// TagList parses the comma separated tag field.
func (f WriteForm) TagList() []string {
	return ParseTags(f.Tags)
}
