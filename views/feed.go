package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/eringen/studyblog"
)

const cardTagLimit = 3

// Feed is the searchable, tag-filtered blog listing.
func Feed(page studyblog.Page, feed studyblog.FeedData) templ.Component {
	body := component(func(ctx context.Context, w *writer) {
		f := feed.Filter
		w.raw(`<section class="container">`)
		w.raw(`<div class="hero"><h1>Student Learning Blogs</h1>`)
		w.raw(`<p class="muted">Discover study notes and learning materials shared by students from various subjects and courses.</p>`)
		w.raw(`<form method="get" action="/blogs/" role="search">`)
		w.rawf(`<input class="search" type="text" name="q" value="%s" placeholder="Search blogs by title, content, or tags..." data-feed-search>`, esc(f.Query))
		if f.Tag != "" {
			w.rawf(`<input type="hidden" name="tag" value="%s">`, esc(f.Tag))
		}
		w.raw(`</form></div>`)

		w.raw(`<h3>Filter by Subject:</h3><div>`)
		w.rawf(`<a class="%s" href="%s">All Topics</a>`, TagClass(f.Tag == ""), esc(studyblog.FeedURL(studyblog.FilterState{Query: f.Query})))
		for _, t := range feed.Tags {
			w.rawf(`<a class="%s" href="%s">%s</a>`, TagClass(f.Tag == t),
				esc(studyblog.FeedURL(studyblog.FilterState{Query: f.Query, Tag: t})), esc(t))
		}
		w.raw(`</div>`)

		w.raw(`<div id="feed-results">`)
		w.component(ctx, FeedResults(page, feed))
		w.raw(`</div>`)

		w.raw(`<div class="card hero"><h3>Ready to Share Your Knowledge?</h3>`)
		w.raw(`<p class="muted">Transform your study notes into helpful blog posts that can benefit other students.</p>`)
		w.raw(`<a class="btn" href="/write/">Start Writing Your Blog</a></div>`)
		w.raw(`</section>`)
	})
	return Layout(page, body)
}

// FeedResults is the part of the feed that changes with the filter: the result
// caption, the post cards and the empty state. Live search swaps it in place.
func FeedResults(page studyblog.Page, feed studyblog.FeedData) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.rawf(`<p class="muted" id="feed-caption">%s</p>`, esc(feed.Caption))
		if len(feed.Posts) == 0 {
			w.raw(`<div class="hero"><div aria-hidden="true">📚</div><h3>No blogs found</h3>`)
			w.raw(`<p class="muted">Try adjusting your search terms or clearing the filters.</p>`)
			if len(feed.Suggestions) > 0 {
				w.raw(`<p class="muted">Browse a related topic: `)
				for _, t := range feed.Suggestions {
					w.rawf(`<a class="tag" href="%s">%s</a>`, esc(studyblog.FeedURL(studyblog.FilterState{Tag: t})), esc(t))
				}
				w.raw(`</p>`)
			}
			w.raw(`<a class="btn outline" href="/blogs/">Clear Filters</a></div>`)
			return
		}
		w.raw(`<div class="grid">`)
		for _, p := range feed.Posts {
			w.component(ctx, feedCard(p, feed.Filter))
		}
		w.raw(`</div>`)
	})
}

// PostCard is the compact post summary used on the landing page and in related posts.
func PostCard(p studyblog.Post) templ.Component {
	return feedCard(p, studyblog.FilterState{})
}

func feedCard(p studyblog.Post, f studyblog.FilterState) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw(`<article class="card">`)
		w.rawf(`<h3><a href="%s">%s</a></h3>`, esc(p.Link()), esc(p.Title))
		w.rawf(`<div class="meta"><span>%s</span><span>%s</span><span>%d min read</span></div>`,
			esc(p.Author), esc(studyblog.FormatDate(p.Date)), p.ReadTime)
		w.rawf(`<p class="muted">%s</p>`, esc(p.Summary))
		shown, more := studyblog.TagPreview(p.Tags, cardTagLimit)
		w.raw(`<div>`)
		for _, t := range shown {
			w.rawf(`<a class="tag" href="%s">%s</a>`,
				esc(studyblog.FeedURL(studyblog.FilterState{Query: f.Query, Tag: t})), esc(t))
		}
		if more > 0 {
			w.rawf(`<span class="tag">+%d more</span>`, more)
		}
		w.raw(`</div>`)
		w.rawf(`<a class="btn outline" href="%s">Read Full Article</a>`, esc(p.Link()))
		w.raw(`</article>`)
	})
}
