package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/eringen/studyblog"
	"github.com/eringen/studyblog/markdown"
)

// Post is the detail page of a single post.
func Post(page studyblog.Page, data studyblog.PostData) templ.Component {
	p := data.Post
	body := component(func(ctx context.Context, w *writer) {
		w.raw(`<article class="container article">`)
		w.raw(`<p><a href="/blogs/">← Back to Blogs</a></p>`)
		w.rawf(`<h1>%s</h1>`, esc(p.Title))
		w.rawf(`<div class="meta"><span>%s</span><time datetime="%s">%s</time><span>%d min read</span></div>`,
			esc(p.Author), p.Date.Format("2006-01-02"), esc(studyblog.FormatDate(p.Date)), p.ReadTime)
		w.raw(`<div>`)
		for _, t := range p.Tags {
			w.rawf(`<a class="tag" href="%s">%s</a>`, esc(studyblog.FeedURL(studyblog.FilterState{Tag: t})), esc(t))
		}
		w.raw(`</div>`)
		w.rawf(`<p class="card muted">%s</p>`, esc(p.Summary))
		w.component(ctx, markdown.Blocks(data.Blocks))
		w.raw(`</article>`)

		if len(data.Related) > 0 {
			w.raw(`<section class="container"><h2>Related Study Materials</h2><div class="grid">`)
			for _, r := range data.Related {
				w.raw(`<div class="card">`)
				w.rawf(`<h3><a href="%s">%s</a></h3>`, esc(r.Link()), esc(r.Title))
				w.rawf(`<p class="muted">%s</p>`, esc(r.Summary))
				w.rawf(`<div class="meta"><span>%s</span><span>%d min read</span></div>`, esc(r.Author), r.ReadTime)
				w.raw(`</div>`)
			}
			w.raw(`</div></section>`)
		}

		w.raw(`<section class="container card hero"><h3>Inspired to Share Your Knowledge?</h3>`)
		w.raw(`<p class="muted">Create your own study blog and help fellow students learn from your experiences.</p>`)
		w.raw(`<a class="btn" href="/write/">Start Writing</a></section>`)
	})
	return Layout(page, body)
}

// Preview renders content blocks without the page shell. The write page swaps it
// into its preview pane.
func Preview(blocks []markdown.Block) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw(`<div class="article">`)
		if len(blocks) == 0 {
			w.raw(`<p class="muted">Nothing to preview yet.</p>`)
		} else {
			w.component(ctx, markdown.Blocks(blocks))
		}
		w.raw(`</div>`)
	})
}
