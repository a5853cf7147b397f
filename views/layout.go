package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/eringen/studyblog"
)

// Layout wraps body in the document shell: head metadata, navigation, footer and
// the flash toast.
func Layout(page studyblog.Page, body templ.Component) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		w.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		head(w, page)
		w.raw(`<link rel="stylesheet" href="/public/studyblog.css">`)
		w.raw(`<script src="/public/studyblog.js" defer></script>`)
		w.raw(`</head><body>`)
		navbar(w, page)
		w.raw(`<main>`)
		w.component(ctx, body)
		w.raw(`</main>`)
		footer(w, page)
		toast(w, page.Flash)
		w.raw(`</body></html>`)
	})
}

func head(w *writer, page studyblog.Page) {
	m := page.Meta
	w.rawf(`<title>%s</title>`, esc(m.Title))
	w.rawf(`<meta name="description" content="%s">`, esc(m.Description))
	w.rawf(`<link rel="canonical" href="%s">`, esc(m.URL))
	w.rawf(`<meta property="og:title" content="%s">`, esc(m.Title))
	w.rawf(`<meta property="og:description" content="%s">`, esc(m.Description))
	w.rawf(`<meta property="og:url" content="%s">`, esc(m.URL))
	w.rawf(`<meta property="og:type" content="%s">`, esc(m.OGType))
	w.rawf(`<meta property="og:site_name" content="%s">`, esc(page.Site.Name))
	w.rawf(`<link rel="alternate" type="application/rss+xml" title="%s" href="/feed.xml">`, esc(page.Site.Name))
	if m.JSONLD != "" {
		// encoding/json escapes <, > and & so the payload cannot close the script tag.
		w.rawf(`<script type="application/ld+json">%s</script>`, m.JSONLD)
	}
}

func navbar(w *writer, page studyblog.Page) {
	w.raw(`<header class="site-header"><div class="container nav">`)
	w.rawf(`<a class="brand" href="/">%s</a>`, esc(page.Site.Name))
	w.raw(`<nav class="links">`)
	for _, l := range []struct{ href, label string }{
		{"/", "Home"},
		{"/blogs/", "Blogs"},
		{"/write/", "Write"},
	} {
		w.rawf(`<a class="%s" href="%s">%s</a>`, navClass(page.Path, l.href), l.href, l.label)
	}
	w.raw(`<a href="/login/">Sign In</a>`)
	w.raw(`<a class="btn" href="/signup/">Start Writing</a>`)
	w.raw(`</nav></div></header>`)
}

func footer(w *writer, page studyblog.Page) {
	w.raw(`<footer class="footer"><div class="container">`)
	w.rawf(`<p><strong>%s</strong> %s</p>`, esc(page.Site.Name), esc(page.Site.Description))
	w.raw(`<p><a href="/blogs/">Blogs</a> · <a href="/write/">Write</a> · <a href="/feed.xml">RSS</a></p>`)
	w.raw(`</div></footer>`)
}

func toast(w *writer, f *studyblog.Flash) {
	if f == nil {
		return
	}
	class := "toast"
	if f.Destructive {
		class += " destructive"
	}
	w.rawf(`<div class="%s" role="status"><strong>%s</strong><span>%s</span></div>`,
		class, esc(f.Title), esc(f.Description))
}
