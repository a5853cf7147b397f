package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/eringen/studyblog"
)

// NotFound is rendered for unknown pages.
func NotFound(page studyblog.Page) templ.Component {
	return Layout(page, component(func(ctx context.Context, w *writer) {
		w.raw(`<section class="hero container"><h1>404</h1>`)
		w.raw(`<p class="muted">Oops! The page you're looking for doesn't exist.</p>`)
		w.raw(`<p><a class="btn" href="/">Return to Home</a> <a class="btn outline" href="/blogs/">Browse Blogs</a></p></section>`)
	}))
}

// ServerError is rendered when a handler fails.
func ServerError(page studyblog.Page) templ.Component {
	return Layout(page, component(func(ctx context.Context, w *writer) {
		w.raw(`<section class="hero container"><h1>Something went wrong</h1>`)
		w.raw(`<p class="muted">We could not render this page. Please try again in a moment.</p>`)
		w.raw(`<p><a class="btn" href="/">Return to Home</a></p></section>`)
	}))
}
