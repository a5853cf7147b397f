package views

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/studyblog"
)

type feature struct {
	Title       string
	Description string
}

var features = []feature{
	{"Smart Note Taking", "Transform your class notes into well-structured, professional blog posts with our intuitive editor."},
	{"Learn by Teaching", "Reinforce your understanding by explaining concepts in your own words through blog-style articles."},
	{"Peer Learning", "Share your knowledge with fellow students and learn from their perspectives and study methods."},
	{"Quick Publishing", "Publish your study materials instantly with markdown support and beautiful formatting."},
}

var steps = []feature{
	{"Take Notes", "Use our markdown editor to write your class notes, study summaries, or concept explanations."},
	{"Structure Content", "Organize your notes with headings, code blocks, lists, and other formatting options."},
	{"Publish & Share", "Publish your blog-style study material and share it with your peers for collaborative learning."},
}

type testimonial struct {
	Name    string
	Subject string
	Content string
	Rating  int
}

var testimonials = []testimonial{
	{"Alex Chen", "Computer Science", "Blogify helped me organize my programming notes and share them with my study group. It's amazing!", 5},
	{"Sarah Johnson", "Mathematics", "I love how I can turn my complex math concepts into clear, readable explanations. Great for revision!", 5},
	{"Mike Wilson", "Physics", "The platform makes it so easy to structure my lab notes and formulas. Highly recommend for STEM students.", 5},
}

// Landing is the home page: hero, features, how it works, latest posts and
// testimonials.
func Landing(page studyblog.Page, latest []studyblog.Post) templ.Component {
	name := page.Site.Name
	body := component(func(ctx context.Context, w *writer) {
		w.raw(`<section class="hero container">`)
		w.raw(`<p class="tag active">Perfect for Students</p>`)
		w.raw(`<h1>Turn your notes into structured learning blogs</h1>`)
		w.rawf(`<p class="muted">%s helps students transform their class notes and study materials into clean, readable blog-style articles. Perfect for revision, peer learning, and knowledge sharing.</p>`, esc(name))
		w.raw(`<p><a class="btn" href="/write/">Start Writing Now</a> <a class="btn outline" href="/blogs/">Explore Sample Blogs</a></p>`)
		w.raw(`</section>`)

		w.raw(`<section class="container">`)
		w.rawf(`<h2>Why Students Love %s</h2>`, esc(name))
		w.raw(`<p class="muted">Designed specifically for academic needs with features that make studying and sharing knowledge effortless.</p>`)
		w.raw(`<div class="grid">`)
		for _, f := range features {
			w.rawf(`<div class="card"><h3>%s</h3><p class="muted">%s</p></div>`, esc(f.Title), esc(f.Description))
		}
		w.raw(`</div></section>`)

		w.raw(`<section class="container"><h2>How It Works</h2>`)
		w.raw(`<p class="muted">Three simple steps to transform your notes into beautiful blogs</p><div class="grid">`)
		for i, s := range steps {
			w.rawf(`<div class="card"><p class="tag active">%d</p><h3>%s</h3><p class="muted">%s</p></div>`, i+1, esc(s.Title), esc(s.Description))
		}
		w.raw(`</div></section>`)

		if len(latest) > 0 {
			w.raw(`<section class="container"><h2>Latest Study Blogs</h2><div class="grid">`)
			for _, p := range latest {
				w.component(ctx, PostCard(p))
			}
			w.raw(`</div><p><a class="btn outline" href="/blogs/">View all blogs</a></p></section>`)
		}

		w.raw(`<section class="container"><h2>What Students Say</h2>`)
		w.rawf(`<p class="muted">Real feedback from students using %s for their studies</p><div class="grid">`, esc(name))
		for _, t := range testimonials {
			w.rawf(`<div class="card"><p aria-label="%d stars">%s</p>`, t.Rating, strings.Repeat("★", t.Rating))
			w.rawf(`<p class="muted">"%s"</p>`, esc(t.Content))
			w.rawf(`<p><strong>%s</strong><br><span class="muted">%s Student</span></p></div>`, esc(t.Name), esc(t.Subject))
		}
		w.raw(`</div></section>`)

		w.raw(`<section class="hero container"><h2>Ready to Transform Your Study Experience?</h2>`)
		w.rawf(`<p class="muted">Join thousands of students who are already using %s to enhance their learning journey.</p>`, esc(name))
		w.raw(`<p><a class="btn" href="/signup/">Get Started Free</a> <a class="btn outline" href="/blogs/">View Examples</a></p></section>`)
	})
	return Layout(page, body)
}
