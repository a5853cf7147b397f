package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/eringen/studyblog"
	"github.com/eringen/studyblog/markdown"
)

var popularTopics = []string{"Programming", "Mathematics", "Computer Science", "Physics", "Chemistry", "Biology"}

const contentPlaceholder = "Write your blog content here...\n\nYou can use markdown formatting:\n# Main Heading\n## Sub Heading\n### Section Heading\n\n**Bold text**\n`code snippets`\n\n- List item 1\n- List item 2"

// Login is the simulated sign in page.
func Login(page studyblog.Page) templ.Component {
	body := component(func(ctx context.Context, w *writer) {
		w.raw(`<section class="form card">`)
		w.raw(`<h1>Welcome back</h1><p class="muted">Sign in to your account to continue writing and sharing your knowledge</p>`)
		w.raw(`<form method="post" action="/login/">`)
		csrfField(w, page.CSRF)
		w.raw(`<label for="email">Email Address</label><input id="email" name="email" type="email" placeholder="Enter your email" required>`)
		w.raw(`<label for="password">Password</label><input id="password" name="password" type="password" placeholder="Enter your password" required>`)
		w.raw(`<p><label><input type="checkbox" name="remember_me"> Remember me</label></p>`)
		w.raw(`<button class="btn" type="submit">Sign In</button>`)
		w.raw(`</form>`)
		w.raw(`<div class="card"><p class="muted">Demo Credentials:</p><p><code>Email: student@example.com</code><br><code>Password: demo123</code></p></div>`)
		w.raw(`<p class="muted">Don't have an account? <a href="/signup/">Sign up for free</a></p>`)
		w.raw(`</section>`)
	})
	return Layout(page, body)
}

// Signup is the simulated account creation page.
func Signup(page studyblog.Page, fields []string) templ.Component {
	body := component(func(ctx context.Context, w *writer) {
		w.raw(`<section class="form card">`)
		w.raw(`<h1>Join the Community</h1><p class="muted">Create your account and start sharing your knowledge with fellow students</p>`)
		w.raw(`<form method="post" action="/signup/">`)
		csrfField(w, page.CSRF)
		w.raw(`<label for="first_name">First Name</label><input id="first_name" name="first_name" placeholder="John" required>`)
		w.raw(`<label for="last_name">Last Name</label><input id="last_name" name="last_name" placeholder="Doe" required>`)
		w.raw(`<label for="email">Email Address</label><input id="email" name="email" type="email" placeholder="john.doe@university.edu" required>`)
		w.raw(`<label for="study_field">Field of Study</label><select id="study_field" name="study_field">`)
		w.raw(`<option value="">Select your field of study</option>`)
		for _, f := range fields {
			w.rawf(`<option value="%s">%s</option>`, esc(f), esc(f))
		}
		w.raw(`</select>`)
		w.raw(`<label for="password">Password</label><input id="password" name="password" type="password" placeholder="Create a strong password" required>`)
		w.raw(`<label for="confirm_password">Confirm Password</label><input id="confirm_password" name="confirm_password" type="password" placeholder="Confirm your password" required>`)
		w.raw(`<p><label><input type="checkbox" name="terms" required> I agree to the Terms of Service and Privacy Policy</label></p>`)
		w.raw(`<button class="btn" type="submit">Create Account</button>`)
		w.raw(`</form>`)
		w.raw(`<div class="card"><p><strong>What you'll get:</strong></p><ul>`)
		for _, s := range []string{
			"Unlimited blog creation and publishing",
			"Markdown editor with live preview",
			"Connect with fellow students",
			"Organize notes by subject and topic",
		} {
			w.rawf(`<li>%s</li>`, s)
		}
		w.raw(`</ul></div>`)
		w.raw(`<p class="muted">Already have an account? <a href="/login/">Sign in here</a></p>`)
		w.raw(`</section>`)
	})
	return Layout(page, body)
}

// Write is the editor page. form carries back what the user typed when the page
// is re-rendered after a draft save or a failed publish.
func Write(page studyblog.Page, form studyblog.WriteForm) templ.Component {
	body := component(func(ctx context.Context, w *writer) {
		w.raw(`<section class="container">`)
		w.raw(`<h1>Write Your Study Blog</h1>`)
		w.raw(`<p class="muted">Transform your class notes and study materials into a well-structured blog post that can help other students learn.</p>`)
		w.raw(`<div class="grid"><form class="card" method="post" action="/write/publish/">`)
		csrfField(w, page.CSRF)
		w.raw(`<h2>Blog Details</h2>`)
		w.rawf(`<label for="title">Title *</label><input id="title" name="title" value="%s" placeholder="e.g., Data Structures and Algorithms Study Notes">`, esc(form.Title))
		w.rawf(`<label for="author">Author Name</label><input id="author" name="author" value="%s" placeholder="Your name">`, esc(form.Author))
		w.rawf(`<label for="summary">Summary</label><textarea id="summary" name="summary" rows="3" placeholder="Brief description of your blog content (appears in blog feed)">%s</textarea>`, esc(form.Summary))
		w.rawf(`<label for="tags">Tags</label><input id="tags" name="tags" value="%s" placeholder="e.g., Programming, Computer Science, Python (comma-separated)">`, esc(form.Tags))
		if tags := form.TagList(); len(tags) > 0 {
			w.raw(`<div>`)
			for _, t := range tags {
				w.rawf(`<span class="tag">%s</span>`, esc(t))
			}
			w.raw(`</div>`)
		}
		w.rawf(`<label for="content">Content *</label><textarea id="content" name="content" rows="20" placeholder="%s" data-preview-source>%s</textarea>`,
			esc(contentPlaceholder), esc(form.Content))
		w.raw(`<p><button class="btn" type="submit">Publish Blog</button> `)
		w.raw(`<button class="btn outline" type="submit" formaction="/write/draft/">Save as Draft</button> `)
		w.raw(`<button class="btn outline" type="submit" formaction="/write/preview/">Preview</button></p>`)
		w.raw(`</form>`)

		w.raw(`<aside><div class="card"><h3>Preview</h3><div id="write-preview">`)
		if form.Content == "" {
			w.raw(`<p class="muted">Start writing your content to see the preview...</p>`)
		} else {
			w.component(ctx, Preview(markdown.Render(form.Content)))
		}
		w.raw(`</div></div>`)
		writingTips(w)
		w.raw(`</aside></div></section>`)
	})
	return Layout(page, body)
}

func writingTips(w *writer) {
	w.raw(`<div class="card"><h3>Writing Tips</h3>`)
	for _, tip := range []feature{
		{"Structure Your Content", "Use headings to organize your notes into clear sections."},
		{"Add Examples", "Include code snippets and practical examples to illustrate concepts."},
		{"Use Tags Wisely", "Add relevant subject tags to help others find your content."},
		{"Keep It Clear", "Write as if you're explaining to a fellow student."},
	} {
		w.rawf(`<p><strong>%s</strong><br><span class="muted">%s</span></p>`, esc(tip.Title), esc(tip.Description))
	}
	w.raw(`</div>`)
	w.raw(`<div class="card"><h3>Markdown Guide</h3><ul>`)
	for _, g := range []string{"# Heading 1", "## Heading 2", "**Bold text**", "`code`", "- List item"} {
		w.rawf(`<li><code>%s</code></li>`, esc(g))
	}
	w.raw(`</ul></div>`)
	w.raw(`<div class="card"><h3>Popular Topics</h3>`)
	for _, t := range popularTopics {
		w.rawf(`<a class="tag" href="%s">%s</a>`, esc(studyblog.FeedURL(studyblog.FilterState{Tag: t})), esc(t))
	}
	w.raw(`</div>`)
}
