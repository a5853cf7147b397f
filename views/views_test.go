package views

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/studyblog"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func testPage() studyblog.Page {
	return studyblog.Page{
		Site: studyblog.SiteConfig{Name: "Blogify", Description: "Notes"},
		Meta: studyblog.PageMeta{Title: "Blogs - Blogify", URL: "https://example.com/blogs/", OGType: "website"},
		Path: "/blogs/",
		CSRF: "tok",
	}
}

func TestLayoutEscapesMeta(t *testing.T) {
	page := testPage()
	page.Meta.Title = `<b>"x"</b>`
	out := render(t, Layout(page, templ.NopComponent))

	if strings.Contains(out, "<b>") {
		t.Errorf("title not escaped: %s", out)
	}
	if !strings.Contains(out, `<a class="active" href="/blogs/">Blogs</a>`) {
		t.Errorf("current nav link not marked active")
	}
}

func TestLayoutFlash(t *testing.T) {
	page := testPage()
	page.Flash = &studyblog.Flash{Title: "Draft Saved", Description: "Later"}
	out := render(t, Layout(page, templ.NopComponent))
	if !strings.Contains(out, `<div class="toast" role="status"><strong>Draft Saved</strong>`) {
		t.Errorf("missing toast: %s", out)
	}

	page.Flash.Destructive = true
	if out := render(t, Layout(page, templ.NopComponent)); !strings.Contains(out, `class="toast destructive"`) {
		t.Errorf("destructive toast not styled")
	}
}

func TestPostCardTagPreview(t *testing.T) {
	post := studyblog.Post{
		ID:       "5",
		Title:    "Web <Dev>",
		Date:     time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		Tags:     []string{"Web Development", "HTML", "CSS", "JavaScript", "Frontend"},
		ReadTime: 18,
	}
	out := render(t, PostCard(post))

	for _, want := range []string{
		"Web &lt;Dev&gt;",
		"February 5, 2024",
		"18 min read",
		`href="/blogs/?tag=Web+Development"`,
		"+2 more",
		`href="/blog/5/"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("card missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "JavaScript") {
		t.Errorf("card should show only the first three tags")
	}
}

func TestFeedResultsEmpty(t *testing.T) {
	out := render(t, FeedResults(testPage(), studyblog.FeedData{
		Filter:      studyblog.FilterState{Query: "dtbase"},
		Caption:     `Showing 0 blogs for "dtbase"`,
		Suggestions: []string{"Database"},
	}))
	for _, want := range []string{"No blogs found", "Clear Filters", `href="/blogs/?tag=Database"`, "&#34;dtbase&#34;"} {
		if !strings.Contains(out, want) {
			t.Errorf("empty state missing %q:\n%s", want, out)
		}
	}
}

func TestFormsCarryCSRF(t *testing.T) {
	page := testPage()
	for name, c := range map[string]templ.Component{
		"login":  Login(page),
		"signup": Signup(page, []string{"Physics"}),
		"write":  Write(page, studyblog.WriteForm{}),
	} {
		if out := render(t, c); !strings.Contains(out, `<input type="hidden" name="_csrf" value="tok">`) {
			t.Errorf("%s form has no CSRF field", name)
		}
	}
}

func TestPreviewEmpty(t *testing.T) {
	if out := render(t, Preview(nil)); !strings.Contains(out, "Nothing to preview yet.") {
		t.Errorf("unexpected empty preview: %s", out)
	}
}

func TestFuncsComplete(t *testing.T) {
	f := Funcs()
	if f.Landing == nil || f.Feed == nil || f.FeedResults == nil || f.Post == nil ||
		f.Login == nil || f.Signup == nil || f.Write == nil || f.Preview == nil ||
		f.NotFound == nil || f.ServerError == nil {
		t.Fatal("Funcs left a view unset")
	}
}
