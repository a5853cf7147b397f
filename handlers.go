package studyblog

import (
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	latestPostCount  = 3
	relatedPostCount = 3
	suggestionCount  = 3
)

func (a *App) handleLanding(c echo.Context) error {
	return Render(c, a.Views.Landing(a.page(c, PageMeta{
		Title:  a.Config.Name + " - Turn your notes into structured learning blogs",
		JSONLD: WebsiteJSONLD(a.Config),
	}), LatestPosts(a.Store.All(), latestPostCount)))
}

func (a *App) handleFeed(c echo.Context) error {
	filter := FilterState{Query: c.QueryParam("q"), Tag: c.QueryParam("tag")}
	feed := a.computeFeed(filter)
	if isPartial(c, "feed") {
		return Render(c, a.Views.FeedResults(a.page(c, PageMeta{}), feed))
	}
	return Render(c, a.Views.Feed(a.page(c, PageMeta{
		Title:       "Student Learning Blogs - " + a.Config.Name,
		Description: "Discover study notes and learning materials shared by students from various subjects and courses.",
	}), feed))
}

// computeFeed recomputes the displayed posts and tag list from scratch for f.
func (a *App) computeFeed(f FilterState) FeedData {
	all := a.Store.All()
	tags := DistinctTags(all)
	posts := ComputeFeed(all, f.Query, f.Tag)
	a.Metrics.observeFeed(f)

	feed := FeedData{
		Filter:  f,
		Posts:   posts,
		Tags:    tags,
		Caption: FeedCaption(len(posts), f),
	}
	if len(posts) == 0 {
		feed.Suggestions = SuggestTags(f.Query, tags, suggestionCount)
	}
	return feed
}

func (a *App) handlePost(c echo.Context) error {
	id := c.Param("id")
	post, ok := a.Store.GetByID(id)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/blogs/")
	}
	data := PostData{
		Post:    post,
		Blocks:  a.Blocks.ForPost(post),
		Related: RelatedPosts(post, a.Store.All(), relatedPostCount),
	}
	return Render(c, a.Views.Post(a.page(c, PageMeta{
		Title:       post.Title + " - " + a.Config.Name,
		Description: post.Summary,
		URL:         BuildURL(a.Config.URL, "blog", post.ID),
		OGType:      "article",
		JSONLD:      BlogPostingJSONLD(post, a.Config),
	}), data))
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Store.All())
}

func (a *App) handleFeedXML(c echo.Context) error {
	return a.renderRSS(c, LatestPosts(a.Store.All(), 0))
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/blogs/")
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nDisallow: /write/\nDisallow: /api/\nSitemap: " + strings.TrimRight(a.Config.URL, "/") + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// LatestPosts returns up to n posts ordered by date, newest first. Posts with the
// same date keep their collection order. n <= 0 returns all posts.
func LatestPosts(posts []Post, n int) []Post {
	sorted := slices.Clone(posts)
	slices.SortStableFunc(sorted, func(x, y Post) int {
		return y.Date.Compare(x.Date)
	})
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound && !strings.HasPrefix(c.Request().URL.Path, "/api/") {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.page(c, PageMeta{Title: "Page not found"})))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.WithError(err).WithField("uri", c.Request().RequestURI).Error("server error")
		if strings.HasPrefix(c.Request().URL.Path, "/api/") {
			_ = c.JSON(code, apiError{Error: http.StatusText(code)})
			return
		}
		_ = RenderStatus(c, code, a.Views.ServerError(a.page(c, PageMeta{Title: "Something went wrong"})))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
