package studyblog

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/studyblog/markdown"
)

type apiError struct {
	Error string `json:"error"`
}

type postsResponse struct {
	Posts   []Post `json:"posts"`
	Count   int    `json:"count"`
	Caption string `json:"caption,omitempty"`
}

type postResponse struct {
	Post    Post             `json:"post"`
	Blocks  []markdown.Block `json:"blocks"`
	Related []Post           `json:"related"`
}

type renderRequest struct {
	Content string `json:"content"`
}

type renderResponse struct {
	Blocks []markdown.Block `json:"blocks"`
}

// GET /api/posts?q=&tag= returns the feed for the given filter without post bodies.
func (a *App) handleAPIPosts(c echo.Context) error {
	f := FilterState{Query: c.QueryParam("q"), Tag: c.QueryParam("tag")}
	feed := a.computeFeed(f)
	return c.JSON(http.StatusOK, postsResponse{
		Posts:   summaries(feed.Posts),
		Count:   len(feed.Posts),
		Caption: feed.Caption,
	})
}

// GET /api/posts/:id returns one post with its rendered blocks.
func (a *App) handleAPIPost(c echo.Context) error {
	id := c.Param("id")
	post, ok := a.Store.GetByID(id)
	if !ok {
		return c.JSON(http.StatusNotFound, apiError{Error: "post not found"})
	}
	return c.JSON(http.StatusOK, postResponse{
		Post:    post,
		Blocks:  a.Blocks.ForPost(post),
		Related: summaries(RelatedPosts(post, a.Store.All(), relatedPostCount)),
	})
}

// GET /api/tags returns every distinct tag, sorted.
func (a *App) handleAPITags(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"tags": DistinctTags(a.Store.All())})
}

// GET /api/tags/:tag/posts returns posts with a tag containing :tag, ignoring case.
func (a *App) handleAPITagPosts(c echo.Context) error {
	posts := a.Store.FilterByTag(c.Param("tag"))
	return c.JSON(http.StatusOK, postsResponse{Posts: summaries(posts), Count: len(posts)})
}

// POST /api/render renders arbitrary content to blocks. Nothing is stored.
func (a *App) handleAPIRender(c echo.Context) error {
	var req renderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apiError{Error: "invalid request body"})
	}
	a.Metrics.observeRender()
	return c.JSON(http.StatusOK, renderResponse{Blocks: markdown.Render(req.Content)})
}

// summaries drops post bodies for list responses.
func summaries(posts []Post) []Post {
	out := make([]Post, len(posts))
	for i, p := range posts {
		p.Content = ""
		out[i] = p
	}
	return out
}
