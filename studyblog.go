// Package studyblog serves a static-data study blog built with Go, Echo, and templ.
// It provides a landing page, a searchable and tag-filtered feed, post pages rendered
// from a small markdown subset, and simulated login, signup and write forms.
//
// Posts come from an immutable in-memory Store. Users provide templ templates via
// the ViewFuncs struct, and studyblog handles routing, middleware and filtering.
package studyblog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/eringen/studyblog/markdown"
)

// ViewFuncs holds the templ components the app calls when rendering pages.
type ViewFuncs struct {
	Landing     func(page Page, latest []Post) templ.Component
	Feed        func(page Page, feed FeedData) templ.Component
	FeedResults func(page Page, feed FeedData) templ.Component
	Post        func(page Page, data PostData) templ.Component
	Login       func(page Page) templ.Component
	Signup      func(page Page, fields []string) templ.Component
	Write       func(page Page, form WriteForm) templ.Component
	Preview     func(blocks []markdown.Block) templ.Component
	NotFound    func(page Page) templ.Component
	ServerError func(page Page) templ.Component
}

// App is the central studyblog application. It wires together the store, block
// cache, handlers, middleware, and user-provided templates.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Store   *Store
	Blocks  *BlockCache
	Views   ViewFuncs
	Logger  *logrus.Logger
	Metrics *Metrics

	formLimiter  *FormLimiter
	registry     *prometheus.Registry
	customRoutes []func(*App)
}

// New creates an App serving store with the given configuration and views. The
// returned App is fully routed and can be used as an http.Handler before Start.
func New(cfg SiteConfig, store *Store, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Store:  store,
		Blocks: NewBlockCache(store),
		Views:  views,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.Logger == nil {
		a.Logger = NewLogger(cfg.LogLevel, cfg.LogFormat)
	}
	if a.registry == nil {
		a.registry = prometheus.NewRegistry()
	}
	a.Metrics = NewMetrics(a.registry)
	a.Metrics.postsLoaded.Set(float64(store.Len()))
	a.Blocks.onRender = a.Metrics.observeRender
	a.formLimiter = NewFormLimiter(cfg.FormAttempts, cfg.FormWindow)

	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a
}

// ServeHTTP lets the App be used directly as an http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.Echo.ServeHTTP(w, r)
}

// Start serves HTTP on Config.Addr until ctx is cancelled, then shuts down
// gracefully within Config.ShutdownTimeout.
func (a *App) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.Logger.WithFields(logrus.Fields{
			"addr":  a.Config.Addr,
			"posts": a.Store.Len(),
		}).Info("studyblog listening")
		errCh <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("studyblog: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.Logger.Info("studyblog shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("studyblog: shutdown: %w", err)
	}
	return nil
}

// Close releases background resources. Call this when the app is shutting down.
func (a *App) Close() error {
	a.formLimiter.Stop()
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded assets (studyblog.css, studyblog.js).
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	e.GET("/public/*", echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(embeddedFS)))))
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/healthz", handleHealth)
	e.GET("/metrics", a.Metrics.Handler())

	// Public pages
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeedXML)
	e.GET("/", a.handleLanding)
	e.GET("/blogs/", a.handleFeed)
	e.GET("/blog/", handleBlogRedirect)
	e.GET("/blog/:id/", a.handlePost)

	// Simulated forms
	e.GET("/login/", a.handleLogin)
	e.POST("/login/", a.handleLoginSubmit)
	e.GET("/signup/", a.handleSignup)
	e.POST("/signup/", a.handleSignupSubmit)
	e.GET("/write/", a.handleWrite)
	e.POST("/write/publish/", a.handleWritePublish)
	e.POST("/write/draft/", a.handleWriteDraft)
	e.POST("/write/preview/", a.handleWritePreview)

	// JSON API
	api := e.Group("/api")
	api.GET("/posts", a.handleAPIPosts)
	api.GET("/posts/:id", a.handleAPIPost)
	api.GET("/tags", a.handleAPITags)
	api.GET("/tags/:tag/posts", a.handleAPITagPosts)
	api.POST("/render", a.handleAPIRender)
}
