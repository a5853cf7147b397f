package studyblog

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of one App.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	feedQueries     *prometheus.CounterVec
	renders         prometheus.Counter
	formSubmissions *prometheus.CounterVec
	pageViews       *prometheus.CounterVec
	postsLoaded     prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with r.
func NewMetrics(r *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: r,
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "studyblog_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "studyblog_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		feedQueries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "studyblog_feed_queries_total",
				Help: "Feed computations by whether a query and a tag were applied",
			},
			[]string{"query", "tag"},
		),
		renders: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "studyblog_markdown_renders_total",
			Help: "Post and preview contents rendered to blocks",
		}),
		formSubmissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "studyblog_form_submissions_total",
				Help: "Simulated form submissions by form and outcome",
			},
			[]string{"form", "outcome"},
		),
		pageViews: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "studyblog_page_views_total",
				Help: "Rendered pages by route, client family and device class",
			},
			[]string{"route", "client", "device"},
		),
		postsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "studyblog_posts_loaded",
			Help: "Number of posts in the store",
		}),
	}
	r.MustRegister(m.httpRequests, m.httpDuration, m.feedQueries, m.renders, m.formSubmissions, m.pageViews, m.postsLoaded)
	return m
}

// Handler returns the /metrics endpoint for the registry.
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// Middleware records request counts and latency per route template.
func (m *Metrics) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
			m.httpDuration.WithLabelValues(c.Request().Method, routeLabel(c)).Observe(v)
		}))
		err := next(c)
		timer.ObserveDuration()

		status := c.Response().Status
		if err != nil {
			status = http.StatusInternalServerError
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
		}
		m.httpRequests.WithLabelValues(c.Request().Method, routeLabel(c), strconv.Itoa(status)).Inc()
		return err
	}
}

func routeLabel(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}
	return "unmatched"
}

func (m *Metrics) observeFeed(f FilterState) {
	m.feedQueries.WithLabelValues(strconv.FormatBool(f.Query != ""), strconv.FormatBool(f.Tag != "")).Inc()
}

func (m *Metrics) observeRender() {
	m.renders.Inc()
}

func (m *Metrics) observeForm(form, outcome string) {
	m.formSubmissions.WithLabelValues(form, outcome).Inc()
}
