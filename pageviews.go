package studyblog

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Order matters: the first matching pattern wins.
var (
	botPatterns = []string{
		"bot", "crawler", "spider", "crawl", "slurp", "scrape",
		"yandex", "baidu", "facebookexternalhit",
	}
	browserPatterns = []struct{ pattern, name string }{
		{"firefox", "firefox"},
		{"opr", "opera"},
		{"opera", "opera"},
		{"edg", "edge"},
		{"chrome", "chrome"},
		{"safari", "safari"},
	}
)

// classifyClient reduces a User-Agent to low-cardinality labels: the browser family
// (or "bot") and the device class.
func classifyClient(ua string) (client, device string) {
	ua = strings.ToLower(ua)
	for _, p := range botPatterns {
		if strings.Contains(ua, p) {
			return "bot", "bot"
		}
	}

	client = "other"
	for _, b := range browserPatterns {
		if strings.Contains(ua, b.pattern) {
			client = b.name
			break
		}
	}

	// iPad user agents also contain "mobile".
	switch {
	case strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad"):
		device = "tablet"
	case strings.Contains(ua, "mobile"):
		device = "mobile"
	default:
		device = "desktop"
	}
	return client, device
}

// isPageView reports whether the request rendered a full HTML page.
func isPageView(c echo.Context) bool {
	if c.Request().Method != http.MethodGet || c.Response().Status != http.StatusOK {
		return false
	}
	if c.Request().Header.Get("HX-Request") == "true" {
		return false
	}
	return strings.HasPrefix(c.Response().Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
}

// PageViews counts rendered pages by route, client family and device class. Nothing
// about the individual visitor is kept.
func (m *Metrics) PageViews(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		if err == nil && isPageView(c) {
			client, device := classifyClient(c.Request().UserAgent())
			m.pageViews.WithLabelValues(routeLabel(c), client, device).Inc()
		}
		return err
	}
}
