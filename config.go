package studyblog

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// SiteConfig holds all configuration for a studyblog site.
type SiteConfig struct {
	Name        string // Site name (default "Blogify")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags

	Addr            string        // Listen address (default ":3000")
	ShutdownTimeout time.Duration // Graceful shutdown limit (default 10s)

	SessionSecret string // Flash cookie secret; a random one is generated when empty
	CookieSecure  bool   // Set true for HTTPS

	LogLevel  string // debug, info, warn, error (default "info")
	LogFormat string // json or text (default "text")

	FormDelay    time.Duration // Simulated login/signup latency (default 1500ms)
	FormAttempts int           // Form submissions allowed per IP and window (default 10)
	FormWindow   time.Duration // Form rate limit window (default 1min)
}

const defaultFormWindow = time.Minute

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blogify"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Description == "" {
		c.Description = "Study notes and learning materials shared by students."
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.FormDelay == 0 {
		c.FormDelay = 1500 * time.Millisecond
	}
	if c.FormAttempts == 0 {
		c.FormAttempts = 10
	}
	if c.FormWindow == 0 {
		c.FormWindow = defaultFormWindow
	}
}

// ConfigOption describes one configuration key, its default and its meaning.
type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// ConfigOptions returns every supported configuration key.
func ConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "name", Default: "Blogify", Comment: "Site name shown in the navbar, titles and RSS"},
		{Key: "url", Default: "http://localhost:3000", Comment: "Canonical base URL for links, RSS and sitemap"},
		{Key: "description", Default: "Study notes and learning materials shared by students.", Comment: "Site description for RSS and meta tags"},
		{Key: "addr", Default: ":3000", Comment: "HTTP listen address"},
		{Key: "shutdown_timeout", Default: "10s", Comment: "Graceful shutdown limit"},
		{Key: "session_secret", Default: "", Comment: "Secret for the flash cookie; random per process when empty"},
		{Key: "cookie_secure", Default: false, Comment: "Mark cookies Secure (enable behind HTTPS)"},
		{Key: "log_level", Default: "info", Comment: "debug, info, warn or error"},
		{Key: "log_format", Default: "text", Comment: "text or json"},
		{Key: "form_delay", Default: "1500ms", Comment: "Simulated latency of the login and signup forms"},
		{Key: "form_attempts", Default: 10, Comment: "Form submissions allowed per IP within form_window"},
		{Key: "form_window", Default: "1m", Comment: "Form rate limit window"},
	}
}

// LoadConfig resolves configuration with precedence: defaults < file < env.
// Local .env files are loaded into the process environment first. When path is
// empty, a config.yaml in the working directory is used if present.
func LoadConfig(v *viper.Viper, path string, logger *logrus.Logger) (SiteConfig, error) {
	loadDotEnv(logger)

	for _, o := range ConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return SiteConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return SiteConfig{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	// Environment variables: STUDYBLOG_* override everything above.
	v.SetEnvPrefix("studyblog")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := SiteConfig{
		Name:            v.GetString("name"),
		URL:             strings.TrimRight(v.GetString("url"), "/"),
		Description:     v.GetString("description"),
		Addr:            v.GetString("addr"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		SessionSecret:   v.GetString("session_secret"),
		CookieSecure:    v.GetBool("cookie_secure"),
		LogLevel:        v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
		FormDelay:       v.GetDuration("form_delay"),
		FormAttempts:    v.GetInt("form_attempts"),
		FormWindow:      v.GetDuration("form_window"),
	}
	if err := cfg.validate(); err != nil {
		return SiteConfig{}, err
	}
	cfg.setDefaults()
	return cfg, nil
}

// validate rejects negative counts and durations. Zero selects the default.
func (c SiteConfig) validate() error {
	if c.FormAttempts < 0 {
		return fmt.Errorf("form_attempts must not be negative, got %d", c.FormAttempts)
	}
	for _, d := range []struct {
		key string
		val time.Duration
	}{
		{"shutdown_timeout", c.ShutdownTimeout},
		{"form_delay", c.FormDelay},
		{"form_window", c.FormWindow},
	} {
		if d.val < 0 {
			return fmt.Errorf("%s must not be negative, got %s", d.key, d.val)
		}
	}
	return nil
}

func loadDotEnv(logger *logrus.Logger) {
	for _, file := range []string{".env", ".env.local"} {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			if logger != nil {
				logger.WithError(err).Warnf("failed to load %s", file)
			}
			continue
		}
		if logger != nil {
			logger.Debugf("loaded env file %s", file)
		}
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithLogger replaces the logger built from the config.
func WithLogger(l *logrus.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithRegistry registers the app metrics with r instead of a fresh registry.
// /metrics serves whatever r gathers.
func WithRegistry(r *prometheus.Registry) Option {
	return func(a *App) {
		a.registry = r
	}
}
