package studyblog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadConfigDefaults(t *testing.T) {
	chdirForTest(t, t.TempDir())

	cfg, err := LoadConfig(viper.New(), "", nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Name != "Blogify" || cfg.Addr != ":3000" || cfg.URL != "http://localhost:3000" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.FormDelay != 1500*time.Millisecond || cfg.FormAttempts != 10 || cfg.FormWindow != time.Minute {
		t.Errorf("unexpected form defaults: %+v", cfg)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)
	path := filepath.Join(dir, "site.yaml")
	doc := "name: Notes\nurl: https://notes.example.com/\naddr: \":8080\"\nform_delay: 10ms\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STUDYBLOG_ADDR", ":9090")

	cfg, err := LoadConfig(viper.New(), path, nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Name != "Notes" {
		t.Errorf("Name = %q, want file value", cfg.Name)
	}
	if cfg.URL != "https://notes.example.com" {
		t.Errorf("URL = %q, want trailing slash trimmed", cfg.URL)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, env should override the file", cfg.Addr)
	}
	if cfg.FormDelay != 10*time.Millisecond {
		t.Errorf("FormDelay = %v", cfg.FormDelay)
	}
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)
	if err := os.WriteFile(".env", []byte("STUDYBLOG_NAME=From Dotenv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STUDYBLOG_NAME", "")
	os.Unsetenv("STUDYBLOG_NAME")

	cfg, err := LoadConfig(viper.New(), "", nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Name != "From Dotenv" {
		t.Errorf("Name = %q, want value from .env", cfg.Name)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)

	if _, err := LoadConfig(viper.New(), filepath.Join(dir, "missing.yaml"), nil); err == nil {
		t.Error("expected error for a missing explicit config file")
	}

	for _, tt := range []struct {
		env, value string
	}{
		{"STUDYBLOG_FORM_ATTEMPTS", "-1"},
		{"STUDYBLOG_FORM_WINDOW", "-1m"},
		{"STUDYBLOG_FORM_DELAY", "-1s"},
		{"STUDYBLOG_SHUTDOWN_TIMEOUT", "-5s"},
	} {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			if _, err := LoadConfig(viper.New(), "", nil); err == nil {
				t.Errorf("expected error for %s=%s", tt.env, tt.value)
			}
		})
	}
}

func TestLoadConfigZeroWindowUsesDefault(t *testing.T) {
	chdirForTest(t, t.TempDir())
	t.Setenv("STUDYBLOG_FORM_WINDOW", "0s")

	cfg, err := LoadConfig(viper.New(), "", nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.FormWindow != time.Minute {
		t.Errorf("FormWindow = %v, want 1m", cfg.FormWindow)
	}
}

func TestConfigOptionsCoverEveryKey(t *testing.T) {
	seen := map[string]bool{}
	for _, o := range ConfigOptions() {
		if seen[o.Key] {
			t.Errorf("duplicate key %q", o.Key)
		}
		seen[o.Key] = true
		if o.Comment == "" {
			t.Errorf("key %q has no comment", o.Key)
		}
	}
	if len(seen) != 12 {
		t.Errorf("got %d keys, want 12", len(seen))
	}
}

// chdirForTest changes the working directory for the duration of the test
// and restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
