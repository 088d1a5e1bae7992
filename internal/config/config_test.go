package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatalf("expected exists=false for missing file %s", resolved)
	}
	if cfg.MovieBox.APIURL != defaultAPIURL {
		t.Fatalf("expected default api url, got %q", cfg.MovieBox.APIURL)
	}
	if cfg.Identify.MinConfidence != defaultMinConfidence || cfg.Identify.EarlyExit != defaultEarlyExit {
		t.Fatalf("expected default thresholds, got %+v", cfg.Identify)
	}
}

func TestLoadOverridesThresholds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[identify]\nmin_confidence = 55\nearly_exit = 60\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Identify.MinConfidence != 55 || cfg.Identify.EarlyExit != 60 {
		t.Fatalf("expected overridden thresholds, got %+v", cfg.Identify)
	}
	if cfg.TMDB.BaseURL != defaultTMDBBaseURL {
		t.Fatalf("expected untouched sections to keep defaults, got %q", cfg.TMDB.BaseURL)
	}
}

func TestLoadRejectsEarlyExitBelowGate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[identify]\nmin_confidence = 50\nearly_exit = 10\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error for early_exit below min_confidence")
	}
}

func TestValidateRejectsBadSecretKey(t *testing.T) {
	cfg := Default()
	cfg.MovieBox.SecretKey = "not base64 !!!"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for malformed secret key")
	}
}

func TestNormalizeStripsTrailingSlashes(t *testing.T) {
	cfg := Default()
	cfg.MovieBox.APIURL = "https://example.com/"
	cfg.TMDB.BaseURL = "https://tmdb.example.com/3/"
	cfg.normalize()
	if strings.HasSuffix(cfg.MovieBox.APIURL, "/") {
		t.Fatalf("expected trimmed api url, got %q", cfg.MovieBox.APIURL)
	}
	if strings.HasSuffix(cfg.TMDB.BaseURL, "/") {
		t.Fatalf("expected trimmed tmdb url, got %q", cfg.TMDB.BaseURL)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[identify]") {
		t.Fatalf("expected sample to mention identify section, got %q", string(data))
	}
}
