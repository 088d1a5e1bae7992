package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("subject resolved", String("subject_id", "abc123"), Int("season", 2))

	line := buf.String()
	if !strings.Contains(line, "INFO") {
		t.Fatalf("expected level label in output, got %q", line)
	}
	if !strings.Contains(line, "subject resolved") {
		t.Fatalf("expected message in output, got %q", line)
	}
	if !strings.Contains(line, "subject_id=abc123") || !strings.Contains(line, "season=2") {
		t.Fatalf("expected attributes in output, got %q", line)
	}
}

func TestNewConsoleQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("search", String("query", "some show"))

	if !strings.Contains(buf.String(), `query="some show"`) {
		t.Fatalf("expected quoted attribute, got %q", buf.String())
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("scoring candidate", Float64("score", 85))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "scoring candidate" {
		t.Fatalf("expected msg key, got %#v", record)
	}
	if record["level"] != "debug" {
		t.Fatalf("expected lowered level, got %#v", record["level"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"unknown": slog.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("should not panic", Error(nil))
}
