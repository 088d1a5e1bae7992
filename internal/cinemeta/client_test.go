package cinemeta_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"moviebox/internal/cinemeta"
)

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := cinemeta.New("  "); err == nil {
		t.Fatal("expected error for empty base url")
	}
}

func TestGetMetaSeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/meta/series/tt0944947.json" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"meta":{"id":"tt0944947","name":"Game of Thrones","poster":"p.jpg",
			"imdbRating":"9.2","videos":[
			{"season":1,"episode":1,"name":"Winter Is Coming","overview":"First.","firstAired":"2011-04-17"},
			{"season":1,"episode":2,"name":"The Kingsroad"}]}}`))
	}))
	t.Cleanup(server.Close)

	client, err := cinemeta.New(server.URL)
	if err != nil {
		t.Fatal(err)
	}

	meta, err := client.GetMeta(context.Background(), cinemeta.ContentTypeSeries, "tt0944947")
	if err != nil {
		t.Fatalf("GetMeta returned error: %v", err)
	}
	if meta == nil || meta.Name != "Game of Thrones" {
		t.Fatalf("unexpected meta: %#v", meta)
	}
	if len(meta.Videos) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(meta.Videos))
	}
}

func TestGetMetaHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	client, err := cinemeta.New(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := client.GetMeta(context.Background(), cinemeta.ContentTypeMovie, "tt1375666"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestGetMetaRequiresID(t *testing.T) {
	client, err := cinemeta.New("https://example.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := client.GetMeta(context.Background(), cinemeta.ContentTypeMovie, ""); err == nil {
		t.Fatal("expected error for empty imdb id")
	}
}

func TestFindVideo(t *testing.T) {
	meta := &cinemeta.Meta{Videos: []cinemeta.Video{
		{Season: 1, Episode: 1, Name: "Pilot"},
		{Season: 2, Episode: 3, Name: "Later"},
	}}

	if v := cinemeta.FindVideo(meta, 2, 3); v == nil || v.Name != "Later" {
		t.Fatalf("expected S2E3 match, got %#v", v)
	}
	if v := cinemeta.FindVideo(meta, 9, 9); v != nil {
		t.Fatalf("expected nil for missing pair, got %#v", v)
	}
	if v := cinemeta.FindVideo(nil, 1, 1); v != nil {
		t.Fatalf("expected nil for nil meta, got %#v", v)
	}
}
