package cinemeta

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Video describes one episode entry of a series metadata bundle.
type Video struct {
	Season      int    `json:"season"`
	Episode     int    `json:"episode"`
	Name        string `json:"name"`
	Overview    string `json:"overview"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	FirstAired  string `json:"firstAired"`
}

// Meta is the metadata bundle for one catalog entry.
type Meta struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Poster      string  `json:"poster"`
	Background  string  `json:"background"`
	Description string  `json:"description"`
	IMDBRating  string  `json:"imdbRating"`
	Videos      []Video `json:"videos"`
}

type metaEnvelope struct {
	Meta *Meta `json:"meta"`
}

// ContentType selects which half of the mirror catalog a lookup hits.
type ContentType string

const (
	ContentTypeMovie  ContentType = "movie"
	ContentTypeSeries ContentType = "series"
)

// Client provides access to the metadata mirror.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a metadata mirror client.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("cinemeta base url required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// GetMeta fetches the metadata bundle for the given IMDb id. A nil Meta
// with nil error means the mirror had no entry.
func (c *Client) GetMeta(ctx context.Context, contentType ContentType, imdbID string) (*Meta, error) {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return nil, errors.New("imdb id required")
	}

	endpoint := fmt.Sprintf("%s/meta/%s/%s.json", c.baseURL, contentType, imdbID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cinemeta meta returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload metaEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode cinemeta response: %w", err)
	}
	return payload.Meta, nil
}

// FindVideo returns the episode entry matching the season/episode pair, or
// nil when the bundle carries no match.
func FindVideo(meta *Meta, season, episode int) *Video {
	if meta == nil {
		return nil
	}
	for i := range meta.Videos {
		if meta.Videos[i].Season == season && meta.Videos[i].Episode == episode {
			return &meta.Videos[i]
		}
	}
	return nil
}
