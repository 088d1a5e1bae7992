package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Result represents a single TMDB search match.
type Result struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Name          string  `json:"name"`
	OriginalTitle string  `json:"original_title"`
	OriginalName  string  `json:"original_name"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date"`
	FirstAirDate  string  `json:"first_air_date"`
	MediaType     string  `json:"media_type"`
	Popularity    float64 `json:"popularity"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int64   `json:"vote_count"`
}

// Response models the TMDB paginated search response.
type Response struct {
	Page         int      `json:"page"`
	Results      []Result `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// ExternalIDs carries the cross-reference identifiers attached to a detail
// lookup via append_to_response.
type ExternalIDs struct {
	IMDBID string `json:"imdb_id"`
}

// Details captures the subset of a movie or TV detail payload needed for
// reconciliation joins.
type Details struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Name        string      `json:"name"`
	ExternalIDs ExternalIDs `json:"external_ids"`
}

// Image describes one entry of an images listing.
type Image struct {
	FilePath string `json:"file_path"`
	ISO639_1 string `json:"iso_639_1"`
}

// Images models the /images payload; only logos are consumed here.
type Images struct {
	Logos []Image `json:"logos"`
}

// MediaKind names the two catalog halves TMDB splits titles into.
type MediaKind string

const (
	MediaKindMovie MediaKind = "movie"
	MediaKindTV    MediaKind = "tv"
)

// Searcher defines the TMDB operations used by title reconciliation.
type Searcher interface {
	SearchMovieWithOptions(ctx context.Context, query string, opts SearchOptions) (*Response, error)
	SearchTVWithOptions(ctx context.Context, query string, opts SearchOptions) (*Response, error)
	SearchMultiWithOptions(ctx context.Context, query string, opts SearchOptions) (*Response, error)
	GetDetails(ctx context.Context, kind MediaKind, id int64) (*Details, error)
}

// Client provides access to the TMDB API.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

var _ Searcher = (*Client)(nil)

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

// New creates a TMDB client.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   strings.TrimSpace(language),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchOptions contains optional search parameters.
type SearchOptions struct {
	// Year constrains the search; it maps to the year parameter for multi
	// and movie searches and to first_air_date_year for TV.
	Year int
}

// CacheKey returns a stable string representation for caching.
func (o SearchOptions) CacheKey() string {
	return "y=" + strconv.Itoa(o.Year)
}

// SearchMovieWithOptions performs a TMDB movie search.
func (c *Client) SearchMovieWithOptions(ctx context.Context, query string, opts SearchOptions) (*Response, error) {
	params := url.Values{}
	if opts.Year > 0 {
		params.Set("year", strconv.Itoa(opts.Year))
	}
	return c.search(ctx, "/search/movie", query, params)
}

// SearchTVWithOptions performs a TMDB TV search.
func (c *Client) SearchTVWithOptions(ctx context.Context, query string, opts SearchOptions) (*Response, error) {
	params := url.Values{}
	if opts.Year > 0 {
		params.Set("first_air_date_year", strconv.Itoa(opts.Year))
	}
	return c.search(ctx, "/search/tv", query, params)
}

// SearchMultiWithOptions performs a TMDB multi search spanning both media kinds.
func (c *Client) SearchMultiWithOptions(ctx context.Context, query string, opts SearchOptions) (*Response, error) {
	params := url.Values{}
	if opts.Year > 0 {
		params.Set("year", strconv.Itoa(opts.Year))
	}
	return c.search(ctx, "/search/multi", query, params)
}

func (c *Client) search(ctx context.Context, path, query string, params url.Values) (*Response, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params.Set("query", query)
	params.Set("include_adult", "false")
	params.Set("page", "1")
	if c.language != "" {
		params.Set("language", c.language)
	}

	var payload Response
	if err := c.get(ctx, path, params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetDetails fetches a movie or TV detail payload with external ids appended.
func (c *Client) GetDetails(ctx context.Context, kind MediaKind, id int64) (*Details, error) {
	if id <= 0 {
		return nil, errors.New("id must be positive")
	}
	params := url.Values{}
	params.Set("append_to_response", "external_ids")
	if c.language != "" {
		params.Set("language", c.language)
	}

	var payload Details
	if err := c.get(ctx, fmt.Sprintf("/%s/%d", kind, id), params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetImages fetches the image listing for a movie or TV entry. No
// language filter is applied so the logo preference ladder can fall back
// across languages.
func (c *Client) GetImages(ctx context.Context, kind MediaKind, id int64) (*Images, error) {
	if id <= 0 {
		return nil, errors.New("id must be positive")
	}

	var payload Images
	if err := c.get(ctx, fmt.Sprintf("/%s/%d/images", kind, id), url.Values{}, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse tmdb url: %w", err)
	}
	params.Set("api_key", c.apiKey)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb %s returned %d (latency=%v)", path, resp.StatusCode, latency)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode tmdb response: %w", err)
	}
	return nil
}
