package moviebox

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"moviebox/internal/signer"
)

// Client talks to the MovieBox mobile BFF. Every request carries a
// client token and a request signature; see the signer package for the
// canonical form.
type Client struct {
	baseURL    string
	userAgent  string
	clientInfo string
	signer     *signer.Signer
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

// New creates a MovieBox client.
func New(baseURL, userAgent, clientInfo string, s *signer.Signer, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("moviebox base url required")
	}
	if s == nil {
		return nil, errors.New("signer required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		clientInfo: clientInfo,
		signer:     s,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// BaseURL returns the configured endpoint root, without a trailing slash.
// Stream entries use it as the referer.
func (c *Client) BaseURL() string {
	return c.baseURL
}

const (
	acceptJSON      = "application/json"
	contentTypeJSON = "application/json"
	// POST bodies are signed with the charset-qualified content type even
	// though the header itself stays plain; the upstream service expects
	// exactly this asymmetry.
	signedPostContentType = "application/json; charset=utf-8"
)

// endpoint builds an absolute URL from a BFF path and query parameters.
// The query is attached pre-encoded so the signed form and the wire form
// agree.
func (c *Client) endpoint(path string, params url.Values) string {
	if len(params) == 0 {
		return c.baseURL + path
	}
	return c.baseURL + path + "?" + params.Encode()
}

func (c *Client) headers(req *http.Request, accept, contentType, signature string) {
	req.Header.Set("user-agent", c.userAgent)
	req.Header.Set("accept", accept)
	req.Header.Set("content-type", contentType)
	req.Header.Set("x-client-token", c.signer.ClientToken())
	req.Header.Set("x-tr-signature", signature)
	req.Header.Set("x-client-info", c.clientInfo)
	req.Header.Set("x-client-status", "0")
}

// getJSON issues a signed GET and decodes the response envelope into out.
// extraHeaders apply after the base set, so they can override it.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any, extraHeaders map[string]string) error {
	signature, err := c.signer.Sign(http.MethodGet, acceptJSON, contentTypeJSON, rawURL, nil, signer.KeyDefault)
	if err != nil {
		return fmt.Errorf("sign request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	c.headers(req, acceptJSON, contentTypeJSON, signature)
	for key, value := range extraHeaders {
		req.Header.Set(key, value)
	}

	return c.do(req, out)
}

// getJSONBare issues a signed GET whose accept and content type are
// empty both on the wire and in the canonical string. The caption
// endpoints reject the regular header set.
func (c *Client) getJSONBare(ctx context.Context, rawURL string, out any) error {
	signature, err := c.signer.Sign(http.MethodGet, "", "", rawURL, nil, signer.KeyDefault)
	if err != nil {
		return fmt.Errorf("sign request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	c.headers(req, "", "", signature)

	return c.do(req, out)
}

// postJSON issues a signed POST with a JSON body and decodes the
// response envelope into out.
func (c *Client) postJSON(ctx context.Context, rawURL string, body []byte, out any) error {
	signature, err := c.signer.Sign(http.MethodPost, acceptJSON, signedPostContentType, rawURL, body, signer.KeyDefault)
	if err != nil {
		return fmt.Errorf("sign request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	c.headers(req, acceptJSON, contentTypeJSON, signature)

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("moviebox %s returned %d (latency=%v)", req.URL.Path, resp.StatusCode, latency)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
