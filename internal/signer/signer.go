package signer

import (
	"crypto/hmac"
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// bodyHashLimit bounds how much of the request body contributes to the
// canonical body hash. Bodies identical in their first bodyHashLimit bytes
// sign identically.
const bodyHashLimit = 102400

// protocolVersion is the fixed middle segment of the transaction signature.
const protocolVersion = 2

// Key selects which HMAC secret signs a request. The mobile app signs
// almost everything with the default key; the alternate key exists for a
// handful of call sites and must remain selectable.
type Key int

const (
	KeyDefault Key = iota
	KeyAlt
)

// Signer derives the x-client-token and x-tr-signature header values.
// It is safe for concurrent use; signing is a pure function of the inputs
// and the clock.
type Signer struct {
	defaultKey []byte
	altKey     []byte
	now        func() time.Time
}

// Option configures a Signer.
type Option func(*Signer)

// WithClock overrides the wall clock, fixing timestamps for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Signer from the base64-encoded secret keys.
func New(secretKey, secretKeyAlt string, opts ...Option) (*Signer, error) {
	defaultKey, err := base64.StdEncoding.DecodeString(strings.TrimSpace(secretKey))
	if err != nil {
		return nil, fmt.Errorf("decode secret key: %w", err)
	}
	altKey, err := base64.StdEncoding.DecodeString(strings.TrimSpace(secretKeyAlt))
	if err != nil {
		return nil, fmt.Errorf("decode alternate secret key: %w", err)
	}
	s := &Signer{
		defaultKey: defaultKey,
		altKey:     altKey,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Timestamp returns the current signing timestamp in milliseconds.
func (s *Signer) Timestamp() int64 {
	return s.now().UnixMilli()
}

// ClientToken generates a fresh x-client-token value.
func (s *Signer) ClientToken() string {
	return ClientTokenAt(s.Timestamp())
}

// ClientTokenAt generates the x-client-token value for an explicit
// timestamp: the decimal timestamp, a comma, and the MD5 of the reversed
// timestamp string.
func ClientTokenAt(timestamp int64) string {
	ts := strconv.FormatInt(timestamp, 10)
	sum := md5.Sum([]byte(reverse(ts)))
	return ts + "," + hex.EncodeToString(sum[:])
}

// Sign computes the x-tr-signature value for a request using the current
// time. A nil body means the request carries no body; an empty non-nil
// body is signed as a zero-length body.
func (s *Signer) Sign(method, accept, contentType, rawURL string, body []byte, key Key) (string, error) {
	return s.SignAt(method, accept, contentType, rawURL, body, key, s.Timestamp())
}

// SignAt computes the x-tr-signature value for an explicit timestamp.
func (s *Signer) SignAt(method, accept, contentType, rawURL string, body []byte, key Key, timestamp int64) (string, error) {
	canonical, err := CanonicalString(method, accept, contentType, rawURL, body, timestamp)
	if err != nil {
		return "", err
	}
	secret := s.defaultKey
	if key == KeyAlt {
		secret = s.altKey
	}
	mac := hmac.New(md5.New, secret)
	mac.Write([]byte(canonical))
	digest := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return fmt.Sprintf("%d|%d|%s", timestamp, protocolVersion, digest), nil
}

// CanonicalString builds the newline-joined text the signature covers:
//
//	METHOD\nACCEPT\nCONTENT-TYPE\nBODY-LENGTH\nTIMESTAMP\nBODY-HASH\nPATH?SORTED-QUERY
//
// Query parameters are decoded, sorted lexicographically by key, and
// flattened to repeated key=value pairs; a URL without a query string
// canonicalizes to the bare path. The body hash covers at most the first
// bodyHashLimit bytes.
func CanonicalString(method, accept, contentType, rawURL string, body []byte, timestamp int64) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}

	canonicalURL := parsed.Path
	if parsed.RawQuery != "" {
		values, err := url.ParseQuery(parsed.RawQuery)
		if err != nil {
			return "", fmt.Errorf("parse query: %w", err)
		}
		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, key := range keys {
			for _, value := range values[key] {
				pairs = append(pairs, key+"="+value)
			}
		}
		if len(pairs) > 0 {
			canonicalURL += "?" + strings.Join(pairs, "&")
		}
	}

	var bodyLength, bodyHash string
	if body != nil {
		bodyLength = strconv.Itoa(len(body))
		hashed := body
		if len(hashed) > bodyHashLimit {
			hashed = hashed[:bodyHashLimit]
		}
		sum := md5.Sum(hashed)
		bodyHash = hex.EncodeToString(sum[:])
	}

	return strings.Join([]string{
		strings.ToUpper(method),
		accept,
		contentType,
		bodyLength,
		strconv.FormatInt(timestamp, 10),
		bodyHash,
		canonicalURL,
	}, "\n"), nil
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
