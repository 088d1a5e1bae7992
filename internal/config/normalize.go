package config

import "strings"

// normalize trims whitespace from string fields and backfills empty values
// with defaults so a sparse config file still yields a complete Config.
func (c *Config) normalize() {
	defaults := Default()

	c.MovieBox.APIURL = trimOr(c.MovieBox.APIURL, defaults.MovieBox.APIURL)
	c.MovieBox.APIURL = strings.TrimRight(c.MovieBox.APIURL, "/")
	c.MovieBox.UserAgent = trimOr(c.MovieBox.UserAgent, defaults.MovieBox.UserAgent)
	c.MovieBox.ClientInfo = trimOr(c.MovieBox.ClientInfo, defaults.MovieBox.ClientInfo)
	c.MovieBox.SecretKey = trimOr(c.MovieBox.SecretKey, defaults.MovieBox.SecretKey)
	c.MovieBox.SecretKeyAlt = trimOr(c.MovieBox.SecretKeyAlt, defaults.MovieBox.SecretKeyAlt)
	if c.MovieBox.RequestTimeout == 0 {
		c.MovieBox.RequestTimeout = defaults.MovieBox.RequestTimeout
	}

	c.TMDB.APIKey = strings.TrimSpace(c.TMDB.APIKey)
	c.TMDB.BaseURL = strings.TrimRight(trimOr(c.TMDB.BaseURL, defaults.TMDB.BaseURL), "/")
	c.TMDB.ImageBaseURL = strings.TrimRight(trimOr(c.TMDB.ImageBaseURL, defaults.TMDB.ImageBaseURL), "/")
	c.TMDB.Language = strings.TrimSpace(c.TMDB.Language)
	if c.TMDB.RequestTimeout == 0 {
		c.TMDB.RequestTimeout = defaults.TMDB.RequestTimeout
	}

	c.Cinemeta.BaseURL = strings.TrimRight(trimOr(c.Cinemeta.BaseURL, defaults.Cinemeta.BaseURL), "/")
	if c.Cinemeta.RequestTimeout == 0 {
		c.Cinemeta.RequestTimeout = defaults.Cinemeta.RequestTimeout
	}

	c.Logging.Format = trimOr(c.Logging.Format, defaults.Logging.Format)
	c.Logging.Level = trimOr(c.Logging.Level, defaults.Logging.Level)
}

func trimOr(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
