package config

import (
	"encoding/base64"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMovieBox(); err != nil {
		return err
	}
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateCinemeta(); err != nil {
		return err
	}
	if err := c.validateIdentify(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateMovieBox() error {
	if c.MovieBox.APIURL == "" {
		return fmt.Errorf("moviebox.api_url must be set")
	}
	if _, err := url.Parse(c.MovieBox.APIURL); err != nil {
		return fmt.Errorf("moviebox.api_url: %w", err)
	}
	if c.MovieBox.UserAgent == "" {
		return fmt.Errorf("moviebox.user_agent must be set")
	}
	for name, key := range map[string]string{
		"moviebox.secret_key":     c.MovieBox.SecretKey,
		"moviebox.secret_key_alt": c.MovieBox.SecretKeyAlt,
	} {
		if key == "" {
			return fmt.Errorf("%s must be set", name)
		}
		if _, err := base64.StdEncoding.DecodeString(key); err != nil {
			return fmt.Errorf("%s must be valid base64: %w", name, err)
		}
	}
	if c.MovieBox.RequestTimeout <= 0 {
		return fmt.Errorf("moviebox.request_timeout must be positive")
	}
	return nil
}

func (c *Config) validateTMDB() error {
	if c.TMDB.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/moviebox/config.toml"
		}
		return fmt.Errorf("tmdb.api_key is required; edit %s (create with 'moviebox config init')", defaultPath)
	}
	if c.TMDB.BaseURL == "" {
		return fmt.Errorf("tmdb.base_url must be set")
	}
	if c.TMDB.ImageBaseURL == "" {
		return fmt.Errorf("tmdb.image_base_url must be set")
	}
	if c.TMDB.RequestTimeout <= 0 {
		return fmt.Errorf("tmdb.request_timeout must be positive")
	}
	return nil
}

func (c *Config) validateCinemeta() error {
	if c.Cinemeta.BaseURL == "" {
		return fmt.Errorf("cinemeta.base_url must be set")
	}
	if c.Cinemeta.RequestTimeout <= 0 {
		return fmt.Errorf("cinemeta.request_timeout must be positive")
	}
	return nil
}

func (c *Config) validateIdentify() error {
	if c.Identify.MinConfidence < 0 {
		return fmt.Errorf("identify.min_confidence must not be negative")
	}
	if c.Identify.EarlyExit < c.Identify.MinConfidence {
		return fmt.Errorf("identify.early_exit must be at least identify.min_confidence")
	}
	return nil
}
