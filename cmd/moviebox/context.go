package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"moviebox/internal/assemble"
	"moviebox/internal/cinemeta"
	"moviebox/internal/config"
	"moviebox/internal/identification"
	"moviebox/internal/logging"
	"moviebox/internal/moviebox"
	"moviebox/internal/signer"
	"moviebox/internal/tmdb"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the process logger once. Diagnostics go to stderr
// so stdout stays a single clean JSON document.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger.With(logging.String("run_id", uuid.NewString()))
	})
	return c.logger, c.loggerErr
}

// newCatalogClient wires the signed MovieBox client from configuration.
func (c *commandContext) newCatalogClient() (*moviebox.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	s, err := signer.New(cfg.MovieBox.SecretKey, cfg.MovieBox.SecretKeyAlt)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	client, err := moviebox.New(cfg.MovieBox.APIURL, cfg.MovieBox.UserAgent, cfg.MovieBox.ClientInfo, s,
		moviebox.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.MovieBox.RequestTimeout) * time.Second}))
	if err != nil {
		return nil, fmt.Errorf("create catalog client: %w", err)
	}
	return client, nil
}

// newAssembler wires the full enrichment pipeline: the signed catalog
// client, the reconciliation resolver, and both metadata sources.
func (c *commandContext) newAssembler() (*assemble.Assembler, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	catalog, err := c.newCatalogClient()
	if err != nil {
		return nil, err
	}

	tmdbClient, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language,
		tmdb.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.TMDB.RequestTimeout) * time.Second}))
	if err != nil {
		return nil, fmt.Errorf("create tmdb client: %w", err)
	}
	cinemetaClient, err := cinemeta.New(cfg.Cinemeta.BaseURL,
		cinemeta.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.Cinemeta.RequestTimeout) * time.Second}))
	if err != nil {
		return nil, fmt.Errorf("create cinemeta client: %w", err)
	}

	resolver := identification.NewResolver(tmdbClient, logger, identification.Thresholds{
		MinConfidence: cfg.Identify.MinConfidence,
		EarlyExit:     cfg.Identify.EarlyExit,
	})

	return assemble.New(assemble.Options{
		Catalog:      catalog,
		Resolver:     resolver,
		Images:       tmdbClient,
		Meta:         cinemetaClient,
		Logger:       logger,
		ImageBaseURL: cfg.TMDB.ImageBaseURL,
		Language:     cfg.TMDB.Language,
	})
}
