package identification

import (
	"context"
	"log/slog"

	gocache "github.com/patrickmn/go-cache"

	"moviebox/internal/logging"
	"moviebox/internal/tmdb"
)

// Result is the outcome of a reconciliation attempt. Both ids nil means
// no candidate cleared the confidence gate; that is an expected outcome.
type Result struct {
	TMDBID *int64  `json:"tmdbId"`
	IMDBID *string `json:"imdbId"`
	IsTV   bool    `json:"-"`
}

// Found reports whether the reconciliation produced an identifier.
func (r Result) Found() bool {
	return r.TMDBID != nil
}

// Thresholds carries the confidence configuration for a Resolver.
type Thresholds struct {
	// MinConfidence is the gate a pass must clear to accept a candidate.
	MinConfidence float64
	// EarlyExit stops issuing further search-kind queries in a pass once
	// the running best reaches it.
	EarlyExit float64
}

// Resolver drives scorer passes through the fallback ladder.
type Resolver struct {
	searcher      tmdb.Searcher
	logger        *slog.Logger
	weights       Weights
	minConfidence float64
	earlyExit     float64
	cache         *gocache.Cache
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithWeights overrides the scoring table.
func WithWeights(w Weights) ResolverOption {
	return func(r *Resolver) {
		r.weights = w
	}
}

// NewResolver creates a Resolver. A nil logger disables diagnostics.
func NewResolver(searcher tmdb.Searcher, logger *slog.Logger, thresholds Thresholds, opts ...ResolverOption) *Resolver {
	if logger == nil {
		logger = logging.NewNop()
	}
	r := &Resolver{
		searcher:      searcher,
		logger:        logger,
		weights:       DefaultWeights,
		minConfidence: thresholds.MinConfidence,
		earlyExit:     thresholds.EarlyExit,
		cache:         gocache.New(responseCacheTTL, responseCacheCleanup),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve matches a raw catalog title against TMDB. Year 0 means unknown;
// hasRating gates the rating signal. Passes are tried strictly in ladder
// order and the first one clearing the gate wins:
//
//  1. normalized title with year
//  2. normalized title without year (only when a year was supplied)
//  3. dub-stripped title with year (only when stripping changed the title)
//  4. dub-stripped title without year
//
// A transport failure on any query aborts with an error; exhausting the
// ladder without a passing score returns an empty Result and nil error.
func (r *Resolver) Resolve(ctx context.Context, title string, year int, rating float64, hasRating bool) (Result, error) {
	normalized := Normalize(title)
	if normalized == "" {
		return Result{}, nil
	}

	for _, v := range searchVariants(normalized, year) {
		r.logger.Debug("trying reconciliation pass",
			logging.String("title", v.title),
			logging.Int("year", v.year))
		pass, err := r.searchPass(ctx, v.title, v.year, rating, hasRating)
		if err != nil {
			return Result{}, err
		}
		if pass.found {
			result := Result{TMDBID: &pass.id, IsTV: pass.isTV}
			if pass.imdbID != "" {
				result.IMDBID = &pass.imdbID
			}
			return result, nil
		}
	}

	r.logger.Info("reconciliation exhausted all strategies",
		logging.String("title", title),
		logging.Int("year", year))
	return Result{}, nil
}

// searchVariant is one rung of the fallback ladder: a query title plus
// an optional year constraint.
type searchVariant struct {
	title string
	year  int
}

// searchVariants expands a normalized title into the ladder of pass
// inputs. The dub-stripped rungs only materialize when stripping
// changes the title, which cannot happen for titles produced by
// Normalize (its stoplist already covers every dub token); they remain
// for callers that assemble queries from other sources.
func searchVariants(normalized string, year int) []searchVariant {
	variants := []searchVariant{{normalized, year}}
	if year > 0 {
		variants = append(variants, searchVariant{normalized, 0})
	}
	if stripped := StripDubTokens(normalized); stripped != "" && stripped != normalized {
		variants = append(variants, searchVariant{stripped, year})
		if year > 0 {
			variants = append(variants, searchVariant{stripped, 0})
		}
	}
	return variants
}
