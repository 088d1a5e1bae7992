package identification

import (
	"context"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"moviebox/internal/logging"
	"moviebox/internal/tmdb"
)

type searchKind string

const (
	searchKindMulti searchKind = "multi"
	searchKindTV    searchKind = "tv"
	searchKindMovie searchKind = "movie"
)

// searchLadder is the fixed order of media-kind interpretations tried per
// pass. Later kinds are skipped once the running best reaches the
// early-exit threshold.
var searchLadder = []searchKind{searchKindMulti, searchKindTV, searchKindMovie}

const (
	responseCacheTTL     = 10 * time.Minute
	responseCacheCleanup = 15 * time.Minute
)

type passResult struct {
	found  bool
	id     int64
	imdbID string
	isTV   bool
	score  float64
}

func (r *Resolver) query(ctx context.Context, kind searchKind, title string, opts tmdb.SearchOptions) (*tmdb.Response, error) {
	key := fmt.Sprintf("%s|%s|%s", kind, strings.ToLower(title), opts.CacheKey())
	if cached, ok := r.cache.Get(key); ok {
		return cached.(*tmdb.Response), nil
	}

	var (
		resp *tmdb.Response
		err  error
	)
	switch kind {
	case searchKindTV:
		resp, err = r.searcher.SearchTVWithOptions(ctx, title, opts)
	case searchKindMovie:
		resp, err = r.searcher.SearchMovieWithOptions(ctx, title, opts)
	default:
		resp, err = r.searcher.SearchMultiWithOptions(ctx, title, opts)
	}
	if err != nil {
		return nil, err
	}

	r.cache.Set(key, resp, gocache.DefaultExpiration)
	return resp, nil
}

// searchPass evaluates every candidate from every media-kind
// interpretation for one normalized title/year/rating input and applies
// the confidence gate. On success it fetches the winner's external ids.
func (r *Resolver) searchPass(ctx context.Context, normalizedTitle string, year int, rating float64, hasRating bool) (passResult, error) {
	var (
		best      passResult
		bestScore = -1.0
	)

	for _, kind := range searchLadder {
		response, err := r.query(ctx, kind, normalizedTitle, tmdb.SearchOptions{Year: year})
		if err != nil {
			return passResult{}, fmt.Errorf("%s search: %w", kind, err)
		}

		for _, result := range response.Results {
			candidate, ok := toCandidate(kind, result)
			if !ok {
				continue
			}
			score := Score(candidate, normalizedTitle, year, rating, hasRating, r.weights)
			r.logger.Debug("scored candidate",
				logging.String("kind", string(kind)),
				logging.Int64("tmdb_id", candidate.ID),
				logging.String("title", candidate.Title),
				logging.Float64("score", score))
			if score > bestScore {
				bestScore = score
				best = passResult{id: candidate.ID, isTV: candidate.IsTV, score: score}
			}
		}

		if bestScore >= r.earlyExit {
			break
		}
	}

	if best.id == 0 || bestScore < r.minConfidence {
		r.logger.Debug("pass below confidence gate",
			logging.String("title", normalizedTitle),
			logging.Int("year", year),
			logging.Float64("best_score", bestScore),
			logging.Float64("min_confidence", r.minConfidence))
		return passResult{}, nil
	}
	best.found = true

	kind := tmdb.MediaKindMovie
	if best.isTV {
		kind = tmdb.MediaKindTV
	}
	details, err := r.searcher.GetDetails(ctx, kind, best.id)
	if err != nil {
		return passResult{}, fmt.Errorf("%s details: %w", kind, err)
	}
	// A missing cross-reference id is not a failure; the internal id
	// still identifies the winner.
	best.imdbID = strings.TrimSpace(details.ExternalIDs.IMDBID)

	r.logger.Info("pass accepted candidate",
		logging.String("title", normalizedTitle),
		logging.Int("year", year),
		logging.Int64("tmdb_id", best.id),
		logging.Bool("is_tv", best.isTV),
		logging.String("imdb_id", best.imdbID),
		logging.Float64("score", best.score))

	return best, nil
}

// toCandidate reduces a search result to its scoring signals. The
// comparison title falls back through the kind-appropriate fields, first
// non-empty wins.
func toCandidate(kind searchKind, result tmdb.Result) (Candidate, bool) {
	if result.ID == 0 {
		return Candidate{}, false
	}

	mediaType := string(kind)
	if kind == searchKindMulti {
		mediaType = result.MediaType
	}

	var title string
	switch mediaType {
	case "tv":
		title = firstNonEmpty(result.Name, result.OriginalName)
	case "movie":
		title = firstNonEmpty(result.Title, result.OriginalTitle)
	default:
		title = firstNonEmpty(result.Title, result.Name, result.OriginalTitle, result.OriginalName)
	}

	candidate := Candidate{
		ID:         result.ID,
		Title:      strings.ToLower(title),
		IsTV:       mediaType == "tv",
		Popularity: result.Popularity,
	}

	date := result.ReleaseDate
	if mediaType == "tv" {
		date = result.FirstAirDate
	}
	candidate.Year = yearOf(date)

	if mediaType == "tv" || mediaType == "movie" {
		candidate.Rating = result.VoteAverage
		candidate.HasRating = true
	}

	return candidate, true
}

func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year := 0
	for _, r := range date[:4] {
		if r < '0' || r > '9' {
			return 0
		}
		year = year*10 + int(r-'0')
	}
	return year
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
