package identification

import "strings"

// Weights holds the additive scoring contributions. The values are a
// hand-tuned heuristic carried from the upstream client; they live in a
// table so tests and callers can tune them independently of control flow.
type Weights struct {
	TitleMatch        float64
	TitleSubstring    float64
	YearMatch         float64
	RatingClose       float64
	RatingLoose       float64
	RatingCloseDiff   float64
	RatingLooseDiff   float64
	PopularityDivisor float64
	PopularityCap     float64
}

// DefaultWeights reproduces the upstream scoring table.
var DefaultWeights = Weights{
	TitleMatch:        50,
	TitleSubstring:    15,
	YearMatch:         35,
	RatingClose:       10,
	RatingLoose:       5,
	RatingCloseDiff:   0.5,
	RatingLooseDiff:   1.0,
	PopularityDivisor: 100,
	PopularityCap:     5,
}

// Candidate is one search result reduced to its scoring signals. It only
// lives for the duration of a single pass.
type Candidate struct {
	ID         int64
	Title      string // lowercased display title used for comparison
	IsTV       bool
	Year       int // 0 when unknown
	Rating     float64
	HasRating  bool
	Popularity float64
}

// Score computes the additive match score of a candidate against a
// normalized title and optional target year and rating. Title-match and
// substring-match are mutually exclusive; the remaining signals are
// independent additions.
func Score(candidate Candidate, normalizedTitle string, targetYear int, targetRating float64, hasTargetRating bool, w Weights) float64 {
	score := 0.0

	switch {
	case TokenOverlap(candidate.Title, normalizedTitle):
		score += w.TitleMatch
	case candidate.Title != "" && normalizedTitle != "" &&
		(strings.Contains(candidate.Title, normalizedTitle) || strings.Contains(normalizedTitle, candidate.Title)):
		score += w.TitleSubstring
	}

	if candidate.Year > 0 && targetYear > 0 && candidate.Year == targetYear {
		score += w.YearMatch
	}

	if hasTargetRating && candidate.HasRating {
		diff := candidate.Rating - targetRating
		if diff < 0 {
			diff = -diff
		}
		switch {
		case diff <= w.RatingCloseDiff:
			score += w.RatingClose
		case diff <= w.RatingLooseDiff:
			score += w.RatingLoose
		}
	}

	if candidate.Popularity > 0 {
		bonus := candidate.Popularity / w.PopularityDivisor
		if bonus > w.PopularityCap {
			bonus = w.PopularityCap
		}
		score += bonus
	}

	return score
}
