package identification

import (
	"math"
	"testing"
)

func TestScoreTitleMatch(t *testing.T) {
	candidate := Candidate{ID: 1, Title: "inception"}
	got := Score(candidate, "inception", 0, 0, false, DefaultWeights)
	if got != 50 {
		t.Fatalf("expected title-match score 50, got %v", got)
	}
}

func TestScoreSubstringMatchIsWeaker(t *testing.T) {
	// No shared tokens ("batman" vs "batmans"), but the candidate title
	// is contained in the query.
	candidate := Candidate{ID: 1, Title: "batman"}
	got := Score(candidate, "the batmans return of gotham", 0, 0, false, DefaultWeights)
	if got != 15 {
		t.Fatalf("expected substring score 15, got %v", got)
	}
}

func TestScoreTitleSignalsMutuallyExclusive(t *testing.T) {
	// Token overlap and substring both hold; only the stronger applies.
	candidate := Candidate{ID: 1, Title: "inception"}
	got := Score(candidate, "inception", 0, 0, false, DefaultWeights)
	if got != 50 {
		t.Fatalf("expected 50, not 65, got %v", got)
	}
}

func TestScoreYearMatchAddsExactly35(t *testing.T) {
	candidate := Candidate{ID: 1, Title: "inception", Year: 2010}
	without := Score(candidate, "inception", 0, 0, false, DefaultWeights)
	with := Score(candidate, "inception", 2010, 0, false, DefaultWeights)
	if with-without != 35 {
		t.Fatalf("expected year match to add exactly 35, got %v", with-without)
	}
}

func TestScoreYearMismatchAddsNothing(t *testing.T) {
	candidate := Candidate{ID: 1, Title: "inception", Year: 2011}
	got := Score(candidate, "inception", 2010, 0, false, DefaultWeights)
	if got != 50 {
		t.Fatalf("expected no year contribution, got %v", got)
	}
}

func TestScoreRatingCloseness(t *testing.T) {
	base := Candidate{ID: 1, Title: "inception", Rating: 8.8, HasRating: true}

	if got := Score(base, "inception", 0, 8.5, true, DefaultWeights); got != 60 {
		t.Fatalf("diff 0.3 should add 10, got total %v", got)
	}
	if got := Score(base, "inception", 0, 7.9, true, DefaultWeights); got != 55 {
		t.Fatalf("diff 0.9 should add 5, got total %v", got)
	}
	if got := Score(base, "inception", 0, 6.0, true, DefaultWeights); got != 50 {
		t.Fatalf("diff 2.8 should add nothing, got total %v", got)
	}
}

func TestScoreRatingBoundaries(t *testing.T) {
	base := Candidate{ID: 1, Title: "x", Rating: 7.0, HasRating: true}

	if got := Score(base, "x", 0, 6.5, true, DefaultWeights); got != 60 {
		t.Fatalf("diff exactly 0.5 should add 10, got %v", got)
	}
	if got := Score(base, "x", 0, 6.0, true, DefaultWeights); got != 55 {
		t.Fatalf("diff exactly 1.0 should add 5, got %v", got)
	}
}

func TestScoreIgnoresRatingWithoutCandidateRating(t *testing.T) {
	candidate := Candidate{ID: 1, Title: "inception"}
	if got := Score(candidate, "inception", 0, 8.8, true, DefaultWeights); got != 50 {
		t.Fatalf("expected no rating contribution, got %v", got)
	}
}

func TestScorePopularityCapped(t *testing.T) {
	low := Candidate{ID: 1, Title: "inception", Popularity: 120}
	if got := Score(low, "inception", 0, 0, false, DefaultWeights); math.Abs(got-51.2) > 1e-9 {
		t.Fatalf("expected 50 + 1.2, got %v", got)
	}

	high := Candidate{ID: 1, Title: "inception", Popularity: 9000}
	if got := Score(high, "inception", 0, 0, false, DefaultWeights); got != 55 {
		t.Fatalf("expected popularity capped at 5, got %v", got)
	}
}

func TestScoreFullHouse(t *testing.T) {
	// Title + year + close rating + capped popularity.
	candidate := Candidate{
		ID:         1,
		Title:      "inception",
		Year:       2010,
		Rating:     8.8,
		HasRating:  true,
		Popularity: 1000,
	}
	got := Score(candidate, "inception", 2010, 8.8, true, DefaultWeights)
	if got != 100 {
		t.Fatalf("expected 50+35+10+5 = 100, got %v", got)
	}
}
