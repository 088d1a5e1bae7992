package identification

import (
	"regexp"
	"strings"
)

// noiseTokens are removed from every title before comparison. The list is
// data, not control flow, so it can be tuned without touching Normalize.
var noiseTokens = []string{
	"dub",
	"dubbed",
	"hd",
	"4k",
	"hindi",
	"tamil",
	"telugu",
	"dual audio",
}

// dubTokens is the broader stoplist applied only after an exact pass
// fails; it catches the dub annotations the upstream catalog embeds in
// titles.
var dubTokens = []string{
	"hindi",
	"tamil",
	"telugu",
	"dub",
	"dubbed",
	"dubbed audio",
	"dual audio",
	"dubbed version",
}

var (
	bracketSpanRe = regexp.MustCompile(`\[.*?\]`)
	parenSpanRe   = regexp.MustCompile(`\(.*?\)`)
	noiseTokenRe  = regexp.MustCompile(`(?i)\b(` + strings.Join(noiseTokens, "|") + `)\b`)
	dubTokenRe    = regexp.MustCompile(`(?i)\b(` + strings.Join(dubTokens, "|") + `)\b`)
	punctRe       = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	spaceRunRe    = regexp.MustCompile(`\s+`)
)

// Normalize produces the comparison key for a raw catalog title: bracket
// and parenthetical spans removed, noise tokens dropped, lowercased,
// punctuation collapsed to single spaces, trimmed. Total function; empty
// input yields empty output.
func Normalize(raw string) string {
	text := bracketSpanRe.ReplaceAllString(raw, " ")
	text = parenSpanRe.ReplaceAllString(text, " ")
	text = noiseTokenRe.ReplaceAllString(text, " ")
	text = strings.ToLower(strings.TrimSpace(text))
	text = strings.ReplaceAll(text, ":", " ")
	text = punctRe.ReplaceAllString(text, " ")
	text = spaceRunRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// StripDubTokens removes the broader dub/language stoplist from an
// already-normalized title and collapses whitespace. Returns the input
// unchanged in meaning when no token matched.
func StripDubTokens(normalized string) string {
	text := dubTokenRe.ReplaceAllString(normalized, " ")
	text = spaceRunRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// TokenOverlap reports whether the whitespace token sets of a and b
// intersect in at least three quarters of the smaller set (integer floor,
// minimum one token). False when either set is empty. Symmetric.
func TokenOverlap(a, b string) bool {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return false
	}
	smaller := len(setA)
	if len(setB) < smaller {
		smaller = len(setB)
	}
	needed := smaller * 3 / 4
	if needed < 1 {
		needed = 1
	}
	intersection := 0
	for token := range setA {
		if _, ok := setB[token]; ok {
			intersection++
		}
	}
	return intersection >= needed
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		set[field] = struct{}{}
	}
	return set
}
