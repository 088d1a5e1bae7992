// Package identification reconciles loosely formatted catalog titles
// against TMDB. A raw title is normalized, scored against candidates from
// three search interpretations (multi, tv, movie), and accepted only when
// the best candidate clears a confidence gate. A fallback ladder retries
// with the year omitted and with dub annotations stripped before giving
// up; a miss is an expected outcome, not an error.
package identification
