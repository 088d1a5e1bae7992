// Package tmdb provides a minimal client for The Movie Database REST API:
// the three search kinds used by title reconciliation, detail lookups with
// external cross-reference ids, and logo image listings.
package tmdb
