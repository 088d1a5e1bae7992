// Package cinemeta fetches canonical metadata bundles from the community
// metadata mirror, keyed by IMDb identifier. All lookups are best-effort
// enrichment; callers treat failures as "no data".
package cinemeta
