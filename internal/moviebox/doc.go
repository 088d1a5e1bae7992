// Package moviebox implements the signed client for the MovieBox
// mobile catalog API: curated listings, search, subject details,
// season extents, playable streams, and subtitle tracks.
package moviebox
