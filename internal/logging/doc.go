// Package logging wraps log/slog with the handlers and typed attribute
// helpers used across moviebox. Diagnostic output defaults to stderr so
// the JSON document emitted on stdout stays machine readable.
package logging
