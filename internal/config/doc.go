// Package config loads, normalizes, and validates the moviebox TOML
// configuration. Defaults cover every field so the CLI runs without a
// config file; a file only overrides what it sets.
package config
