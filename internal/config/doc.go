// Package config loads, normalizes, and validates jellyname configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours environment fallbacks such as JELLYNAME_LOG_LEVEL.
// Command-line flags override the values resolved here; the traversal engine
// itself never reads configuration files.
package config
