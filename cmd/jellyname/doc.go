// Package main hosts the jellyname CLI entrypoint and command graph.
//
// The root command resolves the naming pattern, target directory and flags,
// merges them with the TOML configuration, takes the per-directory run lock
// and hands the result to the renamer engine. Subcommands scaffold and
// validate configuration files.
//
// Keep this package lean: traversal and naming rules live in internal
// packages so they can be exercised without a terminal.
package main
