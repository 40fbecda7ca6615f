// Package textutil holds small string helpers shared by the CLI and the
// run lock: file-name sanitization for naming patterns and lowercase tokens
// for lock file names.
package textutil
