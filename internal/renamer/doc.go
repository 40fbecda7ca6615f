// Package renamer walks a directory tree and renames episode files to the
// canonical "<pattern> SxxEyy<ext>" form.
//
// Traversal is synchronous and depth-first. Each directory is listed once in
// the order the filesystem returns entries, entries are classified with
// Lstat (symlinks are never followed), and only regular files carrying a known
// video extension are passed to the episode tag extractor. Every rename needs
// an approval from the injected Approver unless auto-approve is set.
//
// Failures are scoped to the smallest unit of work: a missing root directory
// fails the whole call, while unreadable entries, unopenable subdirectories
// and failed renames are logged, recorded in the Summary and skipped.
package renamer
