// Package episodetag extracts season/episode markers from media file names and
// formats the canonical names media servers expect.
//
// Extraction is a byte-wise scan for an uppercase S and an uppercase E, each
// immediately followed by a run of decimal digits. Only a complete pair counts
// as a tag; a lone season or episode is treated exactly like no match. The
// package performs no I/O.
package episodetag
