// Package bitsearch searches a single torrent index site and emits normalized
// result records. It fetches search result pages, extracts title, magnet link,
// size, seed and leech counts and publish date from the raw page text, and
// forwards each usable record to a sink.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, rod/, sqlite/).
package bitsearch
