// Package main provides the entry point for the journal administration service.
// It runs a web server using the Fiber framework that exposes the journal
// settings store (locale-aware key/value configuration per journal) and the
// editor publication API for managing submission version metadata. The
// application uses gorm for data persistence and keeps an append-only
// activity log of every publication change.
package main
