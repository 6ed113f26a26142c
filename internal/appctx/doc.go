// Package appctx implements the application context store: the single,
// process-wide map of shared services and state that modules and actions
// read from.
//
// The store is built exactly once, before any module loads, and is sealed
// from that point on. Top-level keys can no longer be added, removed, or
// reassigned; nested values keep whatever internal mutability they have,
// so a reactive state container bound into the context stays mutable
// inside while its binding stays fixed.
package appctx
