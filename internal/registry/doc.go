// Package registry provides the central "glue" for the module system.
//
// The Registry accumulates the namespaced action sets that modules
// contribute during loading. Namespaces are globally unique: a collision is
// a load-time configuration error, reported with the module that first
// claimed the name. Registration commits all-or-nothing per call, so a
// failed call leaves no partial state behind.
//
// After loading completes the registry is no longer written, which makes
// Resolve and Invoke safe for unsynchronized concurrent use from then on.
package registry
