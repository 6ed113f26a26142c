// Package config defines the format-agnostic model of the application
// configuration (the context-seed entries and the serving surface) and the
// Loader interface a format-specific implementation satisfies.
package config
