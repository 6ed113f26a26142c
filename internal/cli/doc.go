// Package cli parses command-line arguments into the application
// configuration, decoupled from the entrypoint so parsing is testable.
package cli
