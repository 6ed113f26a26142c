// Package app contains the module loader: the App struct owning the context
// store, the action registry, and the binder, plus the lifecycle state
// machine (constructed, loading, initialized, running) that governs module
// registration and one-time deferred initialization. It is decoupled from
// any specific entrypoint like a CLI or server harness.
package app
