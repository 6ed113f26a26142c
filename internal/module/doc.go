// Package module defines the descriptor a module hands to the application
// loader: the namespaced actions it contributes, its route-registration
// hook, and its one-shot load hook. All three contributions are optional;
// an absent one is a no-op for that phase.
package module
