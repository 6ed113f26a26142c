// Package inject implements the dependency-injection binding between the
// composition core and UI-facing components.
//
// A Binder closes over the context store and the action registry. Binding a
// component produces a wrapper that, when rendered, receives the store, a
// lazily resolved view of the merged actions, and render-time props merged
// over bind-time defaults. Decoupling what a component needs from how it
// obtains it lets components be authored and swapped without threading the
// store and registry through every call site.
package inject
