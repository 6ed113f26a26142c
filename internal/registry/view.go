package registry

import (
	"context"

	"github.com/vk/appweave/internal/appctx"
)

// View is a merged snapshot of the registry, keyed by namespace then action
// name. It is a fresh copy per Resolve call: mutating a View never affects
// the registry it came from.
type View map[string]ActionSet

// Resolve returns the merged view of every registered namespace.
func (r *Registry) Resolve() View {
	r.mu.RLock()
	defer r.mu.RUnlock()

	view := make(View, len(r.namespaces))
	for namespace, set := range r.namespaces {
		copied := make(ActionSet, len(set))
		for name, fn := range set {
			copied[name] = fn
		}
		view[namespace] = copied
	}
	return view
}

// Lookup returns the named action or an *UnknownActionError.
func (v View) Lookup(namespace, action string) (Action, error) {
	set, ok := v[namespace]
	if !ok {
		return nil, &UnknownActionError{Namespace: namespace}
	}
	fn, ok := set[action]
	if !ok {
		return nil, &UnknownActionError{Namespace: namespace, Action: action}
	}
	return fn, nil
}

// Invoke looks up an action in the view and calls it with the store
// prepended to args.
func (v View) Invoke(ctx context.Context, store *appctx.Store, namespace, action string, args ...any) (any, error) {
	fn, err := v.Lookup(namespace, action)
	if err != nil {
		return nil, err
	}
	return fn(ctx, store, args...)
}
