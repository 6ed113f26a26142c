package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vk/appweave/internal/appctx"
	"github.com/vk/appweave/internal/ctxlog"
)

// Action is a single namespaced business-logic function. The context store
// is passed explicitly as the second argument; actions must not capture
// mutable state outside the store and their own arguments.
type Action func(ctx context.Context, store *appctx.Store, args ...any) (any, error)

// ActionSet is a flat mapping of action name to Action within one namespace.
type ActionSet map[string]Action

// Contribution is one namespace worth of actions offered by a module.
type Contribution struct {
	Namespace string
	Actions   ActionSet
}

// Registry holds all registered action namespaces for a single application
// instance.
type Registry struct {
	mu         sync.RWMutex
	namespaces map[string]ActionSet
	owners     map[string]string // namespace -> module that claimed it
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		namespaces: make(map[string]ActionSet),
		owners:     make(map[string]string),
	}
}

// Register stores one namespace of actions on behalf of module. It fails
// with a *DuplicateNamespaceError when the namespace is already claimed and
// leaves the registry untouched on any failure.
func (r *Registry) Register(ctx context.Context, module, namespace string, actions ActionSet) error {
	return r.RegisterAll(ctx, module, []Contribution{{Namespace: namespace, Actions: actions}})
}

// RegisterAll stores every contribution of a module atomically: all
// namespaces are validated against the current registry (and against each
// other) before any of them is committed. A module whose contributions fail
// validation registers nothing.
func (r *Registry) RegisterAll(ctx context.Context, module string, contributions []Contribution) error {
	logger := ctxlog.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(contributions))
	for _, c := range contributions {
		if c.Namespace == "" {
			return fmt.Errorf("module %q: namespace must not be empty", module)
		}
		if owner, exists := r.owners[c.Namespace]; exists {
			return &DuplicateNamespaceError{Namespace: c.Namespace, ClaimedBy: owner}
		}
		if _, dup := seen[c.Namespace]; dup {
			return &DuplicateNamespaceError{Namespace: c.Namespace, ClaimedBy: module}
		}
		seen[c.Namespace] = struct{}{}
		for name, fn := range c.Actions {
			if name == "" {
				return fmt.Errorf("module %q, namespace %q: action name must not be empty", module, c.Namespace)
			}
			if fn == nil {
				return fmt.Errorf("module %q, namespace %q: action %q is nil", module, c.Namespace, name)
			}
		}
	}

	for _, c := range contributions {
		set := make(ActionSet, len(c.Actions))
		for name, fn := range c.Actions {
			set[name] = fn
		}
		r.namespaces[c.Namespace] = set
		r.owners[c.Namespace] = module
		logger.Debug("Registered action namespace.", "module", module, "namespace", c.Namespace, "actions", len(set))
	}
	return nil
}

// Invoke looks up an action and calls it with the store prepended to args.
// A missing namespace or action is an *UnknownActionError.
func (r *Registry) Invoke(ctx context.Context, store *appctx.Store, namespace, action string, args ...any) (any, error) {
	r.mu.RLock()
	set, ok := r.namespaces[namespace]
	var fn Action
	if ok {
		fn = set[action]
	}
	r.mu.RUnlock()

	if !ok {
		return nil, &UnknownActionError{Namespace: namespace}
	}
	if fn == nil {
		return nil, &UnknownActionError{Namespace: namespace, Action: action}
	}
	return fn(ctx, store, args...)
}

// Namespaces returns the registered namespaces in sorted order.
func (r *Registry) Namespaces() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.namespaces))
	for name := range r.namespaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Owner returns the module that claimed a namespace.
func (r *Registry) Owner(namespace string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owner, ok := r.owners[namespace]
	return owner, ok
}
