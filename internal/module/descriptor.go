package module

import (
	"context"
	"fmt"

	"github.com/vk/appweave/internal/appctx"
	"github.com/vk/appweave/internal/inject"
	"github.com/vk/appweave/internal/registry"
)

// RoutesFunc performs a module's route registration. It receives only the
// binder; the module reaches its router through whatever reference it
// captured at construction. The composition core never calls the router
// directly.
type RoutesFunc func(bind *inject.Binder) error

// LoadFunc is a module's one-shot initialization hook. It runs after every
// module has registered, with the final merged action view.
type LoadFunc func(ctx context.Context, store *appctx.Store, actions registry.View) error

// Descriptor declares what a module contributes to the application.
// Contributions in Actions are registered in the order listed; ordering is
// explicit rather than map-derived so duplicate detection is deterministic.
type Descriptor struct {
	Name    string
	Actions []registry.Contribution
	Routes  RoutesFunc
	Load    LoadFunc
}

// Validate checks the descriptor's structure before any of it takes effect.
// It replaces ad hoc property probing with an explicit shape check.
func (d Descriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("module descriptor: name must not be empty")
	}
	seen := make(map[string]struct{}, len(d.Actions))
	for _, c := range d.Actions {
		if c.Namespace == "" {
			return fmt.Errorf("module %q: namespace must not be empty", d.Name)
		}
		if _, dup := seen[c.Namespace]; dup {
			return fmt.Errorf("module %q: namespace %q declared twice", d.Name, c.Namespace)
		}
		seen[c.Namespace] = struct{}{}
		for name, fn := range c.Actions {
			if name == "" {
				return fmt.Errorf("module %q, namespace %q: action name must not be empty", d.Name, c.Namespace)
			}
			if fn == nil {
				return fmt.Errorf("module %q, namespace %q: action %q is nil", d.Name, c.Namespace, name)
			}
		}
	}
	return nil
}
