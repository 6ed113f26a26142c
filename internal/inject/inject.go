package inject

import (
	"context"

	"github.com/vk/appweave/internal/appctx"
	"github.com/vk/appweave/internal/registry"
)

// Props are render-time inputs to a component. On key collision, explicit
// render props win over bind-time defaults (last writer wins at render
// time, not at bind time).
type Props map[string]any

// Bindings is everything a bound component receives when rendered.
type Bindings struct {
	Store   *appctx.Store
	Actions registry.View
	Props   Props
}

// Component is a renderable unit. Rendering mechanics beyond producing a
// value are the concern of the external UI layer.
type Component func(ctx context.Context, b Bindings) (any, error)

// Binder produces bound components for one (store, registry) pair. It never
// mutates either; it only closes over them.
type Binder struct {
	store *appctx.Store
	reg   *registry.Registry
}

// New creates a Binder over the given store and registry.
func New(store *appctx.Store, reg *registry.Registry) *Binder {
	return &Binder{store: store, reg: reg}
}

// Bind wraps a component with the binder's store and registry plus optional
// bind-time default props. Binding is pure: two Bind calls with the same
// inputs yield functionally equivalent wrappers.
func (b *Binder) Bind(c Component, defaults Props) *Bound {
	copied := make(Props, len(defaults))
	for key, val := range defaults {
		copied[key] = val
	}
	return &Bound{binder: b, component: c, defaults: copied}
}

// Bound is a component pre-supplied with its bindings.
type Bound struct {
	binder    *Binder
	component Component
	defaults  Props
}

// Render invokes the component. The action view is resolved here, at render
// time, so a route bound by an early module sees actions that later modules
// registered afterwards.
func (b *Bound) Render(ctx context.Context, props Props) (any, error) {
	merged := make(Props, len(b.defaults)+len(props))
	for key, val := range b.defaults {
		merged[key] = val
	}
	for key, val := range props {
		merged[key] = val
	}
	return b.component(ctx, Bindings{
		Store:   b.binder.store,
		Actions: b.binder.reg.Resolve(),
		Props:   merged,
	})
}
