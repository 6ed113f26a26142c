package app

import (
	"context"
	"fmt"

	"github.com/vk/appweave/internal/ctxlog"
	"github.com/vk/appweave/internal/module"
)

// LoadModule registers one module. Valid only before Init. The module's
// action namespaces commit all-or-nothing: on a namespace collision nothing
// of the module takes effect — no actions, no routes, no deferred hook.
// Routes are invoked immediately with the binder; the load hook is deferred
// until Init.
func (a *App) LoadModule(d module.Descriptor) error {
	if a.state >= StateInitialized {
		return &LifecycleError{Op: "LoadModule", State: a.state}
	}
	if err := d.Validate(); err != nil {
		return err
	}

	ctx := ctxlog.WithLogger(context.Background(), a.logger)
	if len(d.Actions) > 0 {
		if err := a.registry.RegisterAll(ctx, d.Name, d.Actions); err != nil {
			return fmt.Errorf("module %q: %w", d.Name, err)
		}
	}

	if d.Routes != nil {
		if err := d.Routes(a.binder); err != nil {
			return fmt.Errorf("module %q: route registration failed: %w", d.Name, err)
		}
	}

	if d.Load != nil {
		a.deferred = append(a.deferred, deferredHook{module: d.Name, fn: d.Load})
	}

	a.state = StateLoading
	a.loaded = append(a.loaded, d.Name)
	a.logger.Debug("Module loaded.", "module", d.Name, "namespaces", len(d.Actions), "deferred_hooks", len(a.deferred))
	return nil
}

// Init transitions the app to initialized and runs every deferred load hook
// exactly once, strictly in module load order, with the final merged action
// view. A failing hook aborts initialization: the error propagates and the
// remaining hooks never run. There is no rollback of earlier hooks' side
// effects, so hooks should stay idempotent or side-effect-light.
func (a *App) Init(ctx context.Context) error {
	if a.state >= StateInitialized {
		return &AlreadyInitializedError{}
	}
	a.state = StateInitialized

	ctx = ctxlog.WithLogger(ctx, a.logger)
	view := a.registry.Resolve()
	for _, hook := range a.deferred {
		a.logger.Debug("Running deferred load hook.", "module", hook.module)
		if err := hook.fn(ctx, a.store, view); err != nil {
			return fmt.Errorf("module %q: load hook failed: %w", hook.module, err)
		}
	}
	a.deferred = nil

	a.logger.Info("Application initialized.", "modules", len(a.loaded), "namespaces", a.registry.Namespaces())
	return nil
}
