package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vk/appweave/internal/appctx"
	"github.com/vk/appweave/internal/config"
	"github.com/vk/appweave/internal/ctxlog"
	"github.com/vk/appweave/internal/inject"
	"github.com/vk/appweave/internal/module"
	"github.com/vk/appweave/internal/registry"
	"github.com/vk/appweave/internal/router"
)

// App encapsulates one composed application: the sealed context store, the
// action registry, the binder handed to module routes hooks, and the
// lifecycle state machine.
type App struct {
	outW   io.Writer
	logger *slog.Logger

	store    *appctx.Store
	registry *registry.Registry
	binder   *inject.Binder

	engine     *gin.Engine
	registrar  router.Registrar
	listenAddr string

	state    State
	loaded   []string
	deferred []deferredHook
}

// deferredHook pairs a module's load hook with its name for diagnostics.
type deferredHook struct {
	module string
	fn     module.LoadFunc
}

// NewApp constructs the application. The context store is built here,
// exactly once, from the configuration's seed entries merged with the
// caller's programmatic seed; a key claimed by both is a configuration
// error. No module is loaded yet.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, seed appctx.Initializer) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model := &config.Model{}
	if loader != nil && appConfig.ConfigPath != "" {
		loaded, err := loader.Load(ctx, appConfig.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		model = loaded
		logger.Debug("Configuration loaded and translated into unified model.")
	}

	entries, err := buildContextEntries(model, seed)
	if err != nil {
		return nil, err
	}
	store := appctx.Create(func() map[string]any { return entries })
	logger.Debug("Context store built and sealed.", "entries", store.Len())

	reg := registry.New()
	binder := inject.New(store, reg)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger))
	engine.GET("/health", healthHandler)

	listenAddr := appConfig.ListenAddr
	if listenAddr == "" && model.Server != nil {
		listenAddr = model.Server.Addr
	}
	if listenAddr == "" {
		listenAddr = ":8080"
	}

	return &App{
		outW:       outW,
		logger:     logger,
		store:      store,
		registry:   reg,
		binder:     binder,
		engine:     engine,
		registrar:  router.NewGin(engine),
		listenAddr: listenAddr,
		state:      StateConstructed,
	}, nil
}

// buildContextEntries merges configuration seed entries with the
// programmatic initializer.
func buildContextEntries(model *config.Model, seed appctx.Initializer) (map[string]any, error) {
	entries := map[string]any{}
	if seed != nil {
		for key, val := range seed() {
			entries[key] = val
		}
	}
	configSeed, err := model.ContextSeed()
	if err != nil {
		return nil, fmt.Errorf("failed to build context seed: %w", err)
	}
	for key, val := range configSeed {
		if _, exists := entries[key]; exists {
			return nil, fmt.Errorf("context key %q bound by both configuration and programmatic seed", key)
		}
		entries[key] = val
	}
	return entries, nil
}

// requestLogger logs every served request against the app's logger.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Request = c.Request.WithContext(ctxlog.WithLogger(c.Request.Context(), logger))
		c.Next()
		logger.Debug("Request served.",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// State returns the current lifecycle state.
func (a *App) State() State {
	return a.state
}

// Store returns the sealed context store.
func (a *App) Store() *appctx.Store {
	return a.store
}

// Registry returns the application's action registry. This is primarily
// for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Binder returns the injection binder bound to this app's store and
// registry.
func (a *App) Binder() *inject.Binder {
	return a.binder
}

// Router returns the registrar module routes hooks register against.
func (a *App) Router() router.Registrar {
	return a.registrar
}

// LoadedModules returns the names of loaded modules in load order.
func (a *App) LoadedModules() []string {
	out := make([]string, len(a.loaded))
	copy(out, a.loaded)
	return out
}
