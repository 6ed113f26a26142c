// Package realtime contributes the `realtime` action namespace: publishing
// application events to a socket.io hub whose URL is bound in the
// application context. It registers no routes.
package realtime

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/vk/appweave/internal/appctx"
	"github.com/vk/appweave/internal/ctxlog"
	"github.com/vk/appweave/internal/module"
	"github.com/vk/appweave/internal/registry"
)

const (
	// Namespace is the action namespace this module claims.
	Namespace = "realtime"

	// HubURLKey is the context key holding the hub URL. When absent,
	// publishing is disabled.
	HubURLKey = "realtime_hub_url"
)

const publishTimeout = 10 * time.Second

// New builds the realtime module descriptor.
func New() module.Descriptor {
	return module.Descriptor{
		Name: "realtime",
		Actions: []registry.Contribution{{
			Namespace: Namespace,
			Actions: registry.ActionSet{
				"publish": Publish,
			},
		}},
		Load: checkHub,
	}
}

// HubURL returns the validated hub URL from the context.
func HubURL(appStore *appctx.Store) (*url.URL, error) {
	val, err := appStore.Get(HubURLKey)
	if err != nil {
		return nil, err
	}
	raw, ok := val.(string)
	if !ok {
		return nil, fmt.Errorf("context key %q holds %T, want string", HubURLKey, val)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid hub URL %q: %w", raw, err)
	}
	switch parsed.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("invalid hub URL %q: unsupported scheme %q", raw, parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("invalid hub URL %q: missing host", raw)
	}
	return parsed, nil
}

// checkHub is the deferred load hook. A missing hub URL means publishing is
// disabled, not broken; a malformed one is a configuration error.
func checkHub(ctx context.Context, appStore *appctx.Store, _ registry.View) error {
	logger := ctxlog.FromContext(ctx)
	if !appStore.Has(HubURLKey) {
		logger.Warn("Realtime hub URL not configured, publishing disabled.", "key", HubURLKey)
		return nil
	}
	hub, err := HubURL(appStore)
	if err != nil {
		return err
	}
	logger.Debug("Realtime hub configured.", "hub", hub.String())
	return nil
}

// opResult carries the publish outcome through the done channel.
type opResult struct {
	value any
	err   error
}

// Publish is the realtime.publish action. Arguments: event name, followed
// by an optional payload. It connects to the hub, emits the event, and
// disconnects.
func Publish(ctx context.Context, appStore *appctx.Store, args ...any) (any, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, fmt.Errorf("realtime.publish: want (event[, payload]), got %d arguments", len(args))
	}
	event, ok := args[0].(string)
	if !ok || event == "" {
		return nil, fmt.Errorf("realtime.publish: event must be a non-empty string")
	}
	var payload any
	if len(args) == 2 {
		payload = args[1]
	}

	hub, err := HubURL(appStore)
	if err != nil {
		return nil, err
	}

	logger := ctxlog.FromContext(ctx).With("action", "realtime.publish", "hub", hub.Host, "event", event)
	logger.Debug("Handler started")
	defer logger.Debug("Handler finished")

	opCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	baseURL := fmt.Sprintf("%s://%s", hub.Scheme, hub.Host)
	opts := socket.DefaultOptions()
	if hub.Path != "" {
		opts.SetPath(hub.Path)
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket("/", opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		io.Disconnect()
	}()

	done := make(chan opResult, 1)

	io.On(types.EventName("connect"), func(...any) {
		logger.Debug("Connected to hub", "sid", io.Id())
		if payload != nil {
			io.Emit(event, payload)
		} else {
			io.Emit(event)
		}
		done <- opResult{value: map[string]any{"event": event, "published": true}}
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				done <- opResult{err: e}
				return
			}
		}
		done <- opResult{err: fmt.Errorf("connection to hub failed")}
	})

	io.Connect()

	select {
	case <-opCtx.Done():
		return nil, fmt.Errorf("timed out publishing %q to hub", event)
	case res := <-done:
		return res.value, res.err
	}
}
