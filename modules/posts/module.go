// Package posts contributes the `posts` action namespace, the /posts
// routes, and a load hook that seeds initial content. It is the reference
// content module of the application.
package posts

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/vk/appweave/internal/appctx"
	"github.com/vk/appweave/internal/ctxlog"
	"github.com/vk/appweave/internal/inject"
	"github.com/vk/appweave/internal/module"
	"github.com/vk/appweave/internal/registry"
	"github.com/vk/appweave/internal/router"
)

const (
	// Namespace is the action namespace this module claims.
	Namespace = "posts"

	// StoreKey is the context key the mutable post store is bound under.
	StoreKey = "posts"
)

// New builds the posts module descriptor. The registrar is captured here,
// at construction; the loader hands the routes hook only the binder.
func New(r router.Registrar) module.Descriptor {
	return module.Descriptor{
		Name: "posts",
		Actions: []registry.Contribution{{
			Namespace: Namespace,
			Actions: registry.ActionSet{
				"create": Create,
				"list":   List,
				"get":    Get,
			},
		}},
		Routes: func(bind *inject.Binder) error {
			r.Register(http.MethodGet, "/posts", bind.Bind(listComponent, nil))
			r.Register(http.MethodGet, "/posts/:id", bind.Bind(showComponent, inject.Props{"comments": true}))
			r.Register(http.MethodPost, "/posts", bind.Bind(createComponent, nil))
			return nil
		},
		Load: seedContent,
	}
}

// storeFrom pulls the mutable post store out of the sealed context.
func storeFrom(appStore *appctx.Store) (*Store, error) {
	val, err := appStore.Get(StoreKey)
	if err != nil {
		return nil, err
	}
	s, ok := val.(*Store)
	if !ok {
		return nil, fmt.Errorf("context key %q holds %T, want *posts.Store", StoreKey, val)
	}
	return s, nil
}

// Create is the posts.create action. Arguments: title, body.
func Create(ctx context.Context, appStore *appctx.Store, args ...any) (any, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("posts.create: want (title, body), got %d arguments", len(args))
	}
	title, ok := args[0].(string)
	if !ok || title == "" {
		return nil, fmt.Errorf("posts.create: title must be a non-empty string")
	}
	body, ok := args[1].(string)
	if !ok {
		return nil, fmt.Errorf("posts.create: body must be a string")
	}

	s, err := storeFrom(appStore)
	if err != nil {
		return nil, err
	}
	p := Post{ID: uuid.NewString(), Title: title, Body: body, CreatedAt: timeNow()}
	s.Add(p)
	ctxlog.FromContext(ctx).Debug("Post created.", "id", p.ID, "title", p.Title)
	return p, nil
}

// List is the posts.list action. No arguments.
func List(ctx context.Context, appStore *appctx.Store, args ...any) (any, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("posts.list: want no arguments, got %d", len(args))
	}
	s, err := storeFrom(appStore)
	if err != nil {
		return nil, err
	}
	return s.List(), nil
}

// Get is the posts.get action. Arguments: id.
func Get(ctx context.Context, appStore *appctx.Store, args ...any) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("posts.get: want (id), got %d arguments", len(args))
	}
	id, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("posts.get: id must be a string")
	}
	s, err := storeFrom(appStore)
	if err != nil {
		return nil, err
	}
	p, ok := s.Get(id)
	if !ok {
		return nil, fmt.Errorf("post %q: %w", id, router.ErrNotFound)
	}
	return p, nil
}

// seedContent is the deferred load hook: it writes a first post into the
// store when it is empty. Idempotent, since load hooks are not rolled back.
func seedContent(ctx context.Context, appStore *appctx.Store, actions registry.View) error {
	s, err := storeFrom(appStore)
	if err != nil {
		return err
	}
	if s.Len() > 0 {
		return nil
	}
	_, err = actions.Invoke(ctx, appStore, Namespace, "create",
		"Hello, appweave", "This post was seeded by the posts module load hook.")
	return err
}
