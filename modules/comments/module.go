// Package comments contributes the `comments` action namespace and the
// comment-creation route. Its route component invokes posts.get through the
// render-time action view before accepting a comment, which exercises
// cross-module action resolution.
package comments

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
	Namespace = "comments"

	// StoreKey is the context key the mutable comment store is bound under.
	StoreKey = "comments"
)

// New builds the comments module descriptor.
func New(r router.Registrar) module.Descriptor {
	return module.Descriptor{
		Name: "comments",
		Actions: []registry.Contribution{{
			Namespace: Namespace,
			Actions: registry.ActionSet{
				"create": Create,
				"list":   List,
			},
		}},
		Routes: func(bind *inject.Binder) error {
			r.Register(http.MethodPost, "/posts/:id/comments", bind.Bind(createComponent, inject.Props{"author": "anonymous"}))
			return nil
		},
	}
}

// storeFrom pulls the mutable comment store out of the sealed context.
func storeFrom(appStore *appctx.Store) (*Store, error) {
	val, err := appStore.Get(StoreKey)
	if err != nil {
		return nil, err
	}
	s, ok := val.(*Store)
	if !ok {
		return nil, fmt.Errorf("context key %q holds %T, want *comments.Store", StoreKey, val)
	}
	return s, nil
}

// Create is the comments.create action. Arguments: postID, author, text.
func Create(ctx context.Context, appStore *appctx.Store, args ...any) (any, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("comments.create: want (postID, author, text), got %d arguments", len(args))
	}
	postID, ok := args[0].(string)
	if !ok || postID == "" {
		return nil, fmt.Errorf("comments.create: postID must be a non-empty string")
	}
	author, ok := args[1].(string)
	if !ok || author == "" {
		return nil, fmt.Errorf("comments.create: author must be a non-empty string")
	}
	text, ok := args[2].(string)
	if !ok || text == "" {
		return nil, fmt.Errorf("comments.create: text must be a non-empty string")
	}

	s, err := storeFrom(appStore)
	if err != nil {
		return nil, err
	}
	c := Comment{ID: uuid.NewString(), PostID: postID, Author: author, Text: text, CreatedAt: timeNow()}
	s.Add(c)
	ctxlog.FromContext(ctx).Debug("Comment created.", "id", c.ID, "post_id", c.PostID)
	return c, nil
}

// List is the comments.list action. Arguments: postID.
func List(ctx context.Context, appStore *appctx.Store, args ...any) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("comments.list: want (postID), got %d arguments", len(args))
	}
	postID, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("comments.list: postID must be a string")
	}
	s, err := storeFrom(appStore)
	if err != nil {
		return nil, err
	}
	return s.List(postID), nil
}

// createComponent validates the target post through posts.get, then records
// the comment.
func createComponent(ctx context.Context, b inject.Bindings) (any, error) {
	postID, ok := b.Props["id"].(string)
	if !ok || postID == "" {
		return nil, fmt.Errorf("missing post id")
	}
	if _, err := b.Actions.Invoke(ctx, b.Store, "posts", "get", postID); err != nil {
		return nil, err
	}

	author, _ := b.Props["author"].(string)
	text, _ := b.Props["text"].(string)
	return b.Actions.Invoke(ctx, b.Store, Namespace, "create", postID, author, text)
}
