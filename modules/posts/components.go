package posts

import (
	"context"
	"fmt"

	"github.com/vk/appweave/internal/inject"
)

// listComponent renders the post listing.
func listComponent(ctx context.Context, b inject.Bindings) (any, error) {
	return b.Actions.Invoke(ctx, b.Store, Namespace, "list")
}

// showComponent renders one post. The comments lookup resolves against the
// render-time action view, so it finds the comments namespace even though
// that module loads after this one.
func showComponent(ctx context.Context, b inject.Bindings) (any, error) {
	id, ok := b.Props["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("missing post id")
	}
	post, err := b.Actions.Invoke(ctx, b.Store, Namespace, "get", id)
	if err != nil {
		return nil, err
	}

	out := map[string]any{"post": post}
	if withComments, _ := b.Props["comments"].(bool); withComments {
		comments, err := b.Actions.Invoke(ctx, b.Store, "comments", "list", id)
		if err != nil {
			return nil, err
		}
		out["comments"] = comments
	}
	return out, nil
}

// createComponent renders the post-creation endpoint.
func createComponent(ctx context.Context, b inject.Bindings) (any, error) {
	title, _ := b.Props["title"].(string)
	body, _ := b.Props["body"].(string)
	return b.Actions.Invoke(ctx, b.Store, Namespace, "create", title, body)
}
