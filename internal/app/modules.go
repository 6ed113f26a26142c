package app

import (
	"github.com/vk/appweave/internal/module"
	"github.com/vk/appweave/internal/router"
	"github.com/vk/appweave/modules/comments"
	"github.com/vk/appweave/modules/posts"
	"github.com/vk/appweave/modules/realtime"
)

// CoreDescriptors returns the built-in modules in their required load
// order: posts first, since the comments route validates against posts.get.
func CoreDescriptors(r router.Registrar) []module.Descriptor {
	return []module.Descriptor{
		posts.New(r),
		comments.New(r),
		realtime.New(),
	}
}

// CoreSeed returns the programmatic context entries the built-in modules
// expect: their mutable content stores. Configuration entries merge on top.
func CoreSeed() map[string]any {
	return map[string]any{
		posts.StoreKey:    posts.NewStore(),
		comments.StoreKey: comments.NewStore(),
	}
}
