package config

import "context"

// Loader is the interface for a format-specific configuration loader. Load
// reads configuration from the given paths (files or directories) and
// translates it into the format-agnostic model.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Model, error)
}
