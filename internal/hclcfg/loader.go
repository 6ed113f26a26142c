package hclcfg

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/appweave/internal/config"
	"github.com/vk/appweave/internal/ctxlog"
	"github.com/vk/appweave/internal/fsutil"
)

// Loader parses HCL configuration files into the config model.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every .hcl file under the given paths (files or directories)
// and merges them into a single model. A seed entry name declared twice and
// a second `server` block are configuration errors.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	model := &config.Model{Context: make(map[string]cty.Value)}
	parser := hclparse.NewParser()

	for _, path := range paths {
		filePaths, err := collectFiles(path)
		if err != nil {
			return nil, err
		}
		if len(filePaths) == 0 {
			logger.Warn("No .hcl configuration files found in path", "path", path)
			continue
		}

		for _, filePath := range filePaths {
			hclFile, diags := parser.ParseHCLFile(filePath)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
			}

			var root rootSchema
			if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode configuration in %s: %w", filePath, diags)
			}

			if err := mergeFile(model, &root, filePath); err != nil {
				return nil, err
			}
			logger.Debug("Loaded configuration file.", "file", filePath)
		}
	}

	logger.Info("Configuration loaded.", "context_entries", len(model.Context), "server", model.Server != nil)
	return model, nil
}

// mergeFile folds one decoded file into the model, rejecting collisions.
func mergeFile(model *config.Model, root *rootSchema, filePath string) error {
	if root.Context != nil {
		for _, entry := range root.Context.Entries {
			if entry.Name == "" {
				return fmt.Errorf("%s: context entry name must not be empty", filePath)
			}
			if _, exists := model.Context[entry.Name]; exists {
				return fmt.Errorf("%s: context entry %q declared more than once", filePath, entry.Name)
			}
			val, diags := entry.Value.Value(nil)
			if diags.HasErrors() {
				return fmt.Errorf("%s: context entry %q: %w", filePath, entry.Name, diags)
			}
			model.Context[entry.Name] = val
		}
	}
	if root.Server != nil {
		if model.Server != nil {
			return fmt.Errorf("%s: server block declared more than once", filePath)
		}
		model.Server = &config.Server{Addr: root.Server.Addr}
	}
	return nil
}

// collectFiles resolves a path to the .hcl files it denotes.
func collectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat configuration path %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	return fsutil.FindFilesByExtension(path, ".hcl")
}
