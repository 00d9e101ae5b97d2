package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/signalgraph/internal/config"
	"github.com/vk/signalgraph/internal/ctxlog"
	"github.com/vk/signalgraph/internal/fsutil"
	"github.com/vk/signalgraph/internal/schema"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every .hcl manifest reachable from the given paths (single
// files or directories, searched recursively) and translates them into the
// unified model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := &config.Model{Components: make(map[string]*config.ComponentDefinition)}
	parser := hclparse.NewParser()

	for _, path := range paths {
		files, err := manifestFiles(path)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			logger.Warn("No .hcl manifest files found in path.", "path", path)
			continue
		}
		for _, file := range files {
			hclFile, diags := parser.ParseHCLFile(file)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
			}

			var manifest schema.ManifestConfig
			if diags := gohcl.DecodeBody(hclFile.Body, nil, &manifest); diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode manifest %s: %w", file, diags)
			}

			part, err := l.translateManifest(&manifest)
			if err != nil {
				return nil, fmt.Errorf("manifest %s: %w", file, err)
			}
			model.Merge(part)
			logger.Debug("Loaded manifest file.", "file", file, "components", len(manifest.Components))
		}
	}

	logger.Info("Manifests loaded.", "components", len(model.Components))
	return model, nil
}

// manifestFiles expands a path argument into the manifest files beneath it.
func manifestFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access manifest path %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	return fsutil.FindFilesByExtension(path, ".hcl")
}
