package yamlcfg

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/signalgraph/internal/config"
	"github.com/vk/signalgraph/internal/ctxlog"
	"github.com/vk/signalgraph/internal/fsutil"
)

// manifestDoc mirrors the top level of a YAML manifest file.
type manifestDoc struct {
	Components []*componentDoc `yaml:"components"`
}

// componentDoc mirrors one component entry.
type componentDoc struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Children    []*childDoc `yaml:"children"`
	Traits      []*traitDoc `yaml:"traits"`
	Links       []*linkDoc  `yaml:"links"`
}

type childDoc struct {
	Identifier string         `yaml:"identifier"`
	Type       string         `yaml:"type"`
	Mount      []string       `yaml:"mount"`
	Attrs      map[string]any `yaml:"attrs"`
}

type traitDoc struct {
	Type string `yaml:"type"`
	Path string `yaml:"path"`
}

type linkDoc struct {
	From    string `yaml:"from"`
	To      string `yaml:"to"`
	Shallow bool   `yaml:"shallow"`
	Name    string `yaml:"name"`
}

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new YAML manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every .yaml manifest reachable from the given paths (single
// files or directories, searched recursively) and translates them into the
// unified model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := &config.Model{Components: make(map[string]*config.ComponentDefinition)}

	for _, path := range paths {
		files, err := manifestFiles(path)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			logger.Warn("No .yaml manifest files found in path.", "path", path)
			continue
		}
		for _, file := range files {
			raw, err := os.ReadFile(file)
			if err != nil {
				return nil, fmt.Errorf("cannot read manifest %s: %w", file, err)
			}

			var doc manifestDoc
			if err := yaml.Unmarshal(raw, &doc); err != nil {
				return nil, fmt.Errorf("failed to decode manifest %s: %w", file, err)
			}

			part, err := translateManifest(&doc)
			if err != nil {
				return nil, fmt.Errorf("manifest %s: %w", file, err)
			}
			model.Merge(part)
			logger.Debug("Loaded manifest file.", "file", file, "components", len(doc.Components))
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
	return fsutil.FindFilesByExtension(path, ".yaml")
}
