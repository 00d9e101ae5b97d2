package config

import (
	"context"
)

// Loader is the interface for a format-specific manifest loader. Load reads
// every manifest reachable from the given paths (files or directories) and
// translates them into the format-agnostic model.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// Merge folds other's components into m. Later definitions of the same
// component name win whole; partial merges would hide authoring mistakes.
func (m *Model) Merge(other *Model) {
	if m.Components == nil {
		m.Components = make(map[string]*ComponentDefinition)
	}
	for name, def := range other.Components {
		m.Components[name] = def
	}
}
