// Package schema holds the HCL block structures component manifests are
// decoded into. The structures mirror the manifest language one to one; the
// hcl package translates them into the format-agnostic config model.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// ChildBlock represents a `child` block: one declared child of a component.
type ChildBlock struct {
	Identifier string         `hcl:"identifier,label"`
	Type       string         `hcl:"type"`
	Mount      []string       `hcl:"mount,optional"`
	Attrs      hcl.Expression `hcl:"attrs,optional"`
}

// TraitBlock represents a `trait` block: a trait granted to the node at the
// given dotted path, or to the instance root when no path is set.
type TraitBlock struct {
	Type string `hcl:"type,label"`
	Path string `hcl:"path,optional"`
}

// LinkBlock represents a `link` block: an interface-connection between two
// dotted reference paths.
type LinkBlock struct {
	From    string `hcl:"from"`
	To      string `hcl:"to"`
	Shallow bool   `hcl:"shallow,optional"`
	Name    string `hcl:"name,optional"`
}

// ComponentBlock represents a `component` block from a manifest file.
type ComponentBlock struct {
	Name        string        `hcl:"name,label"`
	Description string        `hcl:"description,optional"`
	Children    []*ChildBlock `hcl:"child,block"`
	Traits      []*TraitBlock `hcl:"trait,block"`
	Links       []*LinkBlock  `hcl:"link,block"`
}

// ManifestConfig represents the top-level structure of a manifest file,
// containing all component definitions it declares.
type ManifestConfig struct {
	Components []*ComponentBlock `hcl:"component,block"`
	Body       hcl.Body          `hcl:",remain"`
}
