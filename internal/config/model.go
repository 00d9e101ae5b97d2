package config

import (
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of every component
// definition loaded from manifests.
type Model struct {
	Components map[string]*ComponentDefinition
}

// ComponentDefinition describes one declared component type: the children
// its instances are built from, the traits its instances carry, and the
// connections its instantiation must create.
type ComponentDefinition struct {
	Name        string
	Description string
	Children    []*ChildDecl
	Traits      []*TraitDecl
	Links       []*LinkDecl
}

// ChildDecl is the format-agnostic form of a child declaration. Mount, when
// non-empty, attaches the child under that path instead of the instance
// root. Attrs are literal values copied onto the child at instantiation.
type ChildDecl struct {
	Identifier string
	TypeName   string
	Mount      []string
	Attrs      map[string]cty.Value
}

// TraitDecl grants a trait to the node at Path (the instance root when Path
// is empty).
type TraitDecl struct {
	Path      []string
	TraitType string
}

// LinkDecl declares an interface-connection between two reference paths.
type LinkDecl struct {
	From    []string
	To      []string
	Shallow bool
	Name    string
}
