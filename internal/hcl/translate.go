package hcl

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/signalgraph/internal/config"
	"github.com/vk/signalgraph/internal/schema"
)

// translateManifest converts the HCL-specific schema structures of one file
// into the agnostic model.
func (l *Loader) translateManifest(m *schema.ManifestConfig) (*config.Model, error) {
	model := &config.Model{Components: make(map[string]*config.ComponentDefinition)}
	for _, block := range m.Components {
		def, err := l.translateComponent(block)
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", block.Name, err)
		}
		model.Components[def.Name] = def
	}
	return model, nil
}

// translateComponent converts a single component block.
func (l *Loader) translateComponent(block *schema.ComponentBlock) (*config.ComponentDefinition, error) {
	def := &config.ComponentDefinition{
		Name:        block.Name,
		Description: block.Description,
	}

	for _, child := range block.Children {
		attrs, err := evalAttrs(child.Attrs)
		if err != nil {
			return nil, fmt.Errorf("child %q: %w", child.Identifier, err)
		}
		def.Children = append(def.Children, &config.ChildDecl{
			Identifier: child.Identifier,
			TypeName:   child.Type,
			Mount:      child.Mount,
			Attrs:      attrs,
		})
	}

	for _, trait := range block.Traits {
		def.Traits = append(def.Traits, &config.TraitDecl{
			Path:      splitPath(trait.Path),
			TraitType: trait.Type,
		})
	}

	for _, link := range block.Links {
		if link.From == "" || link.To == "" {
			return nil, fmt.Errorf("link requires both from and to")
		}
		def.Links = append(def.Links, &config.LinkDecl{
			From:    splitPath(link.From),
			To:      splitPath(link.To),
			Shallow: link.Shallow,
			Name:    link.Name,
		})
	}

	return def, nil
}

// evalAttrs statically evaluates a child's attrs expression into literal
// values. Attrs must be an object of literals; references to anything else
// fail under the nil evaluation context.
func evalAttrs(expr hcl.Expression) (map[string]cty.Value, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("attrs must be literal values: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, fmt.Errorf("attrs must be an object, got %s", val.Type().FriendlyName())
	}
	attrs := val.AsValueMap()
	if len(attrs) == 0 {
		return nil, nil
	}
	return attrs, nil
}

// splitPath turns a dotted reference path into its segments. An empty path
// means the instance root.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}
