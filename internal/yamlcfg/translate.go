package yamlcfg

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/signalgraph/internal/config"
)

// translateManifest converts the YAML document structures of one file into
// the agnostic model.
func translateManifest(doc *manifestDoc) (*config.Model, error) {
	model := &config.Model{Components: make(map[string]*config.ComponentDefinition)}
	for _, comp := range doc.Components {
		if comp.Name == "" {
			return nil, fmt.Errorf("component requires a name")
		}
		def, err := translateComponent(comp)
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", comp.Name, err)
		}
		model.Components[def.Name] = def
	}
	return model, nil
}

// translateComponent converts a single component entry.
func translateComponent(comp *componentDoc) (*config.ComponentDefinition, error) {
	def := &config.ComponentDefinition{
		Name:        comp.Name,
		Description: comp.Description,
	}

	for _, child := range comp.Children {
		attrs, err := literalAttrs(child.Attrs)
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

	for _, trait := range comp.Traits {
		def.Traits = append(def.Traits, &config.TraitDecl{
			Path:      splitPath(trait.Path),
			TraitType: trait.Type,
		})
	}

	for _, link := range comp.Links {
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

// literalAttrs converts a decoded YAML mapping into literal attribute
// values. Only scalars are accepted; nested structures have no meaning as
// node attributes.
func literalAttrs(raw map[string]any) (map[string]cty.Value, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	attrs := make(map[string]cty.Value, len(raw))
	for key, val := range raw {
		switch v := val.(type) {
		case string:
			attrs[key] = cty.StringVal(v)
		case bool:
			attrs[key] = cty.BoolVal(v)
		case int:
			attrs[key] = cty.NumberIntVal(int64(v))
		case int64:
			attrs[key] = cty.NumberIntVal(v)
		case float64:
			attrs[key] = cty.NumberFloatVal(v)
		default:
			return nil, fmt.Errorf("attr %q: must be a scalar literal, got %T", key, val)
		}
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
