package builder

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/signalgraph/internal/config"
	"github.com/vk/signalgraph/internal/ctxlog"
	"github.com/vk/signalgraph/internal/graph"
	"github.com/vk/signalgraph/internal/typegraph"
)

// Apply registers every component definition of the model against the type
// graph, in two passes: first every type identity (so declarations may
// reference components defined later or in another manifest), then the
// declarations themselves. A final LinkReferences call resolves the
// recorded type references; names that remain unresolved are reported as a
// single error.
func Apply(ctx context.Context, tg *typegraph.TypeGraph, model *config.Model) error {
	logger := ctxlog.FromContext(ctx)

	names := make([]string, 0, len(model.Components))
	for name := range model.Components {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		tg.AddType(name)
	}
	logger.Debug("Component types registered.", "count", len(names))

	for _, name := range names {
		if err := applyComponent(tg, model.Components[name]); err != nil {
			return fmt.Errorf("component %q: %w", name, err)
		}
	}

	if unresolved := tg.LinkReferences(); len(unresolved) > 0 {
		return fmt.Errorf("unresolved component references: %v", unresolved)
	}
	logger.Debug("All component references linked.")
	return nil
}

// applyComponent turns one component definition into MakeChild and MakeLink
// declarations on its type node.
func applyComponent(tg *typegraph.TypeGraph, def *config.ComponentDefinition) error {
	typ := tg.AddType(def.Name)

	for _, child := range def.Children {
		if _, err := tg.AddMakeChild(typ, child.TypeName, child.Identifier, child.Attrs, child.Mount); err != nil {
			return fmt.Errorf("child %q: %w", child.Identifier, err)
		}
	}

	// A trait declaration is a MakeLink whose rhs escapes to the trait's
	// type: instantiation creates the trait instance and attaches it.
	for _, trait := range def.Traits {
		rhs := []string{typegraph.TypeEscapePrefix + trait.TraitType}
		if _, err := tg.AddMakeLink(typ, trait.Path, rhs, typegraph.LinkSpec{Kind: graph.KindTrait}); err != nil {
			return fmt.Errorf("trait %q: %w", trait.TraitType, err)
		}
	}

	for _, link := range def.Links {
		spec := typegraph.LinkSpec{
			Kind:    graph.KindConnection,
			Name:    link.Name,
			Shallow: link.Shallow,
		}
		if _, err := tg.AddMakeLink(typ, link.From, link.To, spec); err != nil {
			return fmt.Errorf("link %v -> %v: %w", link.From, link.To, err)
		}
	}
	return nil
}
