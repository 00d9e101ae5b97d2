package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/signalgraph/internal/ctxlog"
	"github.com/vk/signalgraph/internal/graph"
	"github.com/vk/signalgraph/internal/pathfind"
)

// Run executes the main application logic: instantiate the requested root
// component, print the instance tree and type census, and report the
// connectivity paths found from every interface under the root.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	rootType, ok := a.tg.TypeByName(appConfig.Root)
	if !ok {
		return fmt.Errorf("root component %q is not defined in the loaded manifests", appConfig.Root)
	}

	a.logger.Info("Instantiating root component.", "component", appConfig.Root)
	inst, err := a.tg.Instantiate(rootType)
	if err != nil {
		return fmt.Errorf("failed to instantiate %q: %w", appConfig.Root, err)
	}

	names := a.instanceNames(inst, appConfig.Root)

	fmt.Fprintf(a.outW, "Instance tree of %q:\n", appConfig.Root)
	a.printTree(inst, appConfig.Root, 1)

	fmt.Fprintf(a.outW, "\nInstances per type:\n")
	census := a.tg.Census()
	typeNames := make([]string, 0, len(census))
	for name := range census {
		typeNames = append(typeNames, name)
	}
	sort.Strings(typeNames)
	for _, name := range typeNames {
		if census[name] == 0 {
			continue
		}
		fmt.Fprintf(a.outW, "  %s: %d\n", name, census[name])
	}

	fmt.Fprintf(a.outW, "\nConnectivity:\n")
	connected := 0
	for _, start := range a.interfaceNodes(inst) {
		paths, err := pathfind.FindPaths(a.tg, start)
		if err != nil {
			return fmt.Errorf("path search from %q: %w", names[start.ID()], err)
		}
		for _, p := range paths {
			fmt.Fprintf(a.outW, "  %s -> %s (%d hops)\n", names[start.ID()], names[p.Terminal().ID()], p.Len())
			connected++
		}
	}
	if connected == 0 {
		fmt.Fprintln(a.outW, "  (no connectivity paths found)")
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// printTree writes the composition tree under inst with one indented line
// per node.
func (a *App) printTree(inst graph.Ref, label string, depth int) {
	typ := graph.MustTypeOf(inst)
	fmt.Fprintf(a.outW, "%s%s: %s\n", strings.Repeat("  ", depth), label, a.tg.TypeName(typ))
	_, _ = graph.WalkChildren(inst, func(e *graph.Edge) graph.WalkResult {
		a.printTree(e.Target(), e.Name(), depth+1)
		return graph.Continue()
	})
}

// instanceNames maps every node under inst to its dotted path from the
// root, for readable reporting.
func (a *App) instanceNames(inst graph.Ref, rootLabel string) map[graph.NodeID]string {
	names := make(map[graph.NodeID]string)
	var walk func(n graph.Ref, label string)
	walk = func(n graph.Ref, label string) {
		names[n.ID()] = label
		_, _ = graph.WalkChildren(n, func(e *graph.Edge) graph.WalkResult {
			walk(e.Target(), label+"."+e.Name())
			return graph.Continue()
		})
	}
	walk(inst, rootLabel)
	return names
}

// interfaceNodes collects every node under inst carrying the is_interface
// trait, in tree order.
func (a *App) interfaceNodes(inst graph.Ref) []graph.Ref {
	iface := a.tg.InterfaceType()
	var nodes []graph.Ref
	var walk func(n graph.Ref)
	walk = func(n graph.Ref) {
		if graph.HasTraitOfType(n, iface) {
			nodes = append(nodes, n)
		}
		_, _ = graph.WalkChildren(n, func(e *graph.Edge) graph.WalkResult {
			walk(e.Target())
			return graph.Continue()
		})
	}
	walk(inst)
	return nodes
}
