// Package typegraph is the type registry and instantiation compiler. A type
// graph is a distinguished root node whose composition children are type
// nodes; each type node's children are MakeChild and MakeLink declaration
// nodes describing what instantiating that type must build.
//
// Registration is additive and order-tolerant: AddType is idempotent,
// AddMakeChild records a symbolic TypeReference that may point forward to a
// type registered later, and LinkReferences resolves whatever references can
// be resolved at that moment (a loader may call it once per pass).
//
// Instantiate expands a type into a live instance subgraph in two passes per
// level: the child pass creates and attaches child instances (honoring mount
// paths and copying declared attributes), then the link pass resolves each
// MakeLink's reference chains against the freshly built instance and creates
// the declared edge. Instantiation never mutates the type graph itself.
//
// Declaration nodes carry type edges to builtin meta-types, so external
// tooling can introspect declared structure with the same primitives it uses
// on instances. The meta-types are created raw while the type graph
// bootstraps; the link pass stays disabled until bootstrap completes.
package typegraph
