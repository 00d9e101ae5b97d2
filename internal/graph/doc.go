// Package graph is the storage layer of the application. It owns every node
// and edge identity, the per-node attribute store, and the visitor-style
// traversal primitive that all higher layers build on.
//
// The package exposes two levels of API:
//
//  1. The raw store: NewNode, AddEdge, attribute get/put, and the Walk*
//     traversal functions. Edges are tagged with a Kind and the store itself
//     assigns no meaning to them.
//
//  2. Relation-kind helpers: one file per fixed edge kind (composition.go,
//     pointer.go, typeedge.go, trait.go, connection.go) layering the semantics
//     of that kind on top of the raw store. Higher layers (typegraph,
//     pathfind) only ever touch edges through these helpers.
//
// Error handling follows a strict split. Recoverable conditions (a ref from a
// foreign graph, a lookup that finds nothing, an edge accessed through the
// wrong kind's helper) are returned as errors or (zero, false). Structural
// corruption that the protocol rules out (a composition edge with no name, a
// second type edge on a node) panics at the point of detection.
//
// The store has no internal locking. Callers must not mutate a graph while a
// traversal or an instantiation holds references into it.
package graph
