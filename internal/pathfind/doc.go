// Package pathfind discovers interface-to-interface connectivity paths over
// instance subgraphs. Starting from a node carrying the is_interface trait,
// it walks a mix of interface-connection edges (horizontal steps) and
// composition-hierarchy hops (vertical steps) and returns only the paths
// that come back to the starting hierarchy level.
//
// The search is bucketed by type-path signature: the ordered list of
// (parent-type, child-identifier) pairs accumulated while ascending the
// composition hierarchy. Ascending pushes a signature element; descending is
// only allowed through the identifier recorded by the matching ascent and
// pops it again. Paths within one signature bucket are deduplicated by
// terminal node, keeping whichever candidate was enqueued first — not
// necessarily the shortest. That is a deliberate, load-bearing property of
// this implementation; do not "fix" it to shortest-path without consulting
// the callers that depend on result stability.
//
// Shallow connection edges are only valid while the signature is at the
// starting depth: a path may neither traverse one after ascending nor carry
// one upward.
//
// All per-call state lives in a single search value scoped to FindPaths and
// is released as a whole when it returns, including on error paths.
package pathfind
