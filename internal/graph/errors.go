package graph

import "errors"

// ErrForeignRef is returned when an operation receives a reference that is
// not bound to the graph it is invoked on.
var ErrForeignRef = errors.New("reference does not belong to this graph")

// ErrEdgeKind is returned when an edge is accessed through a helper for a
// different kind.
var ErrEdgeKind = errors.New("invalid edge kind")
