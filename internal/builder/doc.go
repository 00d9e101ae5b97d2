// Package builder applies a loaded config model to the type graph's
// registration API. It is the only bridge between the declarative front
// ends and the compiler: the type graph never sees a manifest, and the
// loaders never see a graph.
package builder
