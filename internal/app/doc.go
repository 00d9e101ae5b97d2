// Package app contains the composition root. It wires a manifest loader,
// the builder, the type graph and the path finder into one lifecycle:
// load definitions, register them, instantiate the requested root
// component, and report the resulting structure and connectivity. It is
// decoupled from any specific entrypoint like a CLI.
package app
