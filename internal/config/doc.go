// Package config defines the format-agnostic model of component
// definitions and the Loader interface that format-specific front ends
// (internal/hcl, internal/yamlcfg) implement. The core registration API
// never sees a manifest format; it only ever consumes this model, so the
// front end is replaceable without touching the compiler.
package config
