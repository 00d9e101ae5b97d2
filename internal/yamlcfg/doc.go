// Package yamlcfg is the YAML front end: the same manifest content as
// internal/hcl, decoded from .yaml files into the format-agnostic config
// model. Its existence is what proves the loader seam — the registration
// API and everything below it work identically no matter which package
// produced the model.
package yamlcfg
