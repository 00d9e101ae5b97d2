// Package hcl is the HCL front end: it discovers manifest files, decodes
// them into the schema structures, and translates those into the
// format-agnostic config model. Nothing outside this package depends on HCL
// syntax; swapping the manifest language means swapping this package (see
// internal/yamlcfg for the proof).
package hcl
