// Package encode renders ir value trees as UCL, JSON, or YAML.
//
// UCL output writes the root object as top-level statements and nests
// objects in braces; JSON output is standard and canonical; YAML
// output goes through goccy/go-yaml with key order preserved. UCL and
// JSON rendering can colorize for terminals.
package encode
