// Package parse turns UCL source into an ir value tree.
//
// A document is a sequence of key-value statements forming the root
// object, or a single JSON-compatible value. Statements pick their
// syntax style per key with at most two tokens of lookahead: explicit
// ("key = v", "key: v"), nested ("key { ... }", "key disc { ... }"),
// implicit ("key v"), or a bare flag ("key;"). Duplicate keys
// coalesce: two objects deep-merge, anything else collects into an
// array in insertion order.
package parse
