// Package vars resolves shell-style variable references in string
// values: $NAME, ${NAME}, ${NAME:-default}, and $$ for a literal
// dollar. Unresolved references are preserved verbatim; cycles are
// reported as non-fatal warnings and expansion completes.
package vars
