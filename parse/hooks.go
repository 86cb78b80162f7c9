package parse

import "github.com/ucl-format/go-ucl/ir"

// NumberSuffixHandler resolves a magnitude suffix the scanner does not
// recognize, such as "7px". It receives the numeric mantissa and the
// lowercased suffix and returns the value to use. ok false passes the
// number to the next handler; when no handler accepts, parsing fails
// with ErrNumberSuffix.
type NumberSuffixHandler func(mantissa float64, suffix string) (*ir.Node, bool)

// StringPostProcessor rewrites every string value after variable
// expansion. Handlers run in registration order; an error aborts the
// parse.
type StringPostProcessor func(s string) (string, error)

// ValidationHook inspects each key's final value. keyPath is the
// node's path from the document root, "$.server.listen[0]" form. An
// error aborts the parse wrapped in ErrValidation.
type ValidationHook func(keyPath string, v *ir.Node) error
