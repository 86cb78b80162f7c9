package vars

import "errors"

// ErrCircular marks a circular-reference warning emitted through the
// warn callback. Expansion still completes; the cyclic level keeps its
// unresolved literal.
var ErrCircular = errors.New("circular variable reference")
