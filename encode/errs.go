package encode

import "errors"

var (
	ErrEncoding = errors.New("encoding error")

	// ErrFormat marks an unknown output format name.
	ErrFormat = errors.New("unknown format")
)
