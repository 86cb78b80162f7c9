package parse

import "errors"

var (
	// ErrParse marks a structural syntax error.
	ErrParse = errors.New("parse error")

	// ErrBadKey marks a token that cannot serve in key position.
	ErrBadKey = errors.New("invalid key")

	// ErrDepth marks nesting beyond the configured maximum.
	ErrDepth = errors.New("max nesting depth exceeded")

	// ErrNumberSuffix marks a magnitude suffix no handler resolved.
	ErrNumberSuffix = errors.New("invalid number suffix")

	// ErrValidation wraps an error returned by a validation hook.
	ErrValidation = errors.New("validation failed")

	// ErrString wraps an error returned by a string post-processor.
	ErrString = errors.New("string processing failed")
)
