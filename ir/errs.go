package ir

import "errors"

var (
	ErrType  = errors.New("unexpected node type")
	ErrField = errors.New("no such field")
	ErrPath  = errors.New("bad path")
)
