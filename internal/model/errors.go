package model

import "errors"

// Contract violations. Callers must not swallow these.
var (
	ErrInvalidSpan = errors.New("invalid span")
	ErrInvalidBox  = errors.New("invalid box")
)
