package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrNoCandidates      = errors.New("no candidate words survived filtering")
	ErrEmptyDocument     = errors.New("empty document")
	ErrUnsupportedFormat = errors.New("unsupported document format")
)
