package source

import "errors"

var (
	// ErrNotAnObject is returned when a source decodes to something other
	// than a keyed object at the top level.
	ErrNotAnObject = errors.New("source must contain an object at the top level")
	// ErrExecFailed is returned when an executable source exits non-zero.
	ErrExecFailed = errors.New("executable source failed")
)
