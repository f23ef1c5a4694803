// Package workers runs background jobs next to the development API.
//
// A [Worker] blocks until its context is canceled. [Workers] starts a set of
// them together and waits for all of them to stop.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is canceled or the worker fails. A nil error means a
// clean stop.
type Worker interface {
	Run(ctx context.Context) error
}

// Invalidator drops cached state so the next read reloads it.
type Invalidator interface {
	Invalidate()
}
