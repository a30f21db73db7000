// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns. Work continues in goroutines owned by
// the worker until ctx is done.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    go func() {
//	        <-ctx.Done()
//	    }()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Pinger is a dependency the health probe checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatusSetter receives the result of every health probe.
type StatusSetter interface {
	SetServing(serving bool)
}
