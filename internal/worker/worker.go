package worker

import (
	"context"
)

// Worker is a background loop managed by WorkerManager.
type Worker interface {
	// Start blocks until ctx is done or Stop is called
	Start(ctx context.Context) error

	// Stop signals Start to return
	Stop() error

	Name() string
}
