package health

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/worker"
)

// ConnectionChecker probes the remote backend.
type ConnectionChecker interface {
	CheckConnection(ctx context.Context) bool
}

// BackendHealthWorker re-probes the remote backend on a fixed interval so
// that availability recovers without a manual reconnect.
type BackendHealthWorker struct {
	*worker.BaseWorker
	checker  ConnectionChecker
	interval time.Duration
}

func NewBackendHealthWorker(checker ConnectionChecker, interval time.Duration, logger *zap.Logger) *BackendHealthWorker {
	return &BackendHealthWorker{
		BaseWorker: worker.NewBaseWorker("backend-health", logger),
		checker:    checker,
		interval:   interval,
	}
}

func (w *BackendHealthWorker) Start(ctx context.Context) error {
	w.Logger().Info("Backend health worker started", zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Logger().Info("Backend health worker stopped by context")
			return nil
		case <-w.StopChan():
			w.Logger().Info("Backend health worker stopped")
			return nil
		case <-ticker.C:
			available := w.checker.CheckConnection(ctx)
			w.Logger().Debug("Backend health checked", zap.Bool("available", available))
		}
	}
}
