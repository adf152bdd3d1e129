package health_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/worker"
	"github.com/trip-planner-service/internal/worker/health"
)

type countingChecker struct {
	calls atomic.Int32
}

func (c *countingChecker) CheckConnection(context.Context) bool {
	c.calls.Add(1)
	return true
}

func TestBackendHealthWorker_ProbesOnInterval(t *testing.T) {
	checker := &countingChecker{}
	w := health.NewBackendHealthWorker(checker, 10*time.Millisecond, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	require.Eventually(t, func() bool { return checker.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	require.NoError(t, w.Stop())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
	assert.True(t, w.IsStopped())
	assert.NoError(t, w.Stop())
}

func TestBackendHealthWorker_StopsWithContext(t *testing.T) {
	w := health.NewBackendHealthWorker(&countingChecker{}, time.Hour, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestWorkerManager_RunsAndStopsWorkers(t *testing.T) {
	checker := &countingChecker{}
	manager := worker.NewWorkerManager(zap.NewNop())
	manager.Register(health.NewBackendHealthWorker(checker, 5*time.Millisecond, zap.NewNop()))
	assert.Equal(t, 1, manager.Len())

	manager.Start(context.Background())
	require.Eventually(t, func() bool { return checker.calls.Load() > 0 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, manager.Stop(ctx))
}
