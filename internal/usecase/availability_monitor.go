package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/domain/repository"
)

const defaultProbeTimeout = 5 * time.Second

// AvailabilityMonitor tracks whether the remote backend is usable.
// A nil remote means the backend is not configured: every probe reports
// unavailable without touching the network.
type AvailabilityMonitor struct {
	remote       repository.RemoteBackend
	maxRetries   int
	probeTimeout time.Duration
	logger       *zap.Logger
	now          func() time.Time

	mu          sync.Mutex
	available   bool
	retryCount  int
	initialized bool
	lastChecked time.Time
}

// NewAvailabilityMonitor - maxRetries below 1 is raised to 1
func NewAvailabilityMonitor(
	remote repository.RemoteBackend,
	maxRetries int,
	probeTimeout time.Duration,
	logger *zap.Logger,
) *AvailabilityMonitor {
	if maxRetries < 1 {
		maxRetries = 1
	}
	if probeTimeout <= 0 {
		probeTimeout = defaultProbeTimeout
	}
	return &AvailabilityMonitor{
		remote:       remote,
		maxRetries:   maxRetries,
		probeTimeout: probeTimeout,
		logger:       logger,
		now:          time.Now,
	}
}

// Configured reports whether a remote backend is wired in.
func (m *AvailabilityMonitor) Configured() bool {
	return m.remote != nil
}

// CheckConnection probes the backend once. Probe errors are logged and
// reported as unavailability, never returned.
func (m *AvailabilityMonitor) CheckConnection(ctx context.Context) bool {
	if m.remote == nil {
		m.mu.Lock()
		m.available = false
		m.lastChecked = m.now()
		m.mu.Unlock()
		m.logger.Debug("Remote backend not configured, using local data")
		return false
	}

	probeCtx, cancel := context.WithTimeout(ctx, m.probeTimeout)
	defer cancel()
	err := m.remote.Ping(probeCtx)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastChecked = m.now()
	if err != nil {
		m.available = false
		m.logger.Warn("Remote backend unreachable", zap.Error(err))
		return false
	}

	if !m.available {
		m.logger.Info("Remote backend reachable")
	}
	m.available = true
	m.retryCount = 0
	return true
}

// InitializeIfNeeded runs CheckConnection the first time it is called and
// again only after Reconnect.
func (m *AvailabilityMonitor) InitializeIfNeeded(ctx context.Context) {
	m.mu.Lock()
	if m.initialized {
		m.mu.Unlock()
		return
	}
	m.initialized = true
	m.mu.Unlock()

	m.CheckConnection(ctx)
}

// Reconnect clears the retry budget and probes again.
func (m *AvailabilityMonitor) Reconnect(ctx context.Context) bool {
	m.mu.Lock()
	m.retryCount = 0
	m.initialized = true
	m.mu.Unlock()

	m.logger.Info("Reconnecting to remote backend")
	return m.CheckConnection(ctx)
}

// RecordFailure counts a failed remote call and marks the backend
// unavailable for the rest of the session.
func (m *AvailabilityMonitor) RecordFailure(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.retryCount++
	m.available = false
	m.logger.Warn("Remote backend call failed, falling back to local data",
		zap.Int("retry_count", m.retryCount),
		zap.Int("max_retries", m.maxRetries),
		zap.Error(err))
}

// ShouldUseRemote reports whether the next operation may try the backend.
func (m *AvailabilityMonitor) ShouldUseRemote() bool {
	if m.remote == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available && m.retryCount < m.maxRetries
}

// Status returns a snapshot for status indicators.
func (m *AvailabilityMonitor) Status() domain.BackendStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.BackendStatus{
		Configured:  m.remote != nil,
		Available:   m.available,
		Initialized: m.initialized,
		RetryCount:  m.retryCount,
		MaxRetries:  m.maxRetries,
		LastChecked: m.lastChecked,
	}
}
