package usecase

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/domain/repository"
	"github.com/trip-planner-service/internal/pkg/errors"
)

// PlannerGateway routes planner operations to the remote backend while it
// is usable and to local data otherwise. Remote failures never reach the
// caller; they are counted by the monitor and answered locally.
type PlannerGateway struct {
	remote      repository.RemoteBackend
	monitor     *AvailabilityMonitor
	matcher     *CascadingMatcher
	planners    repository.PlannerRepository
	kv          repository.KVRepository
	events      repository.StreamRepository
	ledgerKey   string
	eventStream string
	logger      *zap.Logger
	now         func() time.Time

	ledgerMu sync.Mutex
}

// NewPlannerGateway - remote and events may be nil.
func NewPlannerGateway(
	remote repository.RemoteBackend,
	monitor *AvailabilityMonitor,
	matcher *CascadingMatcher,
	planners repository.PlannerRepository,
	kv repository.KVRepository,
	events repository.StreamRepository,
	ledgerKey string,
	eventStream string,
	logger *zap.Logger,
) *PlannerGateway {
	if eventStream == "" {
		eventStream = domain.StreamLocalLedger
	}
	return &PlannerGateway{
		remote:      remote,
		monitor:     monitor,
		matcher:     matcher,
		planners:    planners,
		kv:          kv,
		events:      events,
		ledgerKey:   ledgerKey,
		eventStream: eventStream,
		logger:      logger,
		now:         time.Now,
	}
}

// GetMatchingPlanners returns a non-empty, rating-sorted planner list from
// exactly one source.
func (g *PlannerGateway) GetMatchingPlanners(ctx context.Context, criteria domain.MatchCriteria) domain.MatchResult {
	if g.useRemote(ctx) {
		planners, err := g.remote.QueryPlanners(ctx, criteria)
		switch {
		case err != nil:
			g.monitor.RecordFailure(err)
		case len(planners) == 0:
			g.logger.Debug("Remote backend returned no planners, using local dataset")
		default:
			sortByRating(planners)
			return domain.MatchResult{
				Stage:    domain.StageStrict,
				Source:   domain.SourceRemote,
				Planners: planners,
			}
		}
	}

	local, err := g.planners.List(ctx)
	if err != nil {
		g.logger.Error("Failed to list local planners", zap.Error(err))
	}
	return g.matcher.Match(local, criteria)
}

// CreateTravelRequest stores a new pending request and returns its id.
func (g *PlannerGateway) CreateTravelRequest(ctx context.Context, req domain.TravelRequest) string {
	req.Status = domain.RequestPending
	req.CreatedAt = g.now()

	if g.useRemote(ctx) {
		id, err := g.remote.CreateTravelRequest(ctx, req)
		if err == nil {
			return id
		}
		g.monitor.RecordFailure(err)
	}

	req.ID = g.localID("request")
	g.appendToLedger(ctx, func(l *domain.Ledger) {
		l.TravelRequests = append(l.TravelRequests, req)
	})
	g.publish(ctx, domain.LedgerTravelRequest, req.ID, req)

	g.logger.Info("Travel request stored locally", zap.String("id", req.ID))
	return req.ID
}

// SendMessage stores an unread message and returns its id.
func (g *PlannerGateway) SendMessage(ctx context.Context, msg domain.Message) string {
	msg.Read = false
	msg.CreatedAt = g.now()

	if g.useRemote(ctx) {
		id, err := g.remote.SendMessage(ctx, msg)
		if err == nil {
			return id
		}
		g.monitor.RecordFailure(err)
	}

	msg.ID = g.localID("msg")
	g.appendToLedger(ctx, func(l *domain.Ledger) {
		l.Messages = append(l.Messages, msg)
	})
	g.publish(ctx, domain.LedgerMessage, msg.ID, msg)

	g.logger.Info("Message stored locally", zap.String("id", msg.ID))
	return msg.ID
}

func (g *PlannerGateway) UpdatePlannerAvailability(ctx context.Context, plannerID string, available bool) error {
	if g.useRemote(ctx) {
		err := g.remote.UpdatePlannerAvailability(ctx, plannerID, available)
		if err == nil || stderrors.Is(err, errors.ErrPlannerNotFound) {
			return err
		}
		g.monitor.RecordFailure(err)
	}
	return g.planners.SetAvailability(ctx, plannerID, available)
}

func (g *PlannerGateway) UpdatePlannerRating(ctx context.Context, plannerID string, rating float64) error {
	if math.IsNaN(rating) || rating < 0 || rating > domain.MaxRating {
		return errors.ErrInvalidRating
	}

	if g.useRemote(ctx) {
		err := g.remote.UpdatePlannerRating(ctx, plannerID, rating)
		if err == nil || stderrors.Is(err, errors.ErrPlannerNotFound) {
			return err
		}
		g.monitor.RecordFailure(err)
	}
	return g.planners.SetRating(ctx, plannerID, rating)
}

// CheckConnection probes the backend and returns the resulting status.
func (g *PlannerGateway) CheckConnection(ctx context.Context) domain.BackendStatus {
	g.monitor.CheckConnection(ctx)
	return g.monitor.Status()
}

// Reconnect clears the failure budget, probes and returns the status.
func (g *PlannerGateway) Reconnect(ctx context.Context) domain.BackendStatus {
	g.monitor.Reconnect(ctx)
	return g.monitor.Status()
}

// Status returns the last known backend status without probing.
func (g *PlannerGateway) Status() domain.BackendStatus {
	return g.monitor.Status()
}

// LocalLedger returns the records stored while the backend was unusable.
func (g *PlannerGateway) LocalLedger(ctx context.Context) (domain.Ledger, error) {
	g.ledgerMu.Lock()
	defer g.ledgerMu.Unlock()

	ledger, err := g.readLedger(ctx)
	if err != nil {
		return domain.Ledger{}, errors.ErrStorageError.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}
	return ledger, nil
}

func (g *PlannerGateway) useRemote(ctx context.Context) bool {
	if g.remote == nil {
		return false
	}
	g.monitor.InitializeIfNeeded(ctx)
	return g.monitor.ShouldUseRemote()
}

func (g *PlannerGateway) localID(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, g.now().UnixMilli(), uuid.NewString()[:8])
}

func (g *PlannerGateway) appendToLedger(ctx context.Context, apply func(*domain.Ledger)) {
	g.ledgerMu.Lock()
	defer g.ledgerMu.Unlock()

	ledger, err := g.readLedger(ctx)
	if err != nil {
		// a failed read must not overwrite records we could not see
		g.logger.Error("Failed to read local ledger, record not persisted", zap.Error(err))
		return
	}

	apply(&ledger)

	data, err := json.Marshal(ledger)
	if err != nil {
		g.logger.Error("Failed to encode local ledger", zap.Error(err))
		return
	}
	if err := g.kv.Set(ctx, g.ledgerKey, data, 0); err != nil {
		g.logger.Error("Failed to save local ledger", zap.Error(err))
	}
}

// readLedger must be called with g.ledgerMu held. Corrupt data reads as an
// empty ledger.
func (g *PlannerGateway) readLedger(ctx context.Context) (domain.Ledger, error) {
	ledger := domain.Ledger{
		TravelRequests: []domain.TravelRequest{},
		Messages:       []domain.Message{},
	}

	data, err := g.kv.Get(ctx, g.ledgerKey)
	if err != nil {
		return ledger, fmt.Errorf("failed to read ledger: %w", err)
	}
	if data == nil {
		return ledger, nil
	}

	var stored domain.Ledger
	if err := json.Unmarshal(data, &stored); err != nil {
		g.logger.Warn("Local ledger is corrupt, starting a new one", zap.Error(err))
		return ledger, nil
	}
	if stored.TravelRequests != nil {
		ledger.TravelRequests = stored.TravelRequests
	}
	if stored.Messages != nil {
		ledger.Messages = stored.Messages
	}
	return ledger, nil
}

func (g *PlannerGateway) publish(ctx context.Context, kind domain.LedgerEventKind, id string, payload interface{}) {
	if g.events == nil {
		return
	}

	event := domain.LedgerEvent{
		Kind:       kind,
		RecordID:   id,
		RecordedAt: g.now(),
		Payload:    payload,
	}
	if err := g.events.PublishToStream(ctx, g.eventStream, event); err != nil {
		g.logger.Warn("Failed to publish ledger event",
			zap.String("stream", g.eventStream),
			zap.String("record_id", id),
			zap.Error(err))
	}
}
