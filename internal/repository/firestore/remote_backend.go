package firestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/domain/repository"
	apperrors "github.com/trip-planner-service/internal/pkg/errors"
)

const (
	collectionPlanners       = "planners"
	collectionTravelRequests = "travel_requests"
	collectionMessages       = "messages"

	// array-contains-any accepts at most 30 values
	maxArrayContainsAny = 30

	defaultCallTimeout = 10 * time.Second
)

type remoteBackend struct {
	client  *firestore.Client
	timeout time.Duration
	logger  *zap.Logger
}

// NewRemoteBackend - Firestore-backed planners, travel requests and messages
func NewRemoteBackend(client *firestore.Client, timeout time.Duration, logger *zap.Logger) repository.RemoteBackend {
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &remoteBackend{
		client:  client,
		timeout: timeout,
		logger:  logger,
	}
}

// Ping reads at most one planner document.
func (r *remoteBackend) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	iter := r.client.Collection(collectionPlanners).Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return fmt.Errorf("firestore ping: %w", err)
	}
	return nil
}

// QueryPlanners filters on availability, areas and the lower price bound in
// Firestore; the upper price bound and categories are checked in memory
// because Firestore allows one array-contains-any and one range field per query.
// Area lists longer than array-contains-any accepts are checked in memory too.
func (r *remoteBackend) QueryPlanners(ctx context.Context, criteria domain.MatchCriteria) ([]domain.Planner, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	q := r.client.Collection(collectionPlanners).Where("availability", "==", true)
	serverAreas, filterAreas := splitAreaFilter(criteria.Areas)
	if len(serverAreas) > 0 {
		q = q.Where("areas", "array-contains-any", serverAreas)
	}
	q = q.Where("price_range.min", "<=", criteria.Budget.Max)

	iter := q.Documents(ctx)
	defer iter.Stop()

	var planners []domain.Planner
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query planners: %w", err)
		}

		var p domain.Planner
		if err := doc.DataTo(&p); err != nil {
			r.logger.Warn("Skipping malformed planner document",
				zap.String("doc_id", doc.Ref.ID),
				zap.Error(err))
			continue
		}
		p.ID = doc.Ref.ID

		if p.PriceRange.Max < criteria.Budget.Min {
			continue
		}
		if filterAreas && !hasAnyArea(&p, criteria.Areas) {
			continue
		}
		if len(criteria.Categories) > 0 && !hasAnyCategory(&p, criteria.Categories) {
			continue
		}
		planners = append(planners, p)
	}

	r.logger.Debug("Remote planners queried", zap.Int("count", len(planners)))
	return planners, nil
}

func (r *remoteBackend) CreateTravelRequest(ctx context.Context, req domain.TravelRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	ref := r.client.Collection(collectionTravelRequests).NewDoc()
	req.ID = ref.ID
	if _, err := ref.Set(ctx, req); err != nil {
		return "", fmt.Errorf("failed to create travel request: %w", err)
	}
	return ref.ID, nil
}

func (r *remoteBackend) SendMessage(ctx context.Context, msg domain.Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	ref := r.client.Collection(collectionMessages).NewDoc()
	msg.ID = ref.ID
	if _, err := ref.Set(ctx, msg); err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}
	return ref.ID, nil
}

func (r *remoteBackend) UpdatePlannerAvailability(ctx context.Context, plannerID string, available bool) error {
	return r.updatePlanner(ctx, plannerID, firestore.Update{Path: "availability", Value: available})
}

func (r *remoteBackend) UpdatePlannerRating(ctx context.Context, plannerID string, rating float64) error {
	return r.updatePlanner(ctx, plannerID, firestore.Update{Path: "rating", Value: rating})
}

func (r *remoteBackend) updatePlanner(ctx context.Context, plannerID string, update firestore.Update) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.client.Collection(collectionPlanners).Doc(plannerID).Update(ctx, []firestore.Update{update})
	if status.Code(err) == codes.NotFound {
		return apperrors.ErrPlannerNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update planner %s: %w", plannerID, err)
	}
	return nil
}

// splitAreaFilter returns the areas to send to Firestore, or reports that
// the list is too long and must be filtered in memory instead.
func splitAreaFilter(areas []string) (server []string, inMemory bool) {
	if len(areas) > maxArrayContainsAny {
		return nil, true
	}
	return areas, false
}

func hasAnyArea(p *domain.Planner, areas []string) bool {
	for _, a := range areas {
		if p.HasArea(a) {
			return true
		}
	}
	return false
}

func hasAnyCategory(p *domain.Planner, categories []string) bool {
	for _, c := range categories {
		if p.HasCategory(c) {
			return true
		}
	}
	return false
}
