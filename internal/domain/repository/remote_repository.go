package repository

import (
	"context"

	"github.com/trip-planner-service/internal/domain"
)

// RemoteBackend is the remote document store acting as source of truth
// while it is reachable. Any returned error marks the call as failed.
type RemoteBackend interface {
	// Ping performs one lightweight read
	Ping(ctx context.Context) error

	// QueryPlanners returns available planners matching the criteria
	QueryPlanners(ctx context.Context, criteria domain.MatchCriteria) ([]domain.Planner, error)

	// CreateTravelRequest stores the request and returns its id
	CreateTravelRequest(ctx context.Context, req domain.TravelRequest) (string, error)

	// SendMessage stores the message and returns its id
	SendMessage(ctx context.Context, msg domain.Message) (string, error)

	// UpdatePlannerAvailability sets the availability flag
	UpdatePlannerAvailability(ctx context.Context, plannerID string, available bool) error

	// UpdatePlannerRating sets the rating
	UpdatePlannerRating(ctx context.Context, plannerID string, rating float64) error
}
