package repository

import (
	"context"

	"github.com/trip-planner-service/internal/domain"
)

// PlannerRepository - always-available local planner dataset
type PlannerRepository interface {
	// List returns a copy of every planner in the dataset
	List(ctx context.Context) ([]domain.Planner, error)

	// SetAvailability updates one planner; returns errors.ErrPlannerNotFound for unknown ids
	SetAvailability(ctx context.Context, plannerID string, available bool) error

	// SetRating updates one planner; returns errors.ErrPlannerNotFound for unknown ids
	SetRating(ctx context.Context, plannerID string, rating float64) error
}
