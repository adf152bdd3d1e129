package local

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/domain/repository"
	"github.com/trip-planner-service/internal/pkg/errors"
)

//go:embed planners.json
var bundledPlanners []byte

// BundledPlanners returns a fresh copy of the dataset shipped with the binary.
func BundledPlanners() ([]domain.Planner, error) {
	return decodePlanners(bundledPlanners)
}

type plannerRepository struct {
	mu       sync.RWMutex
	planners []domain.Planner
	logger   *zap.Logger
}

// NewPlannerRepository loads the local dataset from path, or the bundled
// dataset when path is empty.
func NewPlannerRepository(path string, logger *zap.Logger) (repository.PlannerRepository, error) {
	data := bundledPlanners
	source := "bundled"
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read planner dataset: %w", err)
		}
		data = raw
		source = path
	}

	planners, err := decodePlanners(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load planner dataset %s: %w", source, err)
	}

	logger.Info("Local planner dataset loaded",
		zap.String("source", source),
		zap.Int("planners", len(planners)))

	return NewPlannerRepositoryFrom(planners, logger), nil
}

// NewPlannerRepositoryFrom wraps an in-memory dataset.
func NewPlannerRepositoryFrom(planners []domain.Planner, logger *zap.Logger) repository.PlannerRepository {
	return &plannerRepository{
		planners: clonePlanners(planners),
		logger:   logger,
	}
}

func (r *plannerRepository) List(_ context.Context) ([]domain.Planner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clonePlanners(r.planners), nil
}

func (r *plannerRepository) SetAvailability(_ context.Context, plannerID string, available bool) error {
	return r.update(plannerID, func(p *domain.Planner) {
		p.Availability = available
	})
}

func (r *plannerRepository) SetRating(_ context.Context, plannerID string, rating float64) error {
	return r.update(plannerID, func(p *domain.Planner) {
		p.Rating = rating
	})
}

func (r *plannerRepository) update(plannerID string, apply func(*domain.Planner)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.planners {
		if r.planners[i].ID == plannerID {
			apply(&r.planners[i])
			r.logger.Debug("Local planner updated", zap.String("planner_id", plannerID))
			return nil
		}
	}
	return errors.ErrPlannerNotFound
}

func decodePlanners(data []byte) ([]domain.Planner, error) {
	var planners []domain.Planner
	if err := json.Unmarshal(data, &planners); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(planners))
	for i, p := range planners {
		if p.ID == "" {
			return nil, fmt.Errorf("planner #%d has no id", i)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("duplicate planner id %q", p.ID)
		}
		if p.Rating < 0 || p.Rating > domain.MaxRating {
			return nil, fmt.Errorf("planner %q has rating %.2f outside 0-%.0f", p.ID, p.Rating, domain.MaxRating)
		}
		seen[p.ID] = struct{}{}
	}
	return planners, nil
}

// clonePlanners copies the records and their slices.
func clonePlanners(in []domain.Planner) []domain.Planner {
	out := make([]domain.Planner, len(in))
	for i, p := range in {
		p.Specialties = append([]string(nil), p.Specialties...)
		p.Areas = append([]string(nil), p.Areas...)
		p.Categories = append([]string(nil), p.Categories...)
		p.Languages = append([]string(nil), p.Languages...)
		out[i] = p
	}
	return out
}
