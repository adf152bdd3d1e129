package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/domain/repository"
	"github.com/trip-planner-service/internal/pkg/errors"
)

const minRouteItems = 2

// ItineraryStore owns the session's itinerary items and the last computed
// route. Every change to the item list is mirrored to the KV store.
type ItineraryStore struct {
	kv            repository.KVRepository
	sequencer     RouteSequencer
	storageKey    string
	optimizeDelay time.Duration
	logger        *zap.Logger
	now           func() time.Time

	mu         sync.Mutex
	items      []*domain.ItineraryItem
	route      *domain.OptimizedRoute
	optimizing atomic.Bool
}

func NewItineraryStore(
	kv repository.KVRepository,
	sequencer RouteSequencer,
	storageKey string,
	optimizeDelay time.Duration,
	logger *zap.Logger,
) *ItineraryStore {
	return &ItineraryStore{
		kv:            kv,
		sequencer:     sequencer,
		storageKey:    storageKey,
		optimizeDelay: optimizeDelay,
		logger:        logger,
		now:           time.Now,
	}
}

// Load restores the saved item list. Missing or unreadable data leaves the
// store empty.
func (s *ItineraryStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.route = nil

	data, err := s.kv.Get(ctx, s.storageKey)
	if err != nil {
		s.logger.Warn("Failed to read saved itinerary", zap.Error(err))
		return
	}
	if data == nil {
		return
	}

	var saved []*domain.ItineraryItem
	if err := json.Unmarshal(data, &saved); err != nil {
		s.logger.Warn("Saved itinerary is corrupt, starting empty",
			zap.String("key", s.storageKey),
			zap.Error(err))
		return
	}

	seen := make(map[string]struct{}, len(saved))
	for _, item := range saved {
		if item == nil || item.ID == "" {
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		s.items = append(s.items, item)
	}

	s.logger.Info("Itinerary restored", zap.Int("items", len(s.items)))
}

// AddItem appends item unless one with the same id is already present.
// Returns false for duplicates.
func (s *ItineraryStore) AddItem(ctx context.Context, item domain.ItineraryItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(item.ID) >= 0 {
		return false
	}

	added := item.Clone()
	added.AddedAt = s.now()
	added.VisitOrder = nil
	s.items = append(s.items, &added)
	s.route = nil

	s.persist(ctx)
	return true
}

// RemoveItem drops the item with the given id. Returns false if it was not
// present.
func (s *ItineraryStore) RemoveItem(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}

	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.route = nil

	s.persist(ctx)
	return true
}

// ReorderItems replaces the item order with ids, which must list every
// current item exactly once. An existing route follows the new order
// instead of being discarded.
func (s *ItineraryStore) ReorderItems(ctx context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(ids) != len(s.items) {
		return errors.ErrInvalidItemOrder.WithDetails(map[string]interface{}{
			"expected": len(s.items),
			"got":      len(ids),
		})
	}

	byID := make(map[string]*domain.ItineraryItem, len(s.items))
	for _, item := range s.items {
		byID[item.ID] = item
	}

	reordered := make([]*domain.ItineraryItem, 0, len(ids))
	for _, id := range ids {
		item, ok := byID[id]
		if !ok {
			return errors.ErrInvalidItemOrder.WithDetails(map[string]interface{}{
				"id": id,
			})
		}
		delete(byID, id)
		reordered = append(reordered, item)
	}

	s.items = reordered
	if s.route != nil {
		s.route = BuildRoute(s.items)
	}

	s.persist(ctx)
	return nil
}

// Clear empties the itinerary and erases the saved copy.
func (s *ItineraryStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.route = nil

	if err := s.kv.Delete(ctx, s.storageKey); err != nil {
		s.logger.Warn("Failed to erase saved itinerary", zap.Error(err))
	}
}

// OptimizeRoute sequences the current items and stores the resulting route.
// It fails with errors.ErrNotEnoughItems below two items, with
// errors.ErrOptimizationInProgress while another call is running and with
// errors.ErrOptimizationCancelled when ctx ends during the delay.
func (s *ItineraryStore) OptimizeRoute(ctx context.Context) (*domain.OptimizedRoute, error) {
	if !s.optimizing.CompareAndSwap(false, true) {
		return nil, errors.ErrOptimizationInProgress
	}
	defer s.optimizing.Store(false)

	if s.count() < minRouteItems {
		return nil, errors.ErrNotEnoughItems
	}

	if s.optimizeDelay > 0 {
		timer := time.NewTimer(s.optimizeDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, errors.ErrOptimizationCancelled.WithDetails(map[string]interface{}{
				"reason": ctx.Err().Error(),
			})
		case <-timer.C:
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// items may have been removed during the delay
	if len(s.items) < minRouteItems {
		return nil, errors.ErrNotEnoughItems
	}

	route := s.sequencer.Sequence(s.items)
	s.items = route.Items
	s.route = route

	s.persist(ctx)

	s.logger.Info("Route optimized",
		zap.Int("items", len(route.Items)),
		zap.Int("total_time", route.TotalTime),
		zap.String("estimated_cost", route.EstimatedCost))

	return route.Snapshot(), nil
}

// IsOptimizing reports whether OptimizeRoute is running.
func (s *ItineraryStore) IsOptimizing() bool {
	return s.optimizing.Load()
}

// Items returns a copy of the current item list.
func (s *ItineraryStore) Items() []domain.ItineraryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ItineraryItem, len(s.items))
	for i, item := range s.items {
		out[i] = item.Clone()
	}
	return out
}

// Route returns a copy of the last route, or nil when it was invalidated.
func (s *ItineraryStore) Route() *domain.OptimizedRoute {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.route.Snapshot()
}

func (s *ItineraryStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *ItineraryStore) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// persist must be called with s.mu held.
func (s *ItineraryStore) persist(ctx context.Context) {
	items := s.items
	if items == nil {
		items = []*domain.ItineraryItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		s.logger.Error("Failed to encode itinerary", zap.Error(err))
		return
	}

	if err := s.kv.Set(ctx, s.storageKey, data, 0); err != nil {
		s.logger.Warn("Failed to save itinerary",
			zap.String("key", s.storageKey),
			zap.Error(err))
	}
}
