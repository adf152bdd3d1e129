package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/trip-planner-service/internal/domain"
	apperrors "github.com/trip-planner-service/internal/pkg/errors"
)

// MockRemoteBackend is a mock of RemoteBackend
type MockRemoteBackend struct {
	mock.Mock
}

func (m *MockRemoteBackend) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRemoteBackend) QueryPlanners(ctx context.Context, criteria domain.MatchCriteria) ([]domain.Planner, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Planner), args.Error(1)
}

func (m *MockRemoteBackend) CreateTravelRequest(ctx context.Context, req domain.TravelRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockRemoteBackend) SendMessage(ctx context.Context, msg domain.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func (m *MockRemoteBackend) UpdatePlannerAvailability(ctx context.Context, plannerID string, available bool) error {
	args := m.Called(ctx, plannerID, available)
	return args.Error(0)
}

func (m *MockRemoteBackend) UpdatePlannerRating(ctx context.Context, plannerID string, rating float64) error {
	args := m.Called(ctx, plannerID, rating)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// memoryKV is an in-memory KVRepository
type memoryKV struct {
	mu      sync.Mutex
	data    map[string][]byte
	setErr  error
	setCall int
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string][]byte)}
}

func (kv *memoryKV) Get(_ context.Context, key string) ([]byte, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	v, ok := kv.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (kv *memoryKV) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.setCall++
	if kv.setErr != nil {
		return kv.setErr
	}
	kv.data[key] = append([]byte(nil), value...)
	return nil
}

func (kv *memoryKV) Delete(_ context.Context, key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.data, key)
	return nil
}

func (kv *memoryKV) Exists(_ context.Context, key string) (bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	_, ok := kv.data[key]
	return ok, nil
}

// memoryPlanners is an in-memory PlannerRepository
type memoryPlanners struct {
	mu       sync.Mutex
	planners []domain.Planner
}

func (r *memoryPlanners) List(_ context.Context) ([]domain.Planner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Planner(nil), r.planners...), nil
}

func (r *memoryPlanners) SetAvailability(_ context.Context, plannerID string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.planners {
		if r.planners[i].ID == plannerID {
			r.planners[i].Availability = available
			return nil
		}
	}
	return apperrors.ErrPlannerNotFound
}

func (r *memoryPlanners) SetRating(_ context.Context, plannerID string, rating float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.planners {
		if r.planners[i].ID == plannerID {
			r.planners[i].Rating = rating
			return nil
		}
	}
	return apperrors.ErrPlannerNotFound
}

// itemAt places an item d km due north of the anchor.
func itemAt(id string, d float64) *domain.ItineraryItem {
	return &domain.ItineraryItem{
		ID:   id,
		Name: id,
		Coordinates: &domain.Coordinates{
			Lat: domain.CityCenter.Lat + d/111.195,
			Lng: domain.CityCenter.Lng,
		},
		EstimatedVisitTime: 60,
		Category:           domain.ItinerarySightseeing,
	}
}
