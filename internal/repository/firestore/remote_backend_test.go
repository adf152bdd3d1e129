package firestore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/domain"
	apperrors "github.com/trip-planner-service/internal/pkg/errors"
	fsrepo "github.com/trip-planner-service/internal/repository/firestore"
)

// newEmulatorClient connects to the Firestore emulator; tests are skipped
// unless FIRESTORE_EMULATOR_HOST is set.
func newEmulatorClient(t *testing.T) *firestore.Client {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("Skipping Firestore test. Set FIRESTORE_EMULATOR_HOST to run")
	}

	client, err := firestore.NewClient(context.Background(), "trip-planner-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func seedPlanner(t *testing.T, client *firestore.Client, p domain.Planner) {
	_, err := client.Collection("planners").Doc(p.ID).Set(context.Background(), p)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = client.Collection("planners").Doc(p.ID).Delete(context.Background())
	})
}

func TestRemoteBackend_Ping(t *testing.T) {
	client := newEmulatorClient(t)
	backend := fsrepo.NewRemoteBackend(client, 5*time.Second, zap.NewNop())

	assert.NoError(t, backend.Ping(context.Background()))
}

func TestRemoteBackend_QueryPlanners(t *testing.T) {
	client := newEmulatorClient(t)
	backend := fsrepo.NewRemoteBackend(client, 5*time.Second, zap.NewNop())
	ctx := context.Background()

	seedPlanner(t, client, domain.Planner{
		ID:           "fs-tokyo-food",
		Name:         "Tokyo Food",
		Rating:       4.8,
		Areas:        []string{"Tokyo"},
		Categories:   []string{"Food"},
		PriceRange:   domain.PriceRange{Min: 5000, Max: 50000},
		Availability: true,
	})
	seedPlanner(t, client, domain.Planner{
		ID:           "fs-tokyo-busy",
		Name:         "Busy",
		Rating:       4.9,
		Areas:        []string{"Tokyo"},
		Categories:   []string{"Food"},
		PriceRange:   domain.PriceRange{Min: 5000, Max: 50000},
		Availability: false,
	})
	seedPlanner(t, client, domain.Planner{
		ID:           "fs-tokyo-shopping",
		Name:         "Shopping",
		Rating:       4.1,
		Areas:        []string{"Tokyo"},
		Categories:   []string{"Shopping"},
		PriceRange:   domain.PriceRange{Min: 5000, Max: 50000},
		Availability: true,
	})

	planners, err := backend.QueryPlanners(ctx, domain.MatchCriteria{
		Areas:      []string{"Tokyo"},
		Categories: []string{"Food"},
		Budget:     domain.Budget{Min: 5000, Max: 20000},
	})

	require.NoError(t, err)
	require.Len(t, planners, 1)
	assert.Equal(t, "fs-tokyo-food", planners[0].ID)
}

func TestRemoteBackend_CreateAndUpdate(t *testing.T) {
	client := newEmulatorClient(t)
	backend := fsrepo.NewRemoteBackend(client, 5*time.Second, zap.NewNop())
	ctx := context.Background()

	id, err := backend.CreateTravelRequest(ctx, domain.TravelRequest{
		UserID: "user-1",
		Status: domain.RequestPending,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	doc, err := client.Collection("travel_requests").Doc(id).Get(ctx)
	require.NoError(t, err)
	var stored domain.TravelRequest
	require.NoError(t, doc.DataTo(&stored))
	assert.Equal(t, "user-1", stored.UserID)
	assert.Equal(t, id, stored.ID)

	err = backend.UpdatePlannerRating(ctx, "fs-does-not-exist", 4.0)
	assert.ErrorIs(t, err, apperrors.ErrPlannerNotFound)
}
