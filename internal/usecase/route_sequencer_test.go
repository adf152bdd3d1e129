package usecase_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner-service/internal/domain"
	"github.com/trip-planner-service/internal/usecase"
)

func visitOrders(items []*domain.ItineraryItem) []int {
	out := make([]int, len(items))
	for i, item := range items {
		if item.VisitOrder != nil {
			out[i] = *item.VisitOrder
		}
	}
	return out
}

func itemIDs(items []*domain.ItineraryItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestAnchorSequencer_OrdersByDistanceFromAnchor(t *testing.T) {
	// Arrange
	x := itemAt("X", 10)
	y := itemAt("Y", 2)

	// Act
	route := usecase.NewAnchorSequencer().Sequence([]*domain.ItineraryItem{x, y})

	// Assert
	require.NotNil(t, route)
	assert.Equal(t, []string{"Y", "X"}, itemIDs(route.Items))
	assert.Equal(t, []int{1, 2}, visitOrders(route.Items))

	// visit orders are assigned on the caller's items
	require.NotNil(t, y.VisitOrder)
	assert.Equal(t, 1, *y.VisitOrder)
	assert.Equal(t, 2, *x.VisitOrder)
}

func TestAnchorSequencer_VisitOrderFollowsDistances(t *testing.T) {
	items := []*domain.ItineraryItem{
		itemAt("d7", 7),
		itemAt("d1", 1),
		itemAt("d12", 12),
		itemAt("d3", 3),
		itemAt("d5", 5),
	}

	route := usecase.NewAnchorSequencer().Sequence(items)

	assert.Equal(t, []string{"d1", "d3", "d5", "d7", "d12"}, itemIDs(route.Items))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, visitOrders(route.Items))
}

func TestAnchorSequencer_MissingCoordinatesUseCityCenter(t *testing.T) {
	far := itemAt("far", 4)
	noCoords := &domain.ItineraryItem{ID: "none", Name: "none", EstimatedVisitTime: 30}
	broken := &domain.ItineraryItem{
		ID:                 "nan",
		Name:               "nan",
		Coordinates:        &domain.Coordinates{Lat: math.NaN(), Lng: 200},
		EstimatedVisitTime: 30,
	}

	route := usecase.NewAnchorSequencer().Sequence([]*domain.ItineraryItem{far, noCoords, broken})

	// both fallbacks sit on the anchor, stable sort keeps their input order
	assert.Equal(t, []string{"none", "nan", "far"}, itemIDs(route.Items))
}

func TestAnchorSequencer_Aggregates(t *testing.T) {
	a := itemAt("Senso-ji", 3)
	a.EstimatedVisitTime = 90
	b := itemAt("Tsukiji", 1)
	b.EstimatedVisitTime = 45

	route := usecase.NewAnchorSequencer().Sequence([]*domain.ItineraryItem{a, b})

	assert.Equal(t, 135, route.TotalTime)
	assert.InDelta(t, 5.0, route.TotalDistance, 1e-9)
	assert.Equal(t, "¥1000", route.EstimatedCost)
	assert.Len(t, route.Suggestions, 4)

	require.Len(t, route.TransportPlan, 1)
	step := route.TransportPlan[0]
	assert.Equal(t, "Tsukiji", step.From)
	assert.Equal(t, "Senso-ji", step.To)
	assert.Equal(t, "train/walk", step.Method)
	assert.Equal(t, "20–30min", step.Duration)
	assert.Equal(t, "¥200–400", step.Cost)
	assert.Contains(t, step.Description, "Tsukiji")
	assert.Contains(t, step.Description, "Senso-ji")
}

func TestSequencers_TransportPlanLength(t *testing.T) {
	sequencers := map[string]usecase.RouteSequencer{
		"anchor":           usecase.NewAnchorSequencer(),
		"nearest_neighbor": usecase.NewNearestNeighborSequencer(),
	}

	for name, seq := range sequencers {
		for n := 1; n <= 6; n++ {
			items := make([]*domain.ItineraryItem, 0, n)
			for i := 0; i < n; i++ {
				items = append(items, itemAt(string(rune('A'+i)), float64((i*7)%5+1)))
			}

			route := seq.Sequence(items)

			assert.Len(t, route.Items, n, name)
			assert.Len(t, route.TransportPlan, n-1, name)
		}
	}
}

func TestSequencers_EmptyInput(t *testing.T) {
	route := usecase.NewAnchorSequencer().Sequence(nil)

	require.NotNil(t, route)
	assert.Empty(t, route.Items)
	assert.Empty(t, route.TransportPlan)
	assert.Equal(t, "¥0", route.EstimatedCost)
}

func TestNearestNeighborSequencer_ChainsClosestStops(t *testing.T) {
	// Arrange: two stops north, one stop south of the anchor
	north1 := itemAt("north1", 1)
	north5 := itemAt("north5", 5)
	south2 := itemAt("south2", -2)

	// Act
	route := usecase.NewNearestNeighborSequencer().Sequence([]*domain.ItineraryItem{south2, north5, north1})

	// Assert: from north1, south2 is 3 km away and north5 is 4 km away
	assert.Equal(t, []string{"north1", "south2", "north5"}, itemIDs(route.Items))
	assert.Equal(t, []int{1, 2, 3}, visitOrders(route.Items))
}
