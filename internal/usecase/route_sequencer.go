package usecase

import (
	"fmt"
	"math"
	"sort"

	"github.com/trip-planner-service/internal/domain"
)

const (
	// averageLegKm is the per-stop distance estimate used for route totals.
	averageLegKm = 2.5
	// yenPerKm converts the distance estimate into a cost estimate.
	yenPerKm = 200

	transportMethod   = "train/walk"
	transportDuration = "20–30min"
	transportCost     = "¥200–400"
)

var routeSuggestions = []string{
	"Visit popular spots early in the morning to avoid crowds",
	"Check opening hours and holidays before you go",
	"A one-day subway pass pays off after three or more rides",
	"Leave some buffer time between stops for meals and rest",
}

// RouteSequencer orders itinerary items and derives route estimates.
// Implementations assign VisitOrder on the given items in place.
type RouteSequencer interface {
	Sequence(items []*domain.ItineraryItem) *domain.OptimizedRoute
}

// AnchorSequencer sorts stops by their distance from a single anchor point.
// It does not minimise travel between consecutive stops.
type AnchorSequencer struct {
	anchor domain.Coordinates
}

// NewAnchorSequencer - sequencer anchored at domain.CityCenter
func NewAnchorSequencer() *AnchorSequencer {
	return &AnchorSequencer{anchor: domain.CityCenter}
}

func (s *AnchorSequencer) Sequence(items []*domain.ItineraryItem) *domain.OptimizedRoute {
	ordered := make([]*domain.ItineraryItem, len(items))
	copy(ordered, items)

	distances := make(map[*domain.ItineraryItem]float64, len(ordered))
	for _, item := range ordered {
		distances[item] = s.anchor.DistanceKm(item.Position())
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return distances[ordered[i]] < distances[ordered[j]]
	})

	return BuildRoute(ordered)
}

// NearestNeighborSequencer starts at the stop closest to the anchor and
// repeatedly moves to the closest unvisited stop.
type NearestNeighborSequencer struct {
	anchor domain.Coordinates
}

// NewNearestNeighborSequencer - greedy chain strategy anchored at domain.CityCenter
func NewNearestNeighborSequencer() *NearestNeighborSequencer {
	return &NearestNeighborSequencer{anchor: domain.CityCenter}
}

func (s *NearestNeighborSequencer) Sequence(items []*domain.ItineraryItem) *domain.OptimizedRoute {
	remaining := make([]*domain.ItineraryItem, len(items))
	copy(remaining, items)
	ordered := make([]*domain.ItineraryItem, 0, len(items))

	current := s.anchor
	for len(remaining) > 0 {
		best := 0
		bestDist := math.Inf(1)
		for i, item := range remaining {
			// strict comparison keeps insertion order on ties
			if d := current.DistanceKm(item.Position()); d < bestDist {
				best, bestDist = i, d
			}
		}
		next := remaining[best]
		ordered = append(ordered, next)
		current = next.Position()
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return BuildRoute(ordered)
}

// BuildRoute assigns visit orders to already ordered items and computes the
// route estimates.
func BuildRoute(ordered []*domain.ItineraryItem) *domain.OptimizedRoute {
	totalTime := 0
	for i, item := range ordered {
		item.SetVisitOrder(i + 1)
		totalTime += item.EstimatedVisitTime
	}

	totalDistance := float64(len(ordered)) * averageLegKm

	return &domain.OptimizedRoute{
		Items:         ordered,
		TotalDistance: totalDistance,
		TotalTime:     totalTime,
		EstimatedCost: fmt.Sprintf("¥%d", int64(math.Round(totalDistance*yenPerKm))),
		Suggestions:   append([]string(nil), routeSuggestions...),
		TransportPlan: buildTransportPlan(ordered),
	}
}

func buildTransportPlan(ordered []*domain.ItineraryItem) []domain.TransportStep {
	if len(ordered) < 2 {
		return []domain.TransportStep{}
	}

	steps := make([]domain.TransportStep, 0, len(ordered)-1)
	for i := 0; i < len(ordered)-1; i++ {
		from, to := ordered[i], ordered[i+1]
		steps = append(steps, domain.TransportStep{
			From:        from.Name,
			To:          to.Name,
			Method:      transportMethod,
			Duration:    transportDuration,
			Cost:        transportCost,
			Description: fmt.Sprintf("Take the train or walk from %s to %s", from.Name, to.Name),
		})
	}
	return steps
}
