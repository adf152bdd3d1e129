package domain

import (
	"math"
	"time"

	"github.com/trip-planner-service/internal/pkg/utils"
)

// ItineraryCategory - kind of point of interest in an itinerary
type ItineraryCategory string

const (
	ItinerarySightseeing   ItineraryCategory = "sightseeing"
	ItineraryFood          ItineraryCategory = "food"
	ItineraryShopping      ItineraryCategory = "shopping"
	ItineraryEntertainment ItineraryCategory = "entertainment"
)

// ItineraryCategories lists every accepted itinerary category.
var ItineraryCategories = []ItineraryCategory{
	ItinerarySightseeing,
	ItineraryFood,
	ItineraryShopping,
	ItineraryEntertainment,
}

// IsValid reports whether c is one of ItineraryCategories.
func (c ItineraryCategory) IsValid() bool {
	for _, known := range ItineraryCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Coordinates - WGS84 point
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CityCenter is the anchor used to rank itinerary stops and the point
// substituted for stops without usable coordinates (Tokyo).
var CityCenter = Coordinates{Lat: 35.6762, Lng: 139.6503}

// DistanceKm returns the great-circle distance to o.
func (c Coordinates) DistanceKm(o Coordinates) float64 {
	return utils.HaversineDistance(c.Lat, c.Lng, o.Lat, o.Lng)
}

// IsUsable reports whether the point is finite and inside WGS84 bounds.
func (c Coordinates) IsUsable() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}
	return utils.ValidateCoordinates(c.Lat, c.Lng)
}

// ItineraryItem - point of interest selected by the user
type ItineraryItem struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Address            string            `json:"address"`
	Coordinates        *Coordinates      `json:"coordinates,omitempty"`
	EstimatedVisitTime int               `json:"estimated_visit_time"`
	Category           ItineraryCategory `json:"category"`
	VisitOrder         *int              `json:"visit_order,omitempty"`
	AddedAt            time.Time         `json:"added_at"`
}

// Position returns the item's coordinates, or CityCenter when they are
// missing or unusable.
func (i *ItineraryItem) Position() Coordinates {
	if i.Coordinates == nil || !i.Coordinates.IsUsable() {
		return CityCenter
	}
	return *i.Coordinates
}

// SetVisitOrder assigns a 1-based position.
func (i *ItineraryItem) SetVisitOrder(order int) {
	i.VisitOrder = &order
}

// Clone returns a deep copy of the item.
func (i *ItineraryItem) Clone() ItineraryItem {
	out := *i
	if i.Coordinates != nil {
		c := *i.Coordinates
		out.Coordinates = &c
	}
	if i.VisitOrder != nil {
		v := *i.VisitOrder
		out.VisitOrder = &v
	}
	return out
}

// TransportStep describes the leg between two consecutive stops.
type TransportStep struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Method      string `json:"method"`
	Duration    string `json:"duration"`
	Cost        string `json:"cost"`
	Description string `json:"description"`
}

// OptimizedRoute - ordered itinerary with derived estimates.
// len(TransportPlan) == len(Items)-1 for every route with at least one item.
type OptimizedRoute struct {
	Items         []*ItineraryItem `json:"items"`
	TotalDistance float64          `json:"total_distance"`
	TotalTime     int              `json:"total_time"`
	EstimatedCost string           `json:"estimated_cost"`
	Suggestions   []string         `json:"suggestions"`
	TransportPlan []TransportStep  `json:"transport_plan"`
}

// Snapshot returns a copy that shares no pointers with r.
func (r *OptimizedRoute) Snapshot() *OptimizedRoute {
	if r == nil {
		return nil
	}
	out := *r
	out.Items = make([]*ItineraryItem, len(r.Items))
	for i, item := range r.Items {
		c := item.Clone()
		out.Items[i] = &c
	}
	out.Suggestions = append([]string(nil), r.Suggestions...)
	out.TransportPlan = append([]TransportStep(nil), r.TransportPlan...)
	return &out
}
