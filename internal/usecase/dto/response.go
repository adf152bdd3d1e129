package dto

import "github.com/trip-planner-service/internal/domain"

// CreatedResponse - id of a stored travel request or message
type CreatedResponse struct {
	ID string `json:"id"`
}

// ItineraryResponse - current itinerary state
type ItineraryResponse struct {
	Items        []domain.ItineraryItem `json:"items"`
	Route        *domain.OptimizedRoute `json:"route"`
	IsOptimizing bool                   `json:"is_optimizing"`
}

// AddItemResponse - result of adding an item
type AddItemResponse struct {
	Added bool                   `json:"added"`
	Items []domain.ItineraryItem `json:"items"`
}

// HealthResponse - service liveness and backend summary
type HealthResponse struct {
	Status  string               `json:"status"`
	Backend domain.BackendStatus `json:"backend"`
}
