package dto

import (
	"time"

	"github.com/trip-planner-service/internal/domain"
)

// BudgetInput - requested spending window in yen
type BudgetInput struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// MatchPlannersRequest - planner matching query. Any combination is
// accepted; the matcher always answers with at least one planner.
type MatchPlannersRequest struct {
	Areas      []string    `json:"areas" validate:"omitempty,max=20,dive,max=100"`
	Categories []string    `json:"categories" validate:"omitempty,max=20,dive,max=100"`
	Budget     BudgetInput `json:"budget"`
}

func (r MatchPlannersRequest) ToCriteria() domain.MatchCriteria {
	return domain.MatchCriteria{
		Areas:      r.Areas,
		Categories: r.Categories,
		Budget:     domain.Budget{Min: r.Budget.Min, Max: r.Budget.Max},
	}
}

// CreateTravelRequestRequest - new matching attempt
type CreateTravelRequestRequest struct {
	UserID      string      `json:"user_id" validate:"required,max=128"`
	StartDate   time.Time   `json:"start_date" validate:"required"`
	EndDate     time.Time   `json:"end_date" validate:"required,gtefield=StartDate"`
	Budget      BudgetInput `json:"budget"`
	Areas       []string    `json:"areas" validate:"omitempty,max=20,dive,max=100"`
	Categories  []string    `json:"categories" validate:"omitempty,max=20,dive,max=100"`
	GroupSize   int         `json:"group_size" validate:"required,min=1,max=100"`
	Preferences []string    `json:"preferences" validate:"omitempty,max=50,dive,max=100"`
}

func (r CreateTravelRequestRequest) ToDomain() domain.TravelRequest {
	return domain.TravelRequest{
		UserID:      r.UserID,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Budget:      domain.Budget{Min: r.Budget.Min, Max: r.Budget.Max},
		Areas:       r.Areas,
		Categories:  r.Categories,
		GroupSize:   r.GroupSize,
		Preferences: r.Preferences,
	}
}

// SendMessageRequest - message within a travel request conversation
type SendMessageRequest struct {
	RequestID  string `json:"request_id" validate:"required,max=128"`
	SenderID   string `json:"sender_id" validate:"required,max=128"`
	ReceiverID string `json:"receiver_id" validate:"required,max=128"`
	Content    string `json:"content" validate:"required,max=5000"`
}

func (r SendMessageRequest) ToDomain() domain.Message {
	return domain.Message{
		RequestID:  r.RequestID,
		SenderID:   r.SenderID,
		ReceiverID: r.ReceiverID,
		Content:    r.Content,
	}
}

// UpdateAvailabilityRequest - planner availability toggle
type UpdateAvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// UpdateRatingRequest - planner rating update
type UpdateRatingRequest struct {
	Rating *float64 `json:"rating" validate:"required,min=0,max=5"`
}

// CoordinatesInput - WGS84 point
type CoordinatesInput struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// AddItineraryItemRequest - point of interest to add to the itinerary
type AddItineraryItemRequest struct {
	ID                 string            `json:"id" validate:"required,max=128"`
	Name               string            `json:"name" validate:"required,max=200"`
	Address            string            `json:"address" validate:"omitempty,max=500"`
	Coordinates        *CoordinatesInput `json:"coordinates,omitempty"`
	EstimatedVisitTime int               `json:"estimated_visit_time" validate:"min=0,max=1440"` // minutes
	Category           string            `json:"category" validate:"required,itinerary_category"`
}

func (r AddItineraryItemRequest) ToDomain() domain.ItineraryItem {
	item := domain.ItineraryItem{
		ID:                 r.ID,
		Name:               r.Name,
		Address:            r.Address,
		EstimatedVisitTime: r.EstimatedVisitTime,
		Category:           domain.ItineraryCategory(r.Category),
	}
	if r.Coordinates != nil {
		item.Coordinates = &domain.Coordinates{Lat: r.Coordinates.Lat, Lng: r.Coordinates.Lng}
	}
	return item
}

// ReorderItineraryRequest - full permutation of itinerary item ids
type ReorderItineraryRequest struct {
	IDs []string `json:"ids" validate:"required,dive,required"`
}
