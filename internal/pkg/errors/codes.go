package errors

import "net/http"

const (
	CodeNotEnoughItems         = "NOT_ENOUGH_ITEMS"
	CodeOptimizationInProgress = "OPTIMIZATION_IN_PROGRESS"
	CodeOptimizationCancelled  = "OPTIMIZATION_CANCELLED"
	CodeInvalidItemOrder       = "INVALID_ITEM_ORDER"
	CodeInvalidRequest         = "INVALID_REQUEST"
	CodePlannerNotFound        = "PLANNER_NOT_FOUND"
	CodeInvalidRating          = "INVALID_RATING"
	CodeStorageError           = "STORAGE_ERROR"
	CodeTooManyRequests        = "TOO_MANY_REQUESTS"
	CodeNotFound               = "NOT_FOUND"
	CodeInternalServer         = "INTERNAL_SERVER_ERROR"
)

var (
	// ErrNotEnoughItems is the advisory shown when route optimisation is
	// requested with fewer than two stops.
	ErrNotEnoughItems = New(
		CodeNotEnoughItems,
		"Add at least 2 spots to optimize your route",
		http.StatusUnprocessableEntity,
	)

	ErrOptimizationInProgress = New(
		CodeOptimizationInProgress,
		"Route optimization is already running",
		http.StatusConflict,
	)

	// ErrOptimizationCancelled is returned when the caller's context ends
	// before the optimisation delay elapses.
	ErrOptimizationCancelled = New(
		CodeOptimizationCancelled,
		"Route optimization was cancelled",
		http.StatusServiceUnavailable,
	)

	ErrInvalidItemOrder = New(
		CodeInvalidItemOrder,
		"New order must contain every itinerary item exactly once",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		CodeInvalidRequest,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrPlannerNotFound = New(
		CodePlannerNotFound,
		"Planner not found",
		http.StatusNotFound,
	)

	ErrInvalidRating = New(
		CodeInvalidRating,
		"Rating must be between 0 and 5",
		http.StatusBadRequest,
	)

	ErrStorageError = New(
		CodeStorageError,
		"Storage operation failed",
		http.StatusInternalServerError,
	)

	ErrTooManyRequests = New(
		CodeTooManyRequests,
		"Too many requests, try again later",
		http.StatusTooManyRequests,
	)

	ErrInternalServer = New(
		CodeInternalServer,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
