package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/pkg/utils"
	"github.com/trip-planner-service/internal/pkg/validator"
	"github.com/trip-planner-service/internal/usecase"
	"github.com/trip-planner-service/internal/usecase/dto"
)

// ItineraryHandler - itinerary editing and route optimization
type ItineraryHandler struct {
	store  *usecase.ItineraryStore
	logger *zap.Logger
}

func NewItineraryHandler(store *usecase.ItineraryStore, logger *zap.Logger) *ItineraryHandler {
	return &ItineraryHandler{
		store:  store,
		logger: logger,
	}
}

func (h *ItineraryHandler) current() dto.ItineraryResponse {
	return dto.ItineraryResponse{
		Items:        h.store.Items(),
		Route:        h.store.Route(),
		IsOptimizing: h.store.IsOptimizing(),
	}
}

// GetItinerary godoc
// @Summary Current itinerary
// @Description Items in their current order, the last optimized route (null after edits) and the optimization busy flag.
// @Tags Itinerary
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ItineraryResponse}
// @Router /api/v1/itinerary [get]
func (h *ItineraryHandler) GetItinerary(c *fiber.Ctx) error {
	resp := h.current()
	return utils.SendSuccess(c, resp, &utils.Meta{Total: len(resp.Items)})
}

// AddItem godoc
// @Summary Add a spot to the itinerary
// @Description Adding an id that is already present changes nothing.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body dto.AddItineraryItemRequest true "Spot"
// @Success 200 {object} utils.SuccessResponse{data=dto.AddItemResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/itinerary/items [post]
func (h *ItineraryHandler) AddItem(c *fiber.Ctx) error {
	var req dto.AddItineraryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errInvalidBody)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	added := h.store.AddItem(c.Context(), req.ToDomain())

	return utils.SendSuccess(c, dto.AddItemResponse{
		Added: added,
		Items: h.store.Items(),
	}, nil)
}

// RemoveItem godoc
// @Summary Remove a spot from the itinerary
// @Tags Itinerary
// @Param id path string true "Item ID"
// @Success 204
// @Router /api/v1/itinerary/items/{id} [delete]
func (h *ItineraryHandler) RemoveItem(c *fiber.Ctx) error {
	h.store.RemoveItem(c.Context(), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// ReorderItems godoc
// @Summary Reorder the itinerary
// @Description The ids must list every current item exactly once. An optimized route follows the new order.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body dto.ReorderItineraryRequest true "Item ids in the new order"
// @Success 200 {object} utils.SuccessResponse{data=dto.ItineraryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/itinerary/order [put]
func (h *ItineraryHandler) ReorderItems(c *fiber.Ctx) error {
	var req dto.ReorderItineraryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errInvalidBody)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.store.ReorderItems(c.Context(), req.IDs); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, h.current(), nil)
}

// OptimizeRoute godoc
// @Summary Optimize the route
// @Description Orders the spots and estimates time, distance, cost and transport legs. Needs at least 2 spots.
// @Tags Itinerary
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.OptimizedRoute}
// @Failure 409 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/itinerary/optimize [post]
func (h *ItineraryHandler) OptimizeRoute(c *fiber.Ctx) error {
	route, err := h.store.OptimizeRoute(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, route, &utils.Meta{Total: len(route.Items)})
}

// GetRoute godoc
// @Summary Last optimized route
// @Description data is null when the itinerary changed since the last optimization.
// @Tags Itinerary
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.OptimizedRoute}
// @Router /api/v1/itinerary/route [get]
func (h *ItineraryHandler) GetRoute(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.store.Route(), nil)
}

// ClearItinerary godoc
// @Summary Clear the itinerary
// @Tags Itinerary
// @Success 204
// @Router /api/v1/itinerary [delete]
func (h *ItineraryHandler) ClearItinerary(c *fiber.Ctx) error {
	h.store.Clear(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}
