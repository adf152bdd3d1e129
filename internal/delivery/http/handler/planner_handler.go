package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/pkg/errors"
	"github.com/trip-planner-service/internal/pkg/utils"
	"github.com/trip-planner-service/internal/pkg/validator"
	"github.com/trip-planner-service/internal/usecase"
	"github.com/trip-planner-service/internal/usecase/dto"
)

var errInvalidBody = errors.ErrInvalidRequest.WithMessage("Invalid request body")

// PlannerHandler - planner matching, travel requests and messages
type PlannerHandler struct {
	gateway *usecase.PlannerGateway
	logger  *zap.Logger
}

func NewPlannerHandler(gateway *usecase.PlannerGateway, logger *zap.Logger) *PlannerHandler {
	return &PlannerHandler{
		gateway: gateway,
		logger:  logger,
	}
}

// MatchPlanners godoc
// @Summary Match travel planners
// @Description Returns a non-empty list of planners sorted by rating. Criteria are relaxed stage by stage when nothing matches; meta.stage names the stage that answered and meta.source the backend.
// @Tags Planners
// @Accept json
// @Produce json
// @Param request body dto.MatchPlannersRequest true "Areas, categories and budget"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Planner}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/planners/match [post]
func (h *PlannerHandler) MatchPlanners(c *fiber.Ctx) error {
	var req dto.MatchPlannersRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errInvalidBody)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result := h.gateway.GetMatchingPlanners(c.Context(), req.ToCriteria())

	return utils.SendSuccess(c, result.Planners, &utils.Meta{
		Total:  len(result.Planners),
		Stage:  string(result.Stage),
		Source: string(result.Source),
	})
}

// UpdateAvailability godoc
// @Summary Set planner availability
// @Tags Planners
// @Accept json
// @Produce json
// @Param id path string true "Planner ID"
// @Param request body dto.UpdateAvailabilityRequest true "Availability flag"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/planners/{id}/availability [put]
func (h *PlannerHandler) UpdateAvailability(c *fiber.Ctx) error {
	var req dto.UpdateAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errInvalidBody)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.gateway.UpdatePlannerAvailability(c.Context(), c.Params("id"), *req.Available); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateRating godoc
// @Summary Set planner rating
// @Tags Planners
// @Accept json
// @Produce json
// @Param id path string true "Planner ID"
// @Param request body dto.UpdateRatingRequest true "Rating between 0 and 5"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/planners/{id}/rating [put]
func (h *PlannerHandler) UpdateRating(c *fiber.Ctx) error {
	var req dto.UpdateRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errInvalidBody)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.gateway.UpdatePlannerRating(c.Context(), c.Params("id"), *req.Rating); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// CreateTravelRequest godoc
// @Summary Create a travel request
// @Description Stored in the remote backend when reachable, otherwise in the local ledger. The id is returned either way.
// @Tags Travel Requests
// @Accept json
// @Produce json
// @Param request body dto.CreateTravelRequestRequest true "Travel request"
// @Success 201 {object} utils.SuccessResponse{data=dto.CreatedResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/travel-requests [post]
func (h *PlannerHandler) CreateTravelRequest(c *fiber.Ctx) error {
	var req dto.CreateTravelRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errInvalidBody)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	id := h.gateway.CreateTravelRequest(c.Context(), req.ToDomain())

	return utils.SendCreated(c, dto.CreatedResponse{ID: id})
}

// SendMessage godoc
// @Summary Send a message
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} utils.SuccessResponse{data=dto.CreatedResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/messages [post]
func (h *PlannerHandler) SendMessage(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errInvalidBody)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	id := h.gateway.SendMessage(c.Context(), req.ToDomain())

	return utils.SendCreated(c, dto.CreatedResponse{ID: id})
}

// GetLedger godoc
// @Summary Locally stored records
// @Description Travel requests and messages persisted locally while the remote backend was unavailable.
// @Tags Backend
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Ledger}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/ledger [get]
func (h *PlannerHandler) GetLedger(c *fiber.Ctx) error {
	ledger, err := h.gateway.LocalLedger(c.Context())
	if err != nil {
		h.logger.Error("Failed to read local ledger", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, ledger, &utils.Meta{
		Total: len(ledger.TravelRequests) + len(ledger.Messages),
	})
}
