package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/trip-planner-service/internal/pkg/errors"
	"github.com/trip-planner-service/internal/pkg/utils"
	"github.com/trip-planner-service/internal/usecase"
	"github.com/trip-planner-service/internal/usecase/dto"
)

// BackendHandler - remote backend status and reconnect
type BackendHandler struct {
	gateway   *usecase.PlannerGateway
	reconnect *rate.Limiter
	logger    *zap.Logger
}

// NewBackendHandler - reconnects are allowed at most once per
// reconnectInterval; zero disables the limit.
func NewBackendHandler(gateway *usecase.PlannerGateway, reconnectInterval time.Duration, logger *zap.Logger) *BackendHandler {
	limit := rate.Inf
	if reconnectInterval > 0 {
		limit = rate.Every(reconnectInterval)
	}
	return &BackendHandler{
		gateway:   gateway,
		reconnect: rate.NewLimiter(limit, 1),
		logger:    logger,
	}
}

// Health godoc
// @Summary Service health
// @Description The service is healthy in local-only mode too; backend reports the remote status.
// @Tags Backend
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.HealthResponse}
// @Router /api/v1/health [get]
func (h *BackendHandler) Health(c *fiber.Ctx) error {
	return utils.SendSuccess(c, dto.HealthResponse{
		Status:  "healthy",
		Backend: h.gateway.Status(),
	}, nil)
}

// Status godoc
// @Summary Remote backend status
// @Description Probes the remote backend once and reports reachability and the retry budget.
// @Tags Backend
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.BackendStatus}
// @Router /api/v1/backend/status [get]
func (h *BackendHandler) Status(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.gateway.CheckConnection(c.Context()), nil)
}

// Reconnect godoc
// @Summary Reconnect to the remote backend
// @Description Clears the retry budget and probes again.
// @Tags Backend
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.BackendStatus}
// @Failure 429 {object} utils.ErrorResponse
// @Router /api/v1/backend/reconnect [post]
func (h *BackendHandler) Reconnect(c *fiber.Ctx) error {
	if !h.reconnect.Allow() {
		return utils.SendError(c, errors.ErrTooManyRequests)
	}

	status := h.gateway.Reconnect(c.Context())
	h.logger.Info("Manual reconnect",
		zap.Bool("available", status.Available),
		zap.Bool("configured", status.Configured))

	return utils.SendSuccess(c, status, nil)
}
