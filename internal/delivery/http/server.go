package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/trip-planner-service/internal/config"
	"github.com/trip-planner-service/internal/delivery/http/handler"
	"github.com/trip-planner-service/internal/delivery/http/middleware"
	"github.com/trip-planner-service/internal/pkg/errors"
)

// Server - Fiber HTTP server
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	plannerHandler   *handler.PlannerHandler
	itineraryHandler *handler.ItineraryHandler
	backendHandler   *handler.BackendHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	plannerHandler *handler.PlannerHandler,
	itineraryHandler *handler.ItineraryHandler,
	backendHandler *handler.BackendHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Trip Planner Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		plannerHandler:   plannerHandler,
		itineraryHandler: itineraryHandler,
		backendHandler:   backendHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.backendHandler.Health)

	// Remote backend
	api.Get("/backend/status", s.backendHandler.Status)
	api.Post("/backend/reconnect", s.backendHandler.Reconnect)
	api.Get("/ledger", s.plannerHandler.GetLedger)

	// Planners
	api.Post("/planners/match", s.plannerHandler.MatchPlanners)
	api.Put("/planners/:id/availability", s.plannerHandler.UpdateAvailability)
	api.Put("/planners/:id/rating", s.plannerHandler.UpdateRating)
	api.Post("/travel-requests", s.plannerHandler.CreateTravelRequest)
	api.Post("/messages", s.plannerHandler.SendMessage)

	// Itinerary
	api.Get("/itinerary", s.itineraryHandler.GetItinerary)
	api.Delete("/itinerary", s.itineraryHandler.ClearItinerary)
	api.Post("/itinerary/items", s.itineraryHandler.AddItem)
	api.Delete("/itinerary/items/:id", s.itineraryHandler.RemoveItem)
	api.Put("/itinerary/order", s.itineraryHandler.ReorderItems)
	api.Post("/itinerary/optimize", s.itineraryHandler.OptimizeRoute)
	api.Get("/itinerary/route", s.itineraryHandler.GetRoute)
}

// App exposes the fiber app for in-process tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		appErr := errors.ErrInternalServer
		if e, ok := err.(*fiber.Error); ok {
			switch {
			case e.Code == fiber.StatusNotFound:
				appErr = errors.New(errors.CodeNotFound, e.Message, e.Code)
			case e.Code < fiber.StatusInternalServerError:
				appErr = errors.New(errors.CodeInvalidRequest, e.Message, e.Code)
			}
		}

		if appErr.StatusCode >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", appErr.StatusCode),
				zap.Error(err),
			)
		}

		return c.Status(appErr.StatusCode).JSON(fiber.Map{
			"error": appErr,
		})
	}
}
