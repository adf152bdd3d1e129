package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/trip-planner-service/internal/delivery/http/middleware"
)

func TestRecovery_PanicBecomes500(t *testing.T) {
	// Arrange
	core, logs := observer.New(zap.ErrorLevel)
	app := fiber.New()
	app.Use(middleware.Recovery(zap.New(core)))
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("boom")
	})

	// Act
	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, 1, logs.FilterMessage("Panic recovered").Len())
}

func TestLogger_LevelFollowsStatus(t *testing.T) {
	// Arrange
	core, logs := observer.New(zap.DebugLevel)
	app := fiber.New()
	app.Use(middleware.Logger(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/bad", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusBadRequest) })

	// Act
	_, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/bad", nil))
	require.NoError(t, err)

	// Assert
	entries := logs.FilterMessage("HTTP request").AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
}

func TestCORS_EmptyOriginsAllowsAny(t *testing.T) {
	// Arrange
	app := fiber.New()
	app.Use(middleware.CORS(""))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://example.com")

	// Act
	resp, err := app.Test(req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestCORS_ConfiguredOrigin(t *testing.T) {
	// Arrange
	app := fiber.New()
	app.Use(middleware.CORS("http://localhost:5173"))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")

	// Act
	resp, err := app.Test(req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}
