package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jet-charter-service/internal/delivery/http/middleware"
)

func newApp(logger *zap.Logger) *fiber.App {
	app := fiber.New()
	app.Use(middleware.Recovery(logger))
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/panic", func(c *fiber.Ctx) error { panic("boom") })
	return app
}

func TestLogger_FieldsAndLevel(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := newApp(zap.New(core))

	req := httptest.NewRequest("GET", "/ok?continent=asia", nil)
	req.Header.Set("X-Forwarded-For", "81.2.69.160, 10.0.0.1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "81.2.69.160", fields["client_ip"])
	assert.Equal(t, "continent=asia", fields["query"])
	assert.Equal(t, int64(200), fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestLogger_NotFoundIsWarn(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := newApp(zap.New(core))

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestRecovery_LogsPanic(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := newApp(zap.New(core))

	resp, err := app.Test(httptest.NewRequest("GET", "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	entries := logs.FilterMessage("Panic recovered").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "boom", entries[0].ContextMap()["panic"])
	assert.Equal(t, "/panic", entries[0].ContextMap()["path"])
}

func TestCORS_AllowedOrigin(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.CORS("https://jets.example"))
	app.Get("/api/top-routes", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	req := httptest.NewRequest("GET", "/api/top-routes", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://jets.example")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "https://jets.example", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))

	req = httptest.NewRequest("GET", "/api/top-routes", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://evil.example")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Empty(t, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}
