package middleware

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumeforge/resumeforge-backend/internal/ratelimit"
)

type brokenLimiter struct{}

func (brokenLimiter) Check(ctx context.Context, identifier string) (ratelimit.Decision, error) {
	return ratelimit.Decision{}, errors.New("store unreachable")
}

func limitedApp(limiter ratelimit.Limiter) *fiber.App {
	app := fiber.New()
	app.Get("/", RateLimit(limiter), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestRateLimit_DeniesOverBudget(t *testing.T) {
	cfg := ratelimit.Config{Window: time.Minute, Max: 2, Message: "slow down"}
	app := limitedApp(ratelimit.NewMemoryLimiter(cfg))

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "2", resp.Header.Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))
	resp.Body.Close()
}

func TestRateLimit_FailsOpenOnStoreError(t *testing.T) {
	app := limitedApp(brokenLimiter{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("X-RateLimit-Limit"))
	resp.Body.Close()
}
