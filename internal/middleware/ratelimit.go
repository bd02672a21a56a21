package middleware

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/resumeforge/resumeforge-backend/internal/dto"
	"github.com/resumeforge/resumeforge-backend/internal/ratelimit"
)

// RateLimit gates a route group with the given limiter, keyed by client
// IP. A limiter backend failure fails open: admission control is load
// shedding, not a security boundary, so an unreachable store must not take
// the API down with it.
func RateLimit(limiter ratelimit.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision, err := limiter.Check(c.UserContext(), c.IP())
		if err != nil {
			slog.Error("rate limiter check failed", "error", err, "ip", c.IP())
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(decision.Reset.Unix(), 10))

		if !decision.Allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Error:   true,
				Message: decision.Message,
			})
		}

		return c.Next()
	}
}
