package ratelimit

import (
	"context"
	"time"
)

// Config describes one admission window.
type Config struct {
	Window  time.Duration
	Max     int
	Message string
}

// Standard gates general API traffic, Strict gates sensitive operations
// (sign-up, sign-in), Loose gates cheap public reads.
var (
	Standard = Config{
		Window:  15 * time.Minute,
		Max:     100,
		Message: "Too many requests, please try again later",
	}
	Strict = Config{
		Window:  15 * time.Minute,
		Max:     5,
		Message: "Too many attempts, please try again later",
	}
	Loose = Config{
		Window:  15 * time.Minute,
		Max:     500,
		Message: "Too many requests, please try again later",
	}
)

// Decision is the outcome of one admission check. Reset is the end of the
// current window; on a denied decision Remaining is always 0.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	Reset     time.Time
	Message   string
}

// Limiter admits or rejects a request for the given client identifier.
// Implementations must count concurrent checks for the same identifier
// without losing increments.
type Limiter interface {
	Check(ctx context.Context, identifier string) (Decision, error)
}
