package errors

import (
	"context"
	"math"
	"time"
)

// BackoffPolicy describes exponential backoff between retry attempts.
type BackoffPolicy struct {
	InitialDelay time.Duration
	Multiplier   float64
	MaxDelay     time.Duration
}

// DefaultBackoffPolicy yields 2s, 4s, 8s for attempts 0, 1, 2.
func DefaultBackoffPolicy() BackoffPolicy {
	return BackoffPolicy{
		InitialDelay: 2 * time.Second,
		Multiplier:   2.0,
		MaxDelay:     8 * time.Second,
	}
}

// Delay computes the backoff delay after the given zero-based attempt.
// Formula: initial * (multiplier ^ attempt), capped at MaxDelay.
func (p BackoffPolicy) Delay(attempt int) time.Duration {
	multiplier := p.Multiplier
	if multiplier <= 0 {
		multiplier = 2.0
	}

	factor := math.Pow(multiplier, float64(attempt))
	delay := time.Duration(float64(p.InitialDelay) * factor)
	if p.MaxDelay > 0 && delay > p.MaxDelay {
		return p.MaxDelay
	}
	return delay
}

// Wait suspends for the given delay or returns early when the context is
// cancelled. This is the pipeline's only blocking point outside the provider
// call itself.
func Wait(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
