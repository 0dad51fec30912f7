package inference

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// ErrCircuitOpen is returned while the breaker refuses calls after
// repeated provider failures.
var ErrCircuitOpen = errors.New("generation provider is temporarily unavailable")

type BreakerSettings struct {
	Name                   string
	MaxConsecutiveFailures uint32
	OpenTimeout            time.Duration
}

// BreakerClient stops calling a failing provider for OpenTimeout once
// MaxConsecutiveFailures calls in a row have failed. It never retries.
type BreakerClient struct {
	next    Client
	breaker *gobreaker.CircuitBreaker
}

func NewBreakerClient(next Client, settings BreakerSettings, logger *zap.Logger) *BreakerClient {
	maxFailures := settings.MaxConsecutiveFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			// The caller giving up is not a provider failure.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("generation provider breaker changed state",
				zap.String("provider", name),
				zap.Stringer("from", from),
				zap.Stringer("to", to),
			)
		},
	})
	return &BreakerClient{next: next, breaker: breaker}
}

func (c *BreakerClient) GenerateText(ctx context.Context, params GenerateTextRequest) (GenerateTextResponse, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.next.GenerateText(ctx, params)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return GenerateTextResponse{}, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		}
		return GenerateTextResponse{}, err
	}
	return result.(GenerateTextResponse), nil
}

// State exposes the breaker state for health reporting.
func (c *BreakerClient) State() gobreaker.State {
	return c.breaker.State()
}
