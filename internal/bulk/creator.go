package bulk

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/neatops/pulsectl/internal/pulse"
)

// Defaults for the retry schedule.
const (
	DefaultMaxRetries = 3
	DefaultBaseWait   = 5 * time.Second
)

// RoomAPI is the single API call the creator needs.
type RoomAPI interface {
	CreateRoom(ctx context.Context, locationID int, name string) (pulse.RoomCreated, error)
}

// Creator wraps one room creation with pacing and 429 backoff retry.
//
// Only server-signaled rate limiting is retried; validation and network
// failures return immediately.
type Creator struct {
	api        RoomAPI
	pacer      *Pacer
	maxRetries int
	baseWait   time.Duration
	sleep      func(time.Duration)
	logger     hclog.Logger
}

// CreatorOption configures a Creator.
type CreatorOption func(*Creator)

// WithMaxRetries sets the retry budget for rate-limited calls.
func WithMaxRetries(n int) CreatorOption {
	return func(c *Creator) {
		if n >= 0 {
			c.maxRetries = n
		}
	}
}

// WithBaseWait sets the first backoff delay.
func WithBaseWait(d time.Duration) CreatorOption {
	return func(c *Creator) {
		if d > 0 {
			c.baseWait = d
		}
	}
}

// NewCreator creates a Creator with the default retry schedule.
func NewCreator(api RoomAPI, pacer *Pacer, logger hclog.Logger, opts ...CreatorOption) *Creator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	c := &Creator{
		api:        api,
		pacer:      pacer,
		maxRetries: DefaultMaxRetries,
		baseWait:   DefaultBaseWait,
		sleep:      time.Sleep,
		logger:     logger.Named("creator"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// retryDecision is the transition taken after one attempt.
type retryDecision int

const (
	decideSucceed retryDecision = iota
	decideBackoff
	decideFail
)

// Create creates one room, retrying on rate limiting.
func (c *Creator) Create(ctx context.Context, locationID, name string) (pulse.RoomCreated, error) {
	id, err := strconv.Atoi(locationID)
	if err != nil {
		return pulse.RoomCreated{}, fmt.Errorf("%w: location ID %q must be a number", pulse.ErrInvalidInput, locationID)
	}

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		c.pacer.Wait()
		room, err := c.api.CreateRoom(ctx, id, name)
		// Failed attempts still count against the rate budget.
		c.pacer.Record()

		switch c.decide(err, attempt) {
		case decideSucceed:
			return room, nil
		case decideBackoff:
			wait := c.backoff(attempt)
			c.logger.Debug("rate limited, backing off",
				"attempt", attempt+1, "max_retries", c.maxRetries, "wait", wait)
			c.sleep(wait)
		case decideFail:
			if errors.Is(err, pulse.ErrRateLimited) {
				return pulse.RoomCreated{}, fmt.Errorf("%w after %d retries", pulse.ErrRateLimitExhausted, c.maxRetries)
			}
			return pulse.RoomCreated{}, err
		}
	}

	// Unreachable: the final attempt always decides succeed or fail.
	return pulse.RoomCreated{}, pulse.ErrRateLimitExhausted
}

// decide maps an attempt outcome to the next transition.
func (c *Creator) decide(err error, attempt int) retryDecision {
	switch {
	case err == nil:
		return decideSucceed
	case errors.Is(err, pulse.ErrRateLimited) && attempt < c.maxRetries:
		return decideBackoff
	default:
		return decideFail
	}
}

// backoff returns the exponential delay for the given attempt:
// baseWait * 2^attempt (5s, 10s, 20s, 40s with the defaults).
func (c *Creator) backoff(attempt int) time.Duration {
	return c.baseWait * (1 << attempt)
}
