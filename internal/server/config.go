package server

import (
	"time"

	"github.com/raysh454/phishlens/internal/assessor"
	"github.com/raysh454/phishlens/internal/events"
	"github.com/raysh454/phishlens/internal/logging"
)

type Config struct {
	// ListenAddr is the HTTP listen address for the API server.
	ListenAddr string

	// DefaultEventsLimit is used by GET /events when no valid limit is
	// given; MaxEventsLimit caps any requested limit.
	DefaultEventsLimit int
	MaxEventsLimit     int

	// MaxBodyBytes bounds POST bodies.
	MaxBodyBytes int64

	ReadTimeout time.Duration

	Assessor assessor.Assessor
	Store    events.Store

	// Feed receives every stored event. One is created when nil.
	Feed *events.Feed

	Logger logging.Logger
}

func (c *Config) applyDefaults() {
	if c.DefaultEventsLimit <= 0 {
		c.DefaultEventsLimit = 100
	}
	if c.MaxEventsLimit < c.DefaultEventsLimit {
		c.MaxEventsLimit = c.DefaultEventsLimit
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = 5 << 20
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = 15 * time.Second
	}
}
