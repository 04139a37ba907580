// Package events records evaluated pages and fans new records out to live
// subscribers.
package events

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"
)

// MaxURLLength is the longest URL kept in storage. Longer URLs are cut to
// this many characters.
const MaxURLLength = 2048

var (
	ErrNilEvent = errors.New("events: nil event")
	ErrNoURL    = errors.New("events: url is required")
)

// Event is one evaluated page.
type Event struct {
	ID        int64    `json:"id"`
	URL       string   `json:"url"`
	RiskScore float64  `json:"risk_score"`
	Reasons   []string `json:"reasons"`

	// TS is seconds since the Unix epoch.
	TS float64 `json:"ts"`
}

// Store persists events.
type Store interface {
	// Add stores e and returns the stored copy with its ID set.
	Add(ctx context.Context, e *Event) (*Event, error)

	// List returns up to limit events, newest first.
	List(ctx context.Context, limit int) ([]Event, error)

	Close() error
}

// Now returns the current time in event timestamp units.
func Now() float64 {
	return ToTS(time.Now())
}

// ToTS converts t to seconds since the Unix epoch.
func ToTS(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// TruncateURL cuts u to MaxURLLength characters.
func TruncateURL(u string) string {
	if utf8.RuneCountInString(u) <= MaxURLLength {
		return u
	}
	n := 0
	for i := range u {
		if n == MaxURLLength {
			return u[:i]
		}
		n++
	}
	return u
}
