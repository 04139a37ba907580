// Package testutil provides shared test doubles for use across package tests.
// All dummies implement the corresponding interfaces from the production code,
// allowing injection into components under test without real I/O or side effects.
package testutil

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/raysh454/phishlens/internal/assessor"
	"github.com/raysh454/phishlens/internal/events"
	"github.com/raysh454/phishlens/internal/logging"
)

// ─── Logger ────────────────────────────────────────────────────────────

// DummyLogger implements logging.Logger with in-memory recording.
type DummyLogger struct {
	mu     sync.Mutex
	Errors []string
	Infos  []string
	Debugs []string
	Warns  []string
}

func (l *DummyLogger) Debug(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Debugs = append(l.Debugs, msg)
}

func (l *DummyLogger) Info(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Infos = append(l.Infos, msg)
}

func (l *DummyLogger) Warn(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Warns = append(l.Warns, msg)
}

func (l *DummyLogger) Error(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Errors = append(l.Errors, msg)
}

func (l *DummyLogger) With(_ ...logging.Field) logging.Logger { return l }

// ErrorCount returns the number of recorded error messages.
func (l *DummyLogger) ErrorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.Errors)
}

// ─── Assessor ──────────────────────────────────────────────────────────

// DummyAssessor implements assessor.Assessor with a preconfigured result.
type DummyAssessor struct {
	Result *assessor.Result
	Err    error

	mu    sync.Mutex
	Calls []string
}

func (d *DummyAssessor) Assess(_ context.Context, url, _ string) (*assessor.Result, error) {
	d.mu.Lock()
	d.Calls = append(d.Calls, url)
	d.mu.Unlock()

	if d.Err != nil {
		return nil, d.Err
	}
	if d.Result != nil {
		return d.Result, nil
	}
	return &assessor.Result{
		RiskScore:  0.5,
		Reasons:    []string{},
		Highlights: []string{},
		Domain:     "example.com",
		Version:    "v-dummy",
	}, nil
}

func (d *DummyAssessor) Close() error { return nil }

// ─── Event store ───────────────────────────────────────────────────────

// MemoryStore implements events.Store in memory. Set AddErr or ListErr to
// force failures.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	Events []events.Event

	AddErr  error
	ListErr error
}

func (m *MemoryStore) Add(_ context.Context, e *events.Event) (*events.Event, error) {
	if e == nil {
		return nil, errors.New("nil event")
	}
	if m.AddErr != nil {
		return nil, m.AddErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	stored := *e
	stored.ID = m.nextID
	if stored.Reasons == nil {
		stored.Reasons = []string{}
	}
	m.Events = append(m.Events, stored)
	return &stored, nil
}

func (m *MemoryStore) List(_ context.Context, limit int) ([]events.Event, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	m.mu.Lock()
	out := append([]events.Event{}, m.Events...)
	m.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TS != out[j].TS {
			return out[i].TS > out[j].TS
		}
		return out[i].ID > out[j].ID
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryStore) Close() error { return nil }
