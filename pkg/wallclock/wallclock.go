// Package wallclock owns the representation of auction deadlines.
//
// Every reader and writer of ends_at goes through a Policy so the stored value
// and "now" are always produced by the same transform. In the default mode a
// deadline is a real instant kept in UTC. In zone-stripped mode the wall-clock
// digits of the configured zone are stored as if they were UTC, which is how
// older deployments persisted deadlines.
package wallclock

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// LocalLayout is the accepted wall-clock input format, interpreted in the policy zone.
const LocalLayout = "2006-01-02T15:04:05"

// DisplayLayout is used for the *Local fields of API responses.
const DisplayLayout = "2006-01-02 15:04:05"

var ErrInvalidTime = errors.New("invalid time")

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualClock(now time.Time) *ManualClock {
	return &ManualClock{now: now}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) Set(now time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type Policy struct {
	loc      *time.Location
	stripped bool
	clock    Clock
}

func New(zone string, stripped bool, clock Clock) (*Policy, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load zone %q: %w", zone, err)
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Policy{loc: loc, stripped: stripped, clock: clock}, nil
}

func (p *Policy) Location() *time.Location { return p.loc }

// Instant is the real current time. Job run_at values are always real instants.
func (p *Policy) Instant() time.Time {
	return p.clock.Now().UTC()
}

// Now is the current time in storage representation.
func (p *Policy) Now() time.Time {
	return p.Store(p.clock.Now())
}

// Store converts a real instant into storage representation.
func (p *Policy) Store(t time.Time) time.Time {
	if !p.stripped {
		return t.UTC()
	}
	l := t.In(p.loc)
	return time.Date(l.Year(), l.Month(), l.Day(), l.Hour(), l.Minute(), l.Second(), l.Nanosecond(), time.UTC)
}

// InstantOf converts a stored deadline back into a real instant.
func (p *Policy) InstantOf(stored time.Time) time.Time {
	if !p.stripped {
		return stored.UTC()
	}
	s := stored.UTC()
	return time.Date(s.Year(), s.Month(), s.Day(), s.Hour(), s.Minute(), s.Second(), s.Nanosecond(), p.loc).UTC()
}

// Until reports how long remains before a stored deadline.
func (p *Policy) Until(stored time.Time) time.Duration {
	return stored.Sub(p.Now())
}

// Passed reports whether a stored deadline is at or before now.
func (p *Policy) Passed(stored time.Time) bool {
	return !p.Now().Before(stored)
}

// ParseLocal parses a deadline given either as local wall-clock digits in the
// policy zone or as RFC3339 with an explicit offset. The result is a real instant.
func (p *Policy) ParseLocal(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(LocalLayout, s, p.loc); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q, expected %s or RFC3339", ErrInvalidTime, s, LocalLayout)
}

// Display formats a stored deadline as wall-clock digits in the policy zone.
func (p *Policy) Display(stored time.Time) string {
	return p.InstantOf(stored).In(p.loc).Format(DisplayLayout)
}

// DisplayInstant formats a real instant (created_at and friends) in the policy zone.
func (p *Policy) DisplayInstant(t time.Time) string {
	return t.In(p.loc).Format(DisplayLayout)
}
