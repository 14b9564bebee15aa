// Package clock provides the injected time source used for daily and monthly
// rollover watermarks. Handlers and stores never call time.Now directly for
// date math; they go through a Provider bound to the configured reset zone so
// tests can simulate day boundaries deterministically.
package clock

import (
	"sync"
	"time"
)

const (
	DateLayout  = "2006-01-02" // daily watermark ("YYYY-MM-DD")
	MonthLayout = "2006-01"    // monthly key ("YYYY-MM")
)

// Clock yields the current instant. Production uses System; tests use Fixed.
type Clock interface {
	Now() time.Time
}

// System is the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed is a settable clock for tests.
type Fixed struct {
	mu sync.Mutex
	t  time.Time
}

func NewFixed(t time.Time) *Fixed { return &Fixed{t: t} }

func (f *Fixed) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

// Set moves the fixed clock, typically across a simulated midnight.
func (f *Fixed) Set(t time.Time) {
	f.mu.Lock()
	f.t = t
	f.mu.Unlock()
}

// Provider binds a Clock to a fixed IANA time zone and formats the calendar
// keys used as reset watermarks.
type Provider struct {
	clock Clock
	loc   *time.Location
}

// NewProvider resolves tz (e.g. "America/New_York"); an empty tz means UTC.
func NewProvider(c Clock, tz string) (*Provider, error) {
	if tz == "" {
		return &Provider{clock: c, loc: time.UTC}, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}
	return &Provider{clock: c, loc: loc}, nil
}

// Now returns the current instant in the configured zone.
func (p *Provider) Now() time.Time { return p.clock.Now().In(p.loc) }

// Today returns the current calendar date key in the configured zone.
func (p *Provider) Today() string { return p.Now().Format(DateLayout) }

// Month returns the current calendar month key in the configured zone.
func (p *Provider) Month() string { return p.Now().Format(MonthLayout) }
