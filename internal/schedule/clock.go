// Package schedule holds the pure computation behind the weekly planner:
// calendar week bounds, the daily time grid, duration-to-unit conversion
// and WIP capacity evaluation. Every function here is a pure function over
// caller-supplied inputs; there is no I/O and no shared state, so the
// package is safe to call from any number of concurrent request contexts.
package schedule

import (
	"fmt"
	"time"
)

// MinuteOfDay is a clock position expressed as raw minutes from midnight.
// The value is deliberately not normalized modulo 24h: a grid configured
// past midnight keeps counting (see Slots), and String renders the raw
// hour so the overflow stays visible ("25:30") instead of silently
// aliasing onto the next day.
type MinuteOfDay int

func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// Add returns the clock position n minutes later, in raw arithmetic.
func (m MinuteOfDay) Add(n int) MinuteOfDay {
	return m + MinuteOfDay(n)
}

// ParseClock parses an "HH:MM" string with hours 0-23.
func ParseClock(s string) (MinuteOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parsing clock value %q: %w", s, err)
	}
	return MinuteOfDay(t.Hour()*60 + t.Minute()), nil
}
