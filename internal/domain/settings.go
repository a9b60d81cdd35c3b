package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Default configuration values, seeded on first run.
const (
	DefaultUnitMinutes = 30
	DefaultDayStart    = "09:00"
	DefaultUnitsPerDay = 20
	DefaultWipLimit    = 100
)

// Settings holds the four global configuration scalars. Exactly one logical
// instance exists; a persisted Settings value always satisfies Validate.
type Settings struct {
	UnitMinutes int
	DayStart    string
	UnitsPerDay int
	WipLimit    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DefaultSettings returns the out-of-the-box configuration.
func DefaultSettings() *Settings {
	return &Settings{
		UnitMinutes: DefaultUnitMinutes,
		DayStart:    DefaultDayStart,
		UnitsPerDay: DefaultUnitsPerDay,
		WipLimit:    DefaultWipLimit,
	}
}

// MaxWeeklyUnits returns the theoretical weekly capacity, the ceiling the
// WIP limit is validated against.
func (s *Settings) MaxWeeklyUnits() int {
	return s.UnitsPerDay * 7
}

// SuggestedUnitsPerDay proposes a units-per-day value for a given unit
// length, based on a ten hour working day.
func SuggestedUnitsPerDay(unitMinutes int) int {
	if unitMinutes <= 0 {
		return 0
	}
	return int(float64(600)/float64(unitMinutes) + 0.5)
}

// ValidationErrors maps a settings field name to a human-readable message.
// An empty map means the candidate passed every rule.
type ValidationErrors map[string]string

// Fields returns the violated field names in stable order.
func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func (v ValidationErrors) String() string {
	var b strings.Builder
	for i, f := range v.Fields() {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", f, v[f])
	}
	return b.String()
}

// SettingsInput is a raw, untrusted settings candidate as it arrives from
// a form or CLI flags. Numeric fields are strings so that parse failures
// surface as field errors rather than upstream conversion failures.
type SettingsInput struct {
	UnitMinutes string
	DayStart    string
	UnitsPerDay string
	WipLimit    string
}

// InputFromSettings renders an existing Settings value back into input
// form, used to pre-fill edit forms.
func InputFromSettings(s *Settings) SettingsInput {
	return SettingsInput{
		UnitMinutes: strconv.Itoa(s.UnitMinutes),
		DayStart:    s.DayStart,
		UnitsPerDay: strconv.Itoa(s.UnitsPerDay),
		WipLimit:    strconv.Itoa(s.WipLimit),
	}
}

// Validate checks every rule independently and returns the normalized
// Settings value together with the full error map. It never stops at the
// first failure: callers render the combined list in one pass. The
// returned Settings is meaningful only when the error map is empty.
//
// Rules:
//  1. unit minutes: integer in [5,60], multiple of 5
//  2. day start: HH:MM with minutes in steps of 5
//  3. units per day: positive integer
//  4. WIP limit: positive integer, at most units-per-day × 7
//
// Rule 4 depends on rule 3's value. When units per day is present but
// invalid the ceiling check still runs against the best-available value so
// the message names the derived maximum the caller will see.
func (in SettingsInput) Validate() (*Settings, ValidationErrors) {
	errs := ValidationErrors{}
	out := &Settings{DayStart: strings.TrimSpace(in.DayStart)}

	unit, err := strconv.Atoi(strings.TrimSpace(in.UnitMinutes))
	switch {
	case err != nil:
		errs["unit_minutes"] = "time unit must be an integer"
	case unit < 5 || unit > 60:
		errs["unit_minutes"] = "time unit must be between 5 and 60 minutes"
	case unit%5 != 0:
		errs["unit_minutes"] = "time unit must be a multiple of 5"
	default:
		out.UnitMinutes = unit
	}

	if msg := validateClock(out.DayStart); msg != "" {
		errs["day_start"] = msg
	}

	unitsPerDay, updErr := strconv.Atoi(strings.TrimSpace(in.UnitsPerDay))
	switch {
	case updErr != nil:
		errs["units_per_day"] = "units per day must be an integer"
	case unitsPerDay <= 0:
		errs["units_per_day"] = "units per day must be greater than 0"
	default:
		out.UnitsPerDay = unitsPerDay
	}

	wip, wipErr := strconv.Atoi(strings.TrimSpace(in.WipLimit))
	maxWip := unitsPerDay * 7 // best-available, even if units_per_day failed its own rule
	switch {
	case wipErr != nil:
		errs["wip_limit"] = "WIP limit must be an integer"
	case wip <= 0:
		errs["wip_limit"] = "WIP limit must be greater than 0"
	case wip > maxWip:
		errs["wip_limit"] = fmt.Sprintf("WIP limit cannot exceed %d (units per day × 7)", maxWip)
	default:
		out.WipLimit = wip
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, errs
}

func validateClock(s string) string {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return "day start must be in HH:MM format"
	}
	if t.Minute()%5 != 0 {
		return "day start minutes must be in steps of 5"
	}
	return ""
}
