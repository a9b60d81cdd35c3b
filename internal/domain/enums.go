package domain

import (
	"fmt"
	"strings"
)

type DurationSize string

const (
	DurationSmall  DurationSize = "S"
	DurationMedium DurationSize = "M"
	DurationLarge  DurationSize = "L"
)

// ValidDurationSizes is the canonical set of accepted duration size strings.
var ValidDurationSizes = map[string]bool{
	"S": true, "M": true, "L": true,
}

// ParseDurationSize converts a raw string into a DurationSize. Unknown
// variants are rejected here, at the deserialization boundary; code past
// this point may assume the enum is closed.
func ParseDurationSize(s string) (DurationSize, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	if !ValidDurationSizes[v] {
		return "", fmt.Errorf("invalid duration size %q (expected S, M or L)", s)
	}
	return DurationSize(v), nil
}

type WipStatus string

const (
	WipUnder    WipStatus = "under"
	WipReached  WipStatus = "reached"
	WipExceeded WipStatus = "exceeded"
)

type DayStatus string

const (
	DayPast   DayStatus = "past"
	DayToday  DayStatus = "today"
	DayFuture DayStatus = "future"
)

type NavDirection string

const (
	NavPrev NavDirection = "prev"
	NavNext NavDirection = "next"
)
