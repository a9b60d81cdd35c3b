package schedule

import (
	"math"

	"github.com/alexanderramin/semainier/internal/domain"
)

// WipReport classifies a week's committed work against the WIP limit.
// The three-way status survives to the display layer: "at limit" and
// "over limit" get different visual treatment, so no boolean collapse.
type WipReport struct {
	TotalUnits int
	Status     domain.WipStatus
	Percentage float64
}

// ActivityStats summarizes an activity snapshot for the dashboard.
type ActivityStats struct {
	Count          int
	ByDuration     map[domain.DurationSize]int
	CompletedCount int
	CompletionRate float64
}

// TotalUnits sums the unit cost of every activity in the snapshot.
func TotalUnits(activities []*domain.Activity) int {
	total := 0
	for _, a := range activities {
		total += Units(a.Duration)
	}
	return total
}

// EvaluateWip classifies totalUnits against wipLimit. The validator keeps
// a zero limit from ever being persisted, but a zero reaching this point
// still yields percentage 0 rather than a division failure.
func EvaluateWip(totalUnits, wipLimit int) WipReport {
	status := domain.WipUnder
	switch {
	case totalUnits > wipLimit:
		status = domain.WipExceeded
	case totalUnits == wipLimit:
		status = domain.WipReached
	}

	percentage := 0.0
	if wipLimit > 0 {
		percentage = roundTenth(float64(totalUnits) / float64(wipLimit) * 100)
	}

	return WipReport{TotalUnits: totalUnits, Status: status, Percentage: percentage}
}

// EvaluateActivities is the common read path: sum the snapshot, then
// classify. Read-only over caller-supplied data, safe to call on every
// dashboard refresh.
func EvaluateActivities(activities []*domain.Activity, wipLimit int) WipReport {
	return EvaluateWip(TotalUnits(activities), wipLimit)
}

// Stats aggregates counts, size distribution and completion rate over a
// snapshot.
func Stats(activities []*domain.Activity) ActivityStats {
	st := ActivityStats{
		ByDuration: map[domain.DurationSize]int{
			domain.DurationSmall:  0,
			domain.DurationMedium: 0,
			domain.DurationLarge:  0,
		},
	}
	for _, a := range activities {
		st.Count++
		if _, ok := st.ByDuration[a.Duration]; ok {
			st.ByDuration[a.Duration]++
		}
		if a.IsCompleted {
			st.CompletedCount++
		}
	}
	if st.Count > 0 {
		st.CompletionRate = roundTenth(float64(st.CompletedCount) / float64(st.Count) * 100)
	}
	return st
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
