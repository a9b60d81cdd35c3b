package schedule

import (
	"time"

	"github.com/alexanderramin/semainier/internal/domain"
)

// WeekBounds returns the Monday and Sunday bracketing the reference date.
// Total and idempotent: the bounds of a Monday's week start at that Monday.
func WeekBounds(ref time.Time) (monday, sunday time.Time) {
	day := truncateToDate(ref)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0 ... Sunday = 6
	monday = day.AddDate(0, 0, -offset)
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// NextWeekStart returns the Monday of the week after the reference date.
func NextWeekStart(ref time.Time) time.Time {
	monday, _ := WeekBounds(ref)
	return monday.AddDate(0, 0, 7)
}

// PreviousWeekStart returns the Monday of the week before the reference date.
func PreviousWeekStart(ref time.Time) time.Time {
	monday, _ := WeekBounds(ref)
	return monday.AddDate(0, 0, -7)
}

// IsInWeek reports whether d falls inside the calendar week containing ref.
func IsInWeek(d, ref time.Time) bool {
	monday, sunday := WeekBounds(ref)
	day := truncateToDate(d)
	return !day.Before(monday) && !day.After(sunday)
}

// ClampToWeek pins target into the calendar week containing ref.
func ClampToWeek(target, ref time.Time) time.Time {
	monday, sunday := WeekBounds(ref)
	day := truncateToDate(target)
	if day.Before(monday) {
		return monday
	}
	if day.After(sunday) {
		return sunday
	}
	return day
}

// Navigate steps one day from current in the given direction, clamped to
// the week containing current. Timetable navigation never leaves the
// current calendar week.
func Navigate(current time.Time, dir domain.NavDirection) time.Time {
	target := truncateToDate(current)
	switch dir {
	case domain.NavPrev:
		target = target.AddDate(0, 0, -1)
	case domain.NavNext:
		target = target.AddDate(0, 0, 1)
	}
	return ClampToWeek(target, current)
}

// StatusOf classifies a date relative to today.
func StatusOf(d, today time.Time) domain.DayStatus {
	day := truncateToDate(d)
	ref := truncateToDate(today)
	switch {
	case day.Before(ref):
		return domain.DayPast
	case day.After(ref):
		return domain.DayFuture
	default:
		return domain.DayToday
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
