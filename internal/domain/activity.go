package domain

import "time"

// Sentinel scheduling anchors. An activity whose due date and start time
// both hold these exact values has no commitment yet; downstream display
// logic treats it as unscheduled, not as a real 2099 deadline. The pair
// must round-trip through the store unchanged.
var (
	SentinelDueDate = time.Date(2099, time.December, 31, 0, 0, 0, 0, time.UTC)
)

const SentinelStartTime = "23:59"

type Activity struct {
	ID        string
	Title     string
	ListID    string
	SublistID *string

	Duration  DurationSize
	DueDate   time.Time
	StartTime string

	IsPriority bool
	Position   int
	IsActive   bool

	IsCompleted bool
	CompletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsScheduled reports whether the activity carries a real due date, i.e.
// its anchors differ from the sentinel pair.
func (a *Activity) IsScheduled() bool {
	return !(sameDate(a.DueDate, SentinelDueDate) && a.StartTime == SentinelStartTime)
}

// SetCompletion sets the completion flag and keeps completed_at consistent
// with it: stamped when completing, cleared when reopening.
func (a *Activity) SetCompletion(done bool, now time.Time) {
	a.IsCompleted = done
	if done {
		t := now.UTC()
		a.CompletedAt = &t
	} else {
		a.CompletedAt = nil
	}
}

// ScheduleEndOfWeek sets the due date to the Sunday of the week containing
// today, plus weeksAhead extra weeks.
func (a *Activity) ScheduleEndOfWeek(today time.Time, weeksAhead int) {
	daysUntilSunday := 6 - mondayIndexedWeekday(today)
	a.DueDate = truncateToDate(today).AddDate(0, 0, daysUntilSunday+7*weeksAhead)
}

// CloneForDuplicate returns a copy of the activity reset for re-entry:
// same title, container, size and priority, but unscheduled, uncompleted,
// and unpositioned, so the next container reindex appends it. The caller
// assigns the new ID and triggers that reindex.
func (a *Activity) CloneForDuplicate() *Activity {
	return &Activity{
		Title:      a.Title,
		ListID:     a.ListID,
		SublistID:  a.SublistID,
		Duration:   a.Duration,
		DueDate:    SentinelDueDate,
		StartTime:  SentinelStartTime,
		IsPriority: a.IsPriority,
		Position:   0,
		IsActive:   true,
	}
}

func mondayIndexedWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
