package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationSize(t *testing.T) {
	for raw, want := range map[string]DurationSize{
		"S": DurationSmall, "m": DurationMedium, " L ": DurationLarge,
	} {
		got, err := ParseDurationSize(raw)
		require.NoError(t, err, "raw %q", raw)
		assert.Equal(t, want, got)
	}

	for _, raw := range []string{"", "XL", "small", "1"} {
		_, err := ParseDurationSize(raw)
		assert.Error(t, err, "raw %q", raw)
	}
}

func TestActivity_IsScheduled(t *testing.T) {
	a := &Activity{DueDate: SentinelDueDate, StartTime: SentinelStartTime}
	assert.False(t, a.IsScheduled())

	// A real due date with the sentinel time is still scheduled.
	a.DueDate = time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	assert.True(t, a.IsScheduled())

	// The sentinel date with a real start time is scheduled too; only the
	// exact pair reads as unscheduled.
	a.DueDate = SentinelDueDate
	a.StartTime = "08:00"
	assert.True(t, a.IsScheduled())
}

func TestActivity_SetCompletion(t *testing.T) {
	now := time.Date(2025, time.March, 12, 15, 30, 0, 0, time.UTC)
	a := &Activity{}

	a.SetCompletion(true, now)
	assert.True(t, a.IsCompleted)
	require.NotNil(t, a.CompletedAt)
	assert.Equal(t, now, *a.CompletedAt)

	a.SetCompletion(false, now)
	assert.False(t, a.IsCompleted)
	assert.Nil(t, a.CompletedAt)
}

func TestActivity_ScheduleEndOfWeek(t *testing.T) {
	a := &Activity{}

	// Wednesday 2025-03-12: this week ends Sunday 2025-03-16.
	wednesday := time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)
	a.ScheduleEndOfWeek(wednesday, 0)
	assert.Equal(t, time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC), a.DueDate)

	a.ScheduleEndOfWeek(wednesday, 1)
	assert.Equal(t, time.Date(2025, time.March, 23, 0, 0, 0, 0, time.UTC), a.DueDate)

	// On a Sunday the current week ends today.
	sunday := time.Date(2025, time.March, 16, 10, 0, 0, 0, time.UTC)
	a.ScheduleEndOfWeek(sunday, 0)
	assert.Equal(t, time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC), a.DueDate)
}

func TestActivity_CloneForDuplicate(t *testing.T) {
	sub := "sub-1"
	completed := time.Now().UTC()
	src := &Activity{
		ID:          "orig",
		Title:       "Write report",
		ListID:      "list-1",
		SublistID:   &sub,
		Duration:    DurationLarge,
		DueDate:     time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		IsPriority:  true,
		Position:    3,
		IsCompleted: true,
		CompletedAt: &completed,
	}

	clone := src.CloneForDuplicate()

	// Identity, container, size and priority carry over.
	assert.Empty(t, clone.ID)
	assert.Equal(t, "Write report", clone.Title)
	assert.Equal(t, "list-1", clone.ListID)
	assert.Equal(t, &sub, clone.SublistID)
	assert.Equal(t, DurationLarge, clone.Duration)
	assert.True(t, clone.IsPriority)

	// Scheduling, completion and position reset.
	assert.False(t, clone.IsScheduled())
	assert.False(t, clone.IsCompleted)
	assert.Nil(t, clone.CompletedAt)
	assert.Equal(t, 0, clone.Position)
	assert.True(t, clone.IsActive)
}

func TestWeeklyGoal_WeekEnd(t *testing.T) {
	g := &WeeklyGoal{WeekStart: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC), g.WeekEnd())
}
