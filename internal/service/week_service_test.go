package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/repository"
	"github.com/alexanderramin/semainier/internal/schedule"
	"github.com/alexanderramin/semainier/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type weekFixture struct {
	svc   WeekService
	acts  repository.ActivityRepo
	list  *domain.List
	today time.Time
}

func newWeekFixture(t *testing.T) *weekFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	listRepo := repository.NewSQLiteListRepo(database)
	actRepo := repository.NewSQLiteActivityRepo(database)
	svc := NewWeekService(actRepo,
		repository.NewSQLiteWeeklyGoalRepo(database),
		repository.NewSQLiteSettingsRepo(database))

	list := testutil.NewTestList("Work")
	require.NoError(t, listRepo.Create(context.Background(), list))

	return &weekFixture{
		svc:   svc,
		acts:  actRepo,
		list:  list,
		today: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), // Wednesday
	}
}

func TestWeekSummary_CountsOnlyActivitiesDueThisWeek(t *testing.T) {
	f := newWeekFixture(t)
	ctx := context.Background()
	monday, sunday := schedule.WeekBounds(f.today)

	inWeek := []*domain.Activity{
		testutil.NewTestActivity(f.list.ID, "small", testutil.WithDueDate(monday), testutil.WithDuration(domain.DurationSmall)),
		testutil.NewTestActivity(f.list.ID, "medium", testutil.WithDueDate(f.today), testutil.WithDuration(domain.DurationMedium)),
		testutil.NewTestActivity(f.list.ID, "large", testutil.WithDueDate(sunday), testutil.WithDuration(domain.DurationLarge)),
	}
	outOfWeek := []*domain.Activity{
		testutil.NewTestActivity(f.list.ID, "last week", testutil.WithDueDate(monday.AddDate(0, 0, -1))),
		testutil.NewTestActivity(f.list.ID, "next week", testutil.WithDueDate(sunday.AddDate(0, 0, 1))),
		testutil.NewTestActivity(f.list.ID, "unscheduled"), // sentinel due date
	}
	for _, a := range append(inWeek, outOfWeek...) {
		require.NoError(t, f.acts.Create(ctx, a))
	}

	sum, err := f.svc.Summary(ctx, f.today)
	require.NoError(t, err)

	assert.Equal(t, monday, sum.WeekStart)
	assert.Equal(t, sunday, sum.WeekEnd)
	assert.Equal(t, domain.DefaultWipLimit, sum.WipLimit)
	assert.Equal(t, 10, sum.Report.TotalUnits, "1 + 3 + 6 units due in the week")
	assert.Equal(t, domain.WipUnder, sum.Report.Status)
	assert.Equal(t, 10.0, sum.Report.Percentage)
	assert.Equal(t, 3, sum.Stats.Count)
	assert.Nil(t, sum.Goal, "no goal set for the week")
}

func TestWeekSummary_StatsAndCompletionRate(t *testing.T) {
	f := newWeekFixture(t)
	ctx := context.Background()

	done := testutil.NewTestActivity(f.list.ID, "done",
		testutil.WithDueDate(f.today), testutil.WithCompleted(f.today))
	open := testutil.NewTestActivity(f.list.ID, "open", testutil.WithDueDate(f.today))
	require.NoError(t, f.acts.Create(ctx, done))
	require.NoError(t, f.acts.Create(ctx, open))

	sum, err := f.svc.Summary(ctx, f.today)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Stats.Count)
	assert.Equal(t, 1, sum.Stats.CompletedCount)
	assert.Equal(t, 50.0, sum.Stats.CompletionRate)
	assert.Equal(t, 2, sum.Stats.ByDuration[domain.DurationSmall])
}

func TestWeekGoal_SetReplacesWithinSameWeek(t *testing.T) {
	f := newWeekFixture(t)
	ctx := context.Background()
	monday, _ := schedule.WeekBounds(f.today)

	first, err := f.svc.SetGoal(ctx, f.today, "ship the report")
	require.NoError(t, err)
	assert.Equal(t, monday, first.WeekStart)
	assert.Equal(t, "ship the report", first.Content)

	// Setting again from any day of the same week replaces the entry.
	second, err := f.svc.SetGoal(ctx, monday.AddDate(0, 0, 6), "rest instead")
	require.NoError(t, err)
	assert.Equal(t, monday, second.WeekStart)
	assert.Equal(t, "rest instead", second.Content)

	got, err := f.svc.GetGoal(ctx, f.today)
	require.NoError(t, err)
	assert.Equal(t, "rest instead", got.Content)
}

func TestWeekGoal_SeparateWeeksKeepSeparateEntries(t *testing.T) {
	f := newWeekFixture(t)
	ctx := context.Background()

	_, err := f.svc.SetGoal(ctx, f.today, "this week")
	require.NoError(t, err)
	_, err = f.svc.SetGoal(ctx, f.today.AddDate(0, 0, 7), "next week")
	require.NoError(t, err)

	thisWeek, err := f.svc.GetGoal(ctx, f.today)
	require.NoError(t, err)
	assert.Equal(t, "this week", thisWeek.Content)

	nextWeek, err := f.svc.GetGoal(ctx, f.today.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Equal(t, "next week", nextWeek.Content)
}

func TestWeekGoal_ValidatesContent(t *testing.T) {
	f := newWeekFixture(t)
	ctx := context.Background()

	_, err := f.svc.SetGoal(ctx, f.today, "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")

	_, err = f.svc.SetGoal(ctx, f.today, strings.Repeat("x", domain.MaxWeeklyGoalLen+1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestWeekGoal_ClearThenGetNotFound(t *testing.T) {
	f := newWeekFixture(t)
	ctx := context.Background()

	_, err := f.svc.SetGoal(ctx, f.today, "temporary")
	require.NoError(t, err)
	require.NoError(t, f.svc.ClearGoal(ctx, f.today))

	_, err = f.svc.GetGoal(ctx, f.today)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	sum, err := f.svc.Summary(ctx, f.today)
	require.NoError(t, err)
	assert.Nil(t, sum.Goal)
}
