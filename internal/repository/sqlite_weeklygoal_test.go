package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/semainier/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyGoalRepo_UpsertAndGetByWeek(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWeeklyGoalRepo(db)
	ctx := context.Background()

	monday := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	goal := testutil.NewTestWeeklyGoal(monday, "Ship the report")
	require.NoError(t, repo.Upsert(ctx, goal))

	fetched, err := repo.GetByWeek(ctx, monday)
	require.NoError(t, err)
	assert.Equal(t, "Ship the report", fetched.Content)
	assert.Equal(t, monday, fetched.WeekStart)
	assert.Equal(t, monday.AddDate(0, 0, 6), fetched.WeekEnd())
}

func TestWeeklyGoalRepo_UpsertReplacesSameWeek(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWeeklyGoalRepo(db)
	ctx := context.Background()

	monday := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestWeeklyGoal(monday, "First draft")))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestWeeklyGoal(monday, "Second draft")))

	fetched, err := repo.GetByWeek(ctx, monday)
	require.NoError(t, err)
	assert.Equal(t, "Second draft", fetched.Content)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM weekly_goals`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestWeeklyGoalRepo_GetByWeek_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWeeklyGoalRepo(db)

	monday := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	_, err := repo.GetByWeek(context.Background(), monday)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWeeklyGoalRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWeeklyGoalRepo(db)
	ctx := context.Background()

	monday := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestWeeklyGoal(monday, "Goals")))
	require.NoError(t, repo.Delete(ctx, monday))

	_, err := repo.GetByWeek(ctx, monday)
	assert.ErrorIs(t, err, ErrNotFound)
}
