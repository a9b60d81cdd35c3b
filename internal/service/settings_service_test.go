package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/repository"
	"github.com/alexanderramin/semainier/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsFixture(t *testing.T) SettingsService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewSettingsService(repository.NewSQLiteSettingsRepo(database))
}

func TestSettingsGet_ReturnsSeededDefaults(t *testing.T) {
	svc := newSettingsFixture(t)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultUnitMinutes, got.UnitMinutes)
	assert.Equal(t, domain.DefaultDayStart, got.DayStart)
	assert.Equal(t, domain.DefaultUnitsPerDay, got.UnitsPerDay)
	assert.Equal(t, domain.DefaultWipLimit, got.WipLimit)
}

func TestSettingsUpdate_PersistsValidCandidate(t *testing.T) {
	svc := newSettingsFixture(t)
	ctx := context.Background()

	updated, verrs, err := svc.Update(ctx, domain.SettingsInput{
		UnitMinutes: "45",
		DayStart:    "08:30",
		UnitsPerDay: "12",
		WipLimit:    "60",
	})
	require.NoError(t, err)
	require.Empty(t, verrs)
	assert.Equal(t, 45, updated.UnitMinutes)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 45, got.UnitMinutes)
	assert.Equal(t, "08:30", got.DayStart)
	assert.Equal(t, 12, got.UnitsPerDay)
	assert.Equal(t, 60, got.WipLimit)
}

func TestSettingsUpdate_InvalidCandidateWritesNothing(t *testing.T) {
	svc := newSettingsFixture(t)
	ctx := context.Background()

	// Two violations at once: bad clock and an out-of-range unit length.
	updated, verrs, err := svc.Update(ctx, domain.SettingsInput{
		UnitMinutes: "7",
		DayStart:    "9h00",
		UnitsPerDay: "12",
		WipLimit:    "60",
	})
	require.NoError(t, err)
	assert.Nil(t, updated)
	assert.Equal(t, []string{"day_start", "unit_minutes"}, verrs.Fields())

	// Every field keeps its previous value, including the valid ones.
	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultUnitMinutes, got.UnitMinutes)
	assert.Equal(t, domain.DefaultDayStart, got.DayStart)
	assert.Equal(t, domain.DefaultUnitsPerDay, got.UnitsPerDay)
	assert.Equal(t, domain.DefaultWipLimit, got.WipLimit)
}

func TestSettingsUpdate_WipCeilingTracksUnitsPerDay(t *testing.T) {
	svc := newSettingsFixture(t)

	_, verrs, err := svc.Update(context.Background(), domain.SettingsInput{
		UnitMinutes: "30",
		DayStart:    "09:00",
		UnitsPerDay: "10",
		WipLimit:    "71",
	})
	require.NoError(t, err)
	require.Contains(t, verrs, "wip_limit")
	assert.Contains(t, verrs["wip_limit"], "70")
}
