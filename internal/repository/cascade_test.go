package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/semainier/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCascade_DeleteListRemovesSublistsAndActivities(t *testing.T) {
	db := testutil.NewTestDB(t)
	lists := NewSQLiteListRepo(db)
	sublists := NewSQLiteSublistRepo(db)
	activities := NewSQLiteActivityRepo(db)
	ctx := context.Background()

	list := testutil.NewTestList("Work")
	require.NoError(t, lists.Create(ctx, list))
	sub := testutil.NewTestSublist(list.ID, "Admin")
	require.NoError(t, sublists.Create(ctx, sub))
	act := testutil.NewTestActivity(list.ID, "item", testutil.WithSublistID(sub.ID))
	require.NoError(t, activities.Create(ctx, act))

	require.NoError(t, lists.Delete(ctx, list.ID))

	_, err := sublists.GetByID(ctx, sub.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = activities.GetByID(ctx, act.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCascade_DeleteSublistDetachesActivities(t *testing.T) {
	db := testutil.NewTestDB(t)
	lists := NewSQLiteListRepo(db)
	sublists := NewSQLiteSublistRepo(db)
	activities := NewSQLiteActivityRepo(db)
	ctx := context.Background()

	list := testutil.NewTestList("Work")
	require.NoError(t, lists.Create(ctx, list))
	sub := testutil.NewTestSublist(list.ID, "Admin")
	require.NoError(t, sublists.Create(ctx, sub))
	act := testutil.NewTestActivity(list.ID, "item", testutil.WithSublistID(sub.ID))
	require.NoError(t, activities.Create(ctx, act))

	// ON DELETE SET NULL: the activity survives, re-homed to the root
	// container of its list.
	require.NoError(t, sublists.Delete(ctx, sub.ID))

	fetched, err := activities.GetByID(ctx, act.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.SublistID)
}
