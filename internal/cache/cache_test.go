package cache_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DnvLikhitha/FitFlex/internal/cache"
	"github.com/DnvLikhitha/FitFlex/internal/db"
	"github.com/DnvLikhitha/FitFlex/internal/model"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fitflex.db")
	sqldb, err := db.Open(path)
	require.NoError(t, err)
	require.NoError(t, db.ApplyMigrations(sqldb))
	t.Cleanup(func() { _ = sqldb.Close() })
	return sqldb
}

func TestUpsertActivityInsertsAndUpdates(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	a := model.Activity{ID: "1", UserID: "7", Type: "Walking", Date: "2026-08-24", Duration: 30, Calories: 120, Intensity: "medium"}
	require.NoError(t, cache.UpsertActivity(sqldb, a))

	a.Duration = 45
	a.Calories = 180
	require.NoError(t, cache.UpsertActivity(sqldb, a))

	acts, err := cache.ListActivities(sqldb, "7", "2026-08-24")
	require.NoError(t, err)
	require.Len(t, acts, 1)
	assert.Equal(t, 45, acts[0].Duration)
	assert.Equal(t, 180, acts[0].Calories)
}

func TestUpsertActivityRequiresID(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	err := cache.UpsertActivity(sqldb, model.Activity{UserID: "7", Type: "Walking", Date: "2026-08-24", Duration: 30})
	assert.Error(t, err)
}

func TestDeleteActivityIdempotent(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	assert.NoError(t, cache.DeleteActivity(sqldb, "nope"))
}

func TestMirrorActivitiesReplacesUserRows(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	require.NoError(t, cache.UpsertActivity(sqldb, model.Activity{ID: "stale", UserID: "7", Type: "Dance", Date: "2026-08-01", Duration: 10, Intensity: "low"}))
	require.NoError(t, cache.UpsertActivity(sqldb, model.Activity{ID: "other", UserID: "8", Type: "Yoga", Date: "2026-08-01", Duration: 20, Intensity: "low"}))

	fresh := []model.Activity{
		{ID: "1", UserID: "7", Type: "Running", Date: "2026-08-24", Duration: 30, Calories: 300, Intensity: "high"},
	}
	require.NoError(t, cache.MirrorActivities(sqldb, "7", fresh))

	acts, err := cache.ListActivities(sqldb, "7", "")
	require.NoError(t, err)
	require.Len(t, acts, 1)
	assert.Equal(t, "Running", acts[0].Type)

	// Other users' rows are untouched.
	acts, err = cache.ListActivities(sqldb, "8", "")
	require.NoError(t, err)
	assert.Len(t, acts, 1)
}

func TestGoalRoundTrip(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	g := model.Goal{ID: "g1", UserID: "7", Title: "Run 100 km", Type: "distance", Target: 100, Current: 40, Unit: "km"}
	require.NoError(t, cache.UpsertGoal(sqldb, g))

	got, err := cache.GetGoal(sqldb, "g1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 40.0, got.Current)

	missing, err := cache.GetGoal(sqldb, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, cache.DeleteGoal(sqldb, "g1"))
	goals, err := cache.ListGoals(sqldb, "7")
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestIntakeDayUpsertsByUserAndDate(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	d := model.IntakeDay{ID: "n1", UserID: "7", Date: "2026-08-24", Calories: 200, Protein: 12}
	require.NoError(t, cache.UpsertIntakeDay(sqldb, d))

	// Same (user, date) with a different id still lands on the same row.
	d2 := model.IntakeDay{ID: "n2", UserID: "7", Date: "2026-08-24", Calories: 500, Protein: 30}
	require.NoError(t, cache.UpsertIntakeDay(sqldb, d2))

	got, err := cache.GetIntakeDay(sqldb, "7", "2026-08-24")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 500.0, got.Calories)

	absent, err := cache.GetIntakeDay(sqldb, "7", "2026-08-25")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestNewLocalIDIsUnique(t *testing.T) {
	t.Parallel()

	a, b := cache.NewLocalID(), cache.NewLocalID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}
