package cache

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dkrasnenko/sharedtab/internal/client/client"
	"github.com/dkrasnenko/sharedtab/internal/client/models"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, client.RunMigrations(context.Background(), db))

	return NewSQLiteRepository(db)
}

func TestPointer_AbsentMeansNil(t *testing.T) {
	repo := newTestRepo(t)

	pointer, err := repo.GetPointer(context.Background())
	require.NoError(t, err)
	require.Nil(t, pointer)
}

func TestPointer_SaveGetClear(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	want := &models.CachedSessionPointer{SessionID: "s1", ParticipantID: "p1", Role: models.RoleGuest}
	require.NoError(t, repo.SavePointer(ctx, want))

	got, err := repo.GetPointer(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	require.NoError(t, repo.ClearPointer(ctx))

	got, err = repo.GetPointer(ctx)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPointer_SaveReplacesWholesale(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SavePointer(ctx, &models.CachedSessionPointer{SessionID: "s1", ParticipantID: "p1", Role: models.RoleGuest}))
	require.NoError(t, repo.SavePointer(ctx, &models.CachedSessionPointer{SessionID: "s2", ParticipantID: "p2", Role: models.RoleHost}))

	got, err := repo.GetPointer(ctx)
	require.NoError(t, err)
	require.Equal(t, "s2", got.SessionID)
	require.Equal(t, "p2", got.ParticipantID)
	require.Equal(t, models.RoleHost, got.Role)
}

func TestPointer_ClearIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.ClearPointer(ctx))
	require.NoError(t, repo.ClearPointer(ctx))
}

func TestIdentity_SaveGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	got, err := repo.GetIdentity(ctx)
	require.NoError(t, err)
	require.Nil(t, got)

	want := &models.DeviceIdentity{UserID: "u1", DisplayName: "Alice", AccessToken: "tok"}
	require.NoError(t, repo.SaveIdentity(ctx, want))

	got, err = repo.GetIdentity(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// re-registration replaces the identity
	want2 := &models.DeviceIdentity{UserID: "u2", DisplayName: "Alice", AccessToken: "tok2"}
	require.NoError(t, repo.SaveIdentity(ctx, want2))

	got, err = repo.GetIdentity(ctx)
	require.NoError(t, err)
	require.Equal(t, want2, got)
}
