package state

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"buildcfg/internal/domain"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestLastOnEmptyStore(t *testing.T) {
	store := openStore(t)

	_, found, err := store.Last()
	require.NoError(t, err)
	require.False(t, found)
}

func TestSaveAndLastRoundTrip(t *testing.T) {
	store := openStore(t)

	resolution := domain.Resolution{
		ID:         "res-1",
		ResolvedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Options: domain.Options{
			BuildTest:      true,
			BuildCaffe2Ops: true,
			UseLevelDB:     true,
		},
		Settings: []domain.Setting{
			{Flag: "leveldb", Value: true, Source: domain.SourceEnv, Raw: "YES"},
		},
	}
	require.NoError(t, store.Save(resolution))

	loaded, found, err := store.Last()
	require.NoError(t, err)
	require.True(t, found)
	if diff := cmp.Diff(resolution, loaded); diff != "" {
		t.Fatalf("resolution mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveOverwritesLast(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.Save(domain.Resolution{ID: "res-1"}))
	require.NoError(t, store.Save(domain.Resolution{ID: "res-2"}))

	loaded, found, err := store.Last()
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "res-2", loaded.ID)
}

func TestClosedStoreRejectsOperations(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	require.ErrorIs(t, store.Save(domain.Resolution{}), ErrStoreClosed)
	_, _, err = store.Last()
	require.ErrorIs(t, err, ErrStoreClosed)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	require.Error(t, err)
}
