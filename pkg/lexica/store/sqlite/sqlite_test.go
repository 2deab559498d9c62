package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/lexica/pkg/lexica/store"
	"github.com/cognicore/lexica/pkg/lexica/store/storetest"
)

func openTemp(t *testing.T) store.Store {
	t.Helper()
	st, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSQLiteStore(t *testing.T) {
	storetest.Run(t, openTemp)
}

func TestSQLiteReopenPersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "runs.db")

	st, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	snap := storetest.Snapshot(time.Date(2024, 5, 1, 10, 0, 0, 123456789, time.UTC))
	require.NoError(t, st.SaveRun(ctx, snap))
	require.NoError(t, st.Close())

	st, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer st.Close()

	got, err := st.GetRun(ctx, snap.Run.ID)
	require.NoError(t, err)
	assert.True(t, snap.Run.CreatedAt.Equal(got.CreatedAt))

	ns, err := st.Neighbors(ctx, snap.Run.ID, "river", 0)
	require.NoError(t, err)
	assert.Len(t, ns, 2)
}

func TestSQLiteEmptySuppressed(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)
	snap := storetest.Snapshot(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	snap.Run.Suppressed = nil
	snap.Collocations = nil
	require.NoError(t, st.SaveRun(ctx, snap))

	got, err := st.GetRun(ctx, snap.Run.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Suppressed)
}
