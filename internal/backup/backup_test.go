package backup

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/faktura/internal/store"
)

func createTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, st.Migrate(context.Background()))
	t.Cleanup(func() { _ = st.Close() })

	return st
}

func TestExportRestore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	src := createTestStore(t)

	require.NoError(t, src.Set(ctx, store.KeyUserPreferences, `{"currency":"USD"}`))
	require.NoError(t, src.Set(ctx, store.KeyInvoices, `[{"id":"1"}]`))
	require.NoError(t, src.Set(ctx, store.KeyLastViewedInvoice, "1"))

	var buf bytes.Buffer
	var swept []string
	err := NewService(src).Export(ctx, &buf, func(key string) { swept = append(swept, key) })
	require.NoError(t, err)

	// Every well-known key was swept, present or not.
	assert.Len(t, swept, len(store.Keys()))
	// Absent keys are omitted from the snapshot.
	assert.NotContains(t, buf.String(), store.KeyAuthToken)

	dst := createTestStore(t)
	require.NoError(t, NewService(dst).Restore(ctx, &buf, nil))

	value, ok, err := dst.Get(ctx, store.KeyUserPreferences)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"currency":"USD"}`, value)

	value, ok, err = dst.Get(ctx, store.KeyLastViewedInvoice)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", value)

	_, ok, err = dst.Get(ctx, store.KeyAuthToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRestore_RejectsGarbage(t *testing.T) {
	ctx := context.Background()
	dst := createTestStore(t)

	err := NewService(dst).Restore(ctx, strings.NewReader("not json"), nil)
	assert.Error(t, err)
}
