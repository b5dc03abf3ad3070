package prefs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/faktura/internal/model"
	"github.com/Veraticus/faktura/internal/store"
)

func createTestService(t *testing.T) (*Service, store.Store) {
	t.Helper()

	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, st.Migrate(context.Background()))
	t.Cleanup(func() { _ = st.Close() })

	return NewService(st), st
}

func TestPreferences_DefaultsWhenAbsent(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestService(t)

	prefs := svc.Preferences(ctx)
	assert.Equal(t, model.DefaultPreferences(), prefs)
}

func TestPreferences_DefaultsOnCorruptRecord(t *testing.T) {
	ctx := context.Background()
	svc, st := createTestService(t)

	require.NoError(t, st.Set(ctx, store.KeyUserPreferences, "{not json"))

	prefs := svc.Preferences(ctx)
	assert.Equal(t, model.DefaultPreferences(), prefs)
}

func TestSave_MergesNotReplaces(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestService(t)

	currency := model.CurrencyUSD
	merged, err := svc.Save(ctx, model.PreferencesPatch{Currency: &currency})
	require.NoError(t, err)

	// Only currency changed; everything else kept its default.
	want := model.DefaultPreferences()
	want.Currency = model.CurrencyUSD
	assert.Equal(t, want, merged)

	// A second partial update leaves the first one intact.
	theme := model.ThemeDark
	_, err = svc.Save(ctx, model.PreferencesPatch{Theme: &theme})
	require.NoError(t, err)

	got := svc.Preferences(ctx)
	assert.Equal(t, model.CurrencyUSD, got.Currency)
	assert.Equal(t, model.ThemeDark, got.Theme)
	assert.True(t, got.NotificationPreferences.Email)
}

func TestReset_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestService(t)

	currency := model.CurrencyTRY
	_, err := svc.Save(ctx, model.PreferencesPatch{Currency: &currency})
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx))
	first := svc.Preferences(ctx)

	require.NoError(t, svc.Reset(ctx))
	second := svc.Preferences(ctx)

	assert.Equal(t, model.DefaultPreferences(), first)
	assert.Equal(t, first, second)
}

func TestConvenienceAccessors(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestService(t)

	require.NoError(t, svc.SetCurrency(ctx, model.CurrencyUSD))
	require.NoError(t, svc.SetLanguage(ctx, model.LanguageTrTR))
	require.NoError(t, svc.SetTheme(ctx, model.ThemeLight))

	assert.Equal(t, model.CurrencyUSD, svc.Currency(ctx))
	assert.Equal(t, model.LanguageTrTR, svc.Language(ctx))
	assert.Equal(t, model.ThemeLight, svc.Theme(ctx))
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	svc, st := createTestService(t)

	require.NoError(t, svc.SetCurrency(ctx, model.CurrencyUSD))
	require.NoError(t, svc.AddRecentSearch(ctx, "acme"))
	require.NoError(t, svc.ClearAll(ctx))

	assert.Equal(t, model.DefaultPreferences(), svc.Preferences(ctx))
	assert.Empty(t, svc.RecentSearches(ctx))

	_, ok, err := st.Get(ctx, store.KeyUserPreferences)
	require.NoError(t, err)
	assert.False(t, ok)
}
