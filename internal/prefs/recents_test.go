package prefs

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRecentInvoice_DedupesAndCaps(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestService(t)

	for i := 0; i < 12; i++ {
		require.NoError(t, svc.AddRecentInvoice(ctx, fmt.Sprintf("inv-%d", i)))
	}

	recent := svc.RecentInvoices(ctx)
	require.Len(t, recent, 10)
	assert.Equal(t, "inv-11", recent[0].ID)

	// Re-viewing an entry moves it to the front without growing the list.
	require.NoError(t, svc.AddRecentInvoice(ctx, "inv-5"))
	recent = svc.RecentInvoices(ctx)
	require.Len(t, recent, 10)
	assert.Equal(t, "inv-5", recent[0].ID)
}

func TestToggleFavorite(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestService(t)

	on, err := svc.ToggleFavorite(ctx, "inv-1")
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, []string{"inv-1"}, svc.FavoriteInvoices(ctx))

	off, err := svc.ToggleFavorite(ctx, "inv-1")
	require.NoError(t, err)
	assert.False(t, off)
	assert.Empty(t, svc.FavoriteInvoices(ctx))
}

func TestAddRecentSearch_DedupesAndCaps(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestService(t)

	for _, term := range []string{"acme", "tech", "global", "acme", "digital", "smart", "future"} {
		require.NoError(t, svc.AddRecentSearch(ctx, term))
	}

	searches := svc.RecentSearches(ctx)
	require.Len(t, searches, 5)
	assert.Equal(t, []string{"future", "smart", "digital", "acme", "global"}, searches)
}

func TestLastViewedInvoice(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestService(t)

	assert.Empty(t, svc.LastViewedInvoice(ctx))

	require.NoError(t, svc.SetLastViewedInvoice(ctx, "inv-7"))
	assert.Equal(t, "inv-7", svc.LastViewedInvoice(ctx))
}
