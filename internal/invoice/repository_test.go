package invoice

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/faktura/internal/model"
	"github.com/Veraticus/faktura/internal/store"
)

func createTestRepository(t *testing.T) (*Repository, store.Store) {
	t.Helper()

	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, st.Migrate(context.Background()))
	t.Cleanup(func() { _ = st.Close() })

	return NewRepository(st), st
}

func TestList_SeedsEmptyStoreOnce(t *testing.T) {
	ctx := context.Background()
	repo, st := createTestRepository(t)

	first := repo.List(ctx)
	require.Len(t, first, 8)
	assert.Equal(t, "INV-2024-001", first[0].InvoiceNumber)

	// The seed is now persisted; a second call returns the identical
	// list from the store without reseeding.
	value, ok, err := st.Get(ctx, store.KeyInvoices)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, value)

	second := repo.List(ctx)
	assert.Equal(t, first, second)
}

func TestList_CorruptBlobFallsBackWithoutOverwriting(t *testing.T) {
	ctx := context.Background()
	repo, st := createTestRepository(t)

	require.NoError(t, st.Set(ctx, store.KeyInvoices, "{definitely not an array"))

	invoices := repo.List(ctx)
	assert.Equal(t, MockInvoices(), invoices)

	// The broken value is still there, not clobbered by the seed.
	value, ok, err := st.Get(ctx, store.KeyInvoices)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "{definitely not an array", value)
}

func TestSave_DefaultsStatusToPending(t *testing.T) {
	ctx := context.Background()
	repo, _ := createTestRepository(t)

	saved, err := repo.Save(ctx, model.Invoice{
		InvoiceNumber: "INV-1",
		ClientName:    "Acme",
		Amount:        500,
		Date:          "2024-01-10",
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, saved.Status)
	assert.NotEmpty(t, saved.ID)
	assert.NotEmpty(t, saved.UploadDate)

	// The saved invoice shows up in the list alongside the seed.
	invoices := repo.List(ctx)
	require.Len(t, invoices, 9)
	assert.Equal(t, "INV-1", invoices[8].InvoiceNumber)

	// Every stored invoice carries a valid status.
	for _, inv := range invoices {
		assert.True(t, inv.Status.Valid(), "invoice %s has status %q", inv.ID, inv.Status)
	}
}

func TestSave_RejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	repo, _ := createTestRepository(t)

	_, err := repo.Save(ctx, model.Invoice{InvoiceNumber: "INV-2", Status: "cancelled"})
	assert.Error(t, err)
}

func TestByID(t *testing.T) {
	ctx := context.Background()
	repo, _ := createTestRepository(t)

	found := repo.ByID(ctx, "3")
	require.NotNil(t, found)
	assert.Equal(t, "Global Services Inc", found.ClientName)

	// A nonexistent id is nil, never an error or a panic.
	assert.Nil(t, repo.ByID(ctx, "no-such-id"))
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo, _ := createTestRepository(t)

	saved, err := repo.Save(ctx, model.Invoice{
		InvoiceNumber: "INV-1",
		ClientName:    "Acme",
		Amount:        500,
		Date:          "2024-01-10",
	})
	require.NoError(t, err)
	require.Equal(t, model.StatusPending, saved.Status)

	updated, err := repo.UpdateStatus(ctx, saved.ID, model.StatusPaid)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, model.StatusPaid, updated.Status)

	// Re-fetch observes the persisted change.
	refetched := repo.ByID(ctx, saved.ID)
	require.NotNil(t, refetched)
	assert.Equal(t, model.StatusPaid, refetched.Status)

	// Unknown id is a nil result, not an error.
	missing, err := repo.UpdateStatus(ctx, "no-such-id", model.StatusPaid)
	require.NoError(t, err)
	assert.Nil(t, missing)

	// Unknown status is rejected.
	_, err = repo.UpdateStatus(ctx, saved.ID, "cancelled")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo, _ := createTestRepository(t)

	before := repo.List(ctx)
	deleted, err := repo.Delete(ctx, "5")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Len(t, repo.List(ctx), len(before)-1)

	deleted, err = repo.Delete(ctx, "5")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDelete_EmptyRepositoryUnchanged(t *testing.T) {
	ctx := context.Background()
	repo, st := createTestRepository(t)

	// An explicitly empty store: no seed has happened yet, write [].
	require.NoError(t, st.Set(ctx, store.KeyInvoices, "[]"))

	deleted, err := repo.Delete(ctx, "anything")
	require.NoError(t, err)
	assert.False(t, deleted)

	value, ok, err := st.Get(ctx, store.KeyInvoices)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", value)
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	repo, _ := createTestRepository(t)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "client name match", query: "acme", want: 1},
		{name: "number match", query: "INV-2024-00", want: 8},
		{name: "case insensitive", query: "GLOBAL", want: 1},
		{name: "empty query matches all", query: "  ", want: 8},
		{name: "no match", query: "zzz", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, repo.Search(ctx, tt.query), tt.want)
		})
	}
}

func TestShareLink(t *testing.T) {
	link := ShareLink("42")
	assert.True(t, strings.HasPrefix(link, "https://invoiceapp.example.com/share/42?token="))

	// Tokens are random per call.
	assert.NotEqual(t, link, ShareLink("42"))
}
