// Package invoice provides CRUD over the invoice list.
//
// The whole list lives as one JSON array under a single key, and every
// write rewrites that array. Two concurrent writers can therefore lose
// one update; with a single-user, single-process store this is an
// accepted limitation, not a bug to lock away.
package invoice

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/faktura/internal/model"
	"github.com/Veraticus/faktura/internal/store"
)

// Repository persists invoices through an injected store.
type Repository struct {
	store store.Store
}

// NewRepository creates an invoice repository on top of a store.
func NewRepository(st store.Store) *Repository {
	return &Repository{store: st}
}

// List returns every persisted invoice. An empty store is seeded with
// the mock dataset first, so a fresh install always has data; a store
// or decode failure falls back to the same dataset without persisting.
func (r *Repository) List(ctx context.Context) []model.Invoice {
	value, ok, err := r.store.Get(ctx, store.KeyInvoices)
	if err != nil {
		slog.Error("failed to read invoices, falling back to seed data", "error", err)
		return MockInvoices()
	}

	if !ok {
		seed := MockInvoices()
		if err := r.write(ctx, seed); err != nil {
			slog.Error("failed to persist seed invoices", "error", err)
		} else {
			slog.Info("seeded invoice store", "count", len(seed))
		}
		return seed
	}

	var invoices []model.Invoice
	if err := json.Unmarshal([]byte(value), &invoices); err != nil {
		// Do not overwrite the stored blob; it may still be repairable.
		slog.Error("failed to decode invoices, falling back to seed data", "error", err)
		return MockInvoices()
	}

	slog.Debug("retrieved invoices", "count", len(invoices))
	return invoices
}

// Save appends an invoice and rewrites the array. Missing fields get
// their creation defaults: pending status, timestamp-derived id, and
// today's upload date. Uniqueness of invoice numbers is not enforced.
func (r *Repository) Save(ctx context.Context, inv model.Invoice) (model.Invoice, error) {
	if inv.Status == "" {
		inv.Status = model.StatusPending
	}
	if !inv.Status.Valid() {
		return model.Invoice{}, fmt.Errorf("invalid invoice status %q", inv.Status)
	}
	if inv.ID == "" {
		inv.ID = model.NewInvoiceID()
	}
	if inv.UploadDate == "" {
		inv.UploadDate = time.Now().Format(model.DateLayout)
	}

	invoices := r.List(ctx)
	invoices = append(invoices, inv)

	if err := r.write(ctx, invoices); err != nil {
		return model.Invoice{}, err
	}

	slog.Info("saved invoice", "id", inv.ID, "number", inv.InvoiceNumber)
	return inv, nil
}

// ByID returns the invoice with the given id, or nil when not found.
func (r *Repository) ByID(ctx context.Context, id string) *model.Invoice {
	for _, inv := range r.List(ctx) {
		if inv.ID == id {
			found := inv
			return &found
		}
	}
	return nil
}

// UpdateStatus changes one invoice's status in place and rewrites the
// array. It returns nil when the id is unknown; that is not an error.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status model.InvoiceStatus) (*model.Invoice, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid invoice status %q", status)
	}

	invoices := r.List(ctx)
	for i := range invoices {
		if invoices[i].ID != id {
			continue
		}
		invoices[i].Status = status
		if err := r.write(ctx, invoices); err != nil {
			return nil, err
		}
		updated := invoices[i]
		return &updated, nil
	}

	return nil, nil
}

// Delete removes the invoice with the given id and reports whether
// anything was removed. An empty repository is left untouched.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	invoices := r.List(ctx)

	remaining := make([]model.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.ID != id {
			remaining = append(remaining, inv)
		}
	}

	if len(remaining) == len(invoices) {
		return false, nil
	}

	if err := r.write(ctx, remaining); err != nil {
		return false, err
	}

	slog.Info("deleted invoice", "id", id)
	return true, nil
}

// Search returns invoices whose number or client name contains the
// query, case-insensitively. An empty query matches everything.
func (r *Repository) Search(ctx context.Context, query string) []model.Invoice {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return r.List(ctx)
	}

	var matches []model.Invoice
	for _, inv := range r.List(ctx) {
		if strings.Contains(strings.ToLower(inv.InvoiceNumber), query) ||
			strings.Contains(strings.ToLower(inv.ClientName), query) {
			matches = append(matches, inv)
		}
	}
	return matches
}

func (r *Repository) write(ctx context.Context, invoices []model.Invoice) error {
	data, err := json.Marshal(invoices)
	if err != nil {
		return fmt.Errorf("failed to encode invoices: %w", err)
	}
	if err := r.store.Set(ctx, store.KeyInvoices, string(data)); err != nil {
		return fmt.Errorf("failed to save invoices: %w", err)
	}
	return nil
}
