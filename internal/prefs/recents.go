package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/faktura/internal/store"
)

// Caps on the derived lists.
const (
	maxRecentInvoices = 10
	maxRecentSearches = 5
)

// RecentInvoice records when an invoice was last opened.
type RecentInvoice struct {
	ID         string `json:"id"`
	LastViewed int64  `json:"lastViewed"` // unix milliseconds
}

// RecentInvoices returns the newest-first recently viewed list.
func (s *Service) RecentInvoices(ctx context.Context) []RecentInvoice {
	var recent []RecentInvoice
	s.readList(ctx, store.KeyRecentInvoices, &recent)
	return recent
}

// AddRecentInvoice moves id to the front of the recent list, deduping
// and capping at ten entries.
func (s *Service) AddRecentInvoice(ctx context.Context, id string) error {
	recent := s.RecentInvoices(ctx)

	updated := make([]RecentInvoice, 0, len(recent)+1)
	updated = append(updated, RecentInvoice{ID: id, LastViewed: time.Now().UnixMilli()})
	for _, r := range recent {
		if r.ID != id {
			updated = append(updated, r)
		}
	}
	if len(updated) > maxRecentInvoices {
		updated = updated[:maxRecentInvoices]
	}

	return s.writeList(ctx, store.KeyRecentInvoices, updated)
}

// FavoriteInvoices returns the set of favorited invoice ids.
func (s *Service) FavoriteInvoices(ctx context.Context) []string {
	var favorites []string
	s.readList(ctx, store.KeyFavoriteInvoices, &favorites)
	return favorites
}

// ToggleFavorite adds id to the favorites, or removes it when already
// present. It reports whether the invoice is a favorite afterwards.
func (s *Service) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	favorites := s.FavoriteInvoices(ctx)

	updated := make([]string, 0, len(favorites)+1)
	removed := false
	for _, f := range favorites {
		if f == id {
			removed = true
			continue
		}
		updated = append(updated, f)
	}
	if !removed {
		updated = append(updated, id)
	}

	if err := s.writeList(ctx, store.KeyFavoriteInvoices, updated); err != nil {
		return false, err
	}
	return !removed, nil
}

// RecentSearches returns the newest-first recent search terms.
func (s *Service) RecentSearches(ctx context.Context) []string {
	var searches []string
	s.readList(ctx, store.KeyRecentSearches, &searches)
	return searches
}

// AddRecentSearch moves the term to the front, deduping and capping at
// five entries.
func (s *Service) AddRecentSearch(ctx context.Context, term string) error {
	searches := s.RecentSearches(ctx)

	updated := make([]string, 0, len(searches)+1)
	updated = append(updated, term)
	for _, q := range searches {
		if q != term {
			updated = append(updated, q)
		}
	}
	if len(updated) > maxRecentSearches {
		updated = updated[:maxRecentSearches]
	}

	return s.writeList(ctx, store.KeyRecentSearches, updated)
}

// LastViewedInvoice returns the last opened invoice id, or "" when none
// is recorded.
func (s *Service) LastViewedInvoice(ctx context.Context) string {
	value, ok, err := s.store.Get(ctx, store.KeyLastViewedInvoice)
	if err != nil {
		slog.Error("failed to read last viewed invoice", "error", err)
		return ""
	}
	if !ok {
		return ""
	}
	return value
}

// SetLastViewedInvoice records the last opened invoice id.
func (s *Service) SetLastViewedInvoice(ctx context.Context, id string) error {
	if err := s.store.Set(ctx, store.KeyLastViewedInvoice, id); err != nil {
		return fmt.Errorf("failed to record last viewed invoice: %w", err)
	}
	return nil
}

// readList decodes a JSON list under key into out, treating absence and
// decode failures as an empty list.
func (s *Service) readList(ctx context.Context, key string, out any) {
	value, ok, err := s.store.Get(ctx, key)
	if err != nil {
		slog.Error("failed to read list, treating as empty", "key", key, "error", err)
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		slog.Error("failed to decode list, treating as empty", "key", key, "error", err)
	}
}

func (s *Service) writeList(ctx context.Context, key string, list any) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
