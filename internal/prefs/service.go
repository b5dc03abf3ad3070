// Package prefs manages the singleton user-preferences record and the
// small derived lists around it (recents, favorites, searches).
package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Veraticus/faktura/internal/model"
	"github.com/Veraticus/faktura/internal/store"
)

// Service reads and writes user preferences through an injected store.
// There is no change notification; consumers re-fetch to observe
// updates made elsewhere.
type Service struct {
	store store.Store
}

// NewService creates a preferences service on top of a store.
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Preferences returns the stored record, or the defaults when the
// record is absent or cannot be decoded. It never returns an error:
// a broken read is a broken read, not a broken app.
func (s *Service) Preferences(ctx context.Context) model.UserPreferences {
	value, ok, err := s.store.Get(ctx, store.KeyUserPreferences)
	if err != nil {
		slog.Error("failed to read preferences, using defaults", "error", err)
		return model.DefaultPreferences()
	}
	if !ok {
		return model.DefaultPreferences()
	}

	var prefs model.UserPreferences
	if err := json.Unmarshal([]byte(value), &prefs); err != nil {
		slog.Error("failed to decode preferences, using defaults", "error", err)
		return model.DefaultPreferences()
	}
	return prefs
}

// Save shallow-merges the patch onto the current record (or the
// defaults) and writes the merged whole back. Last writer wins.
func (s *Service) Save(ctx context.Context, patch model.PreferencesPatch) (model.UserPreferences, error) {
	prefs := s.Preferences(ctx)
	patch.Apply(&prefs)

	if err := s.write(ctx, prefs); err != nil {
		return model.UserPreferences{}, err
	}
	return prefs, nil
}

// Reset overwrites the stored record with the defaults verbatim.
func (s *Service) Reset(ctx context.Context) error {
	return s.write(ctx, model.DefaultPreferences())
}

// ClearAll removes every settings-owned key from the store.
func (s *Service) ClearAll(ctx context.Context) error {
	keys := []string{
		store.KeyUserPreferences,
		store.KeyRecentInvoices,
		store.KeyFavoriteInvoices,
		store.KeyRecentSearches,
		store.KeyLastViewedInvoice,
	}
	if err := s.store.MultiRemove(ctx, keys); err != nil {
		return fmt.Errorf("failed to clear settings: %w", err)
	}
	return nil
}

// Currency is a convenience accessor over the preferences record.
func (s *Service) Currency(ctx context.Context) model.Currency {
	return s.Preferences(ctx).Currency
}

// SetCurrency updates only the currency preference.
func (s *Service) SetCurrency(ctx context.Context, c model.Currency) error {
	_, err := s.Save(ctx, model.PreferencesPatch{Currency: &c})
	return err
}

// Language is a convenience accessor over the preferences record.
func (s *Service) Language(ctx context.Context) model.Language {
	return s.Preferences(ctx).Language
}

// SetLanguage updates only the language preference.
func (s *Service) SetLanguage(ctx context.Context, l model.Language) error {
	_, err := s.Save(ctx, model.PreferencesPatch{Language: &l})
	return err
}

// Theme is a convenience accessor over the preferences record.
func (s *Service) Theme(ctx context.Context) model.Theme {
	return s.Preferences(ctx).Theme
}

// SetTheme updates only the theme preference.
func (s *Service) SetTheme(ctx context.Context, t model.Theme) error {
	_, err := s.Save(ctx, model.PreferencesPatch{Theme: &t})
	return err
}

func (s *Service) write(ctx context.Context, prefs model.UserPreferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := s.store.Set(ctx, store.KeyUserPreferences, string(data)); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
