// Package store provides the persistent key-value layer every service
// sits on. Values are JSON blobs (or raw strings) keyed by well-known
// names; backends are interchangeable behind the Store interface.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Well-known storage keys. The layout is one value per key; list-shaped
// data is a single JSON array under its key.
const (
	KeyUserPreferences   = "user-preferences"
	KeyInvoices          = "invoices"
	KeyAuthToken         = "auth-token"
	KeyUserData          = "user-data"
	KeyRecentInvoices    = "recent-invoices"
	KeyFavoriteInvoices  = "favorite-invoices"
	KeyRecentSearches    = "recent-searches"
	KeyLastViewedInvoice = "last-viewed-invoice"
)

// Keys returns every well-known key, for reset and backup sweeps.
func Keys() []string {
	return []string{
		KeyUserPreferences,
		KeyInvoices,
		KeyAuthToken,
		KeyUserData,
		KeyRecentInvoices,
		KeyFavoriteInvoices,
		KeyRecentSearches,
		KeyLastViewedInvoice,
	}
}

// Store defines the contract for the key-value persistence layer.
// Get reports ok=false for a missing key; that is not an error.
// Any returned error means the operation did not happen.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	MultiRemove(ctx context.Context, keys []string) error
	Close() error
}

// Validation errors.
var (
	ErrNilContext = errors.New("context cannot be nil")
	ErrEmptyKey   = errors.New("key cannot be empty")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateKey ensures a key is not empty.
func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	return nil
}

// validateKeys ensures every key in a batch is usable.
func validateKeys(keys []string) error {
	for i, key := range keys {
		if err := validateKey(key); err != nil {
			return fmt.Errorf("key at index %d: %w", i, err)
		}
	}
	return nil
}
