// Package backup exports and restores the whole key-value store as a
// single JSON snapshot. The "cloud" destination in the settings is a
// mock: a backup is always just a local file.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/faktura/internal/store"
)

// Service snapshots an injected store.
type Service struct {
	store store.Store
}

// NewService creates a backup service on top of a store.
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Snapshot maps each present key to its raw stored value. Missing keys
// are omitted rather than written as empty strings.
type Snapshot map[string]string

// Export writes a snapshot of every well-known key to w. The progress
// callback, when non-nil, is invoked once per key swept.
func (s *Service) Export(ctx context.Context, w io.Writer, progress func(key string)) error {
	snapshot := make(Snapshot)

	for _, key := range store.Keys() {
		value, ok, err := s.store.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to read %q for export: %w", key, err)
		}
		if ok {
			snapshot[key] = value
		}
		if progress != nil {
			progress(key)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	slog.Info("exported backup", "keys", len(snapshot))
	return nil
}

// Restore writes every entry of a snapshot back into the store. Keys
// absent from the snapshot are left untouched.
func (s *Service) Restore(ctx context.Context, r io.Reader, progress func(key string)) error {
	var snapshot Snapshot
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return fmt.Errorf("failed to decode snapshot: %w", err)
	}

	for key, value := range snapshot {
		if err := s.store.Set(ctx, key, value); err != nil {
			return fmt.Errorf("failed to restore %q: %w", key, err)
		}
		if progress != nil {
			progress(key)
		}
	}

	slog.Info("restored backup", "keys", len(snapshot))
	return nil
}
