package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/Veraticus/faktura/internal/common"
	"github.com/Veraticus/faktura/internal/config"
	"github.com/Veraticus/faktura/internal/store"
)

// openStore constructs the configured key-value backend. SQLite is the
// default; migrations run on every open and are idempotent.
func openStore(ctx context.Context) (store.Store, error) {
	backend := viper.GetString("storage.backend")
	if backend == "" {
		backend = "sqlite"
	}

	switch backend {
	case "sqlite":
		dbPath := viper.GetString("storage.path")
		if dbPath == "" {
			dbPath = config.DefaultDatabasePath()
		}
		dbPath = config.ExpandPath(dbPath)

		st, err := store.NewSQLiteStore(dbPath)
		if err != nil {
			return nil, common.NewUserError("local storage is unavailable",
				fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err))
		}
		if err := st.Migrate(ctx); err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("failed to migrate store: %w", err)
		}
		return st, nil

	case "redis":
		addr := viper.GetString("redis.addr")
		if addr == "" {
			addr = "localhost:6379"
		}
		st, err := store.NewRedisStore(ctx, store.RedisConfig{
			Addr:     addr,
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		})
		if err != nil {
			return nil, common.NewUserError("redis storage is unavailable",
				fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err))
		}
		return st, nil

	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}
