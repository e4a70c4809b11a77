package app

import (
	"context"
	"database/sql"

	"account-service/internal/auth"
	"account-service/internal/auth/store"
	"account-service/internal/config"
	"account-service/internal/db"
	"account-service/internal/logger"
	"account-service/internal/redis"
	"account-service/internal/session"

	_ "github.com/lib/pq"
)

type Infra struct {
	Users    auth.Store
	Sessions session.Store
	cleanup  []func() error
}

func (i *Infra) Close() error {
	var firstErr error
	for _, fn := range i.cleanup {
		if err := fn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// setupInfra selects the store backends from configuration: Postgres
// and Redis when configured, in-process stores otherwise.
func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	infra := &Infra{}

	if cfg.DatabaseDSN != "" {
		sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}

		if err := sqlDB.PingContext(ctx); err != nil {
			return nil, err
		}

		if err := db.RunKeystoneMigration(ctx, sqlDB); err != nil {
			return nil, err
		}

		logger.Info("database ready", nil)

		infra.Users = store.NewPostgres(sqlDB)
		infra.cleanup = append(infra.cleanup, sqlDB.Close)
	} else {
		logger.Warn("no DATABASE_DSN set, using in-memory credential store", nil)
		infra.Users = store.NewMemory()
	}

	if cfg.RedisAddr != "" {
		redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}

		logger.Info("redis ready", nil)

		infra.Sessions = session.NewRedisStore(redisClient.Client)
		infra.cleanup = append(infra.cleanup, redisClient.Close)
	} else {
		logger.Warn("no REDIS_ADDR set, using in-memory session store", nil)
		infra.Sessions = session.NewMemoryStore()
	}

	return infra, nil
}
