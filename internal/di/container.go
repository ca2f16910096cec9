package di

import (
	"context"
	"errors"
	"fmt"
	"funding_approval_system/configs"
	"funding_approval_system/internal/db"
	"funding_approval_system/internal/db/repositories"
	"funding_approval_system/internal/ledger"
	"time"

	zaploki "github.com/paul-milne/zap-loki"
	"go.uber.org/zap"
)

var ErrUnknownDriver = errors.New("unknown db driver")

func NewLogger(config configs.Logger) *zap.SugaredLogger {
	if config.URL == "" {
		return zap.Must(zap.NewProduction()).Sugar()
	}

	ctx := context.Background()
	lokiConfig := zaploki.Config{
		Url:          config.URL,
		BatchMaxSize: 1000,
		BatchMaxWait: 10 * time.Second,
		Labels:       map[string]string{"app": config.AppName},
	}
	return zap.Must(zaploki.New(ctx, lokiConfig).WithCreateLogger(zap.NewProductionConfig())).Sugar()
}

// NewStore opens the ledger backend selected by config.Driver. The returned func
// releases the underlying connection.
func NewStore(config configs.DB, logger *zap.SugaredLogger) (ledger.Store, func(), error) {
	switch config.Driver {
	case configs.DBDriverPostgres:
		database, err := db.StartDB(config, logger)
		if err != nil {
			return nil, nil, err
		}

		store := ledger.NewPostgresStore(
			repositories.NewRequestRepository(database),
			repositories.NewVoteRepository(database),
			repositories.NewUserRepository(database),
		)
		return store, func() { _ = database.Close() }, nil

	case configs.DBDriverSQLite:
		database, err := db.StartSQLite(config.SQLitePath, logger)
		if err != nil {
			return nil, nil, err
		}

		closer := func() {
			if sqlDB, err := database.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return ledger.NewGormStore(database), closer, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, config.Driver)
	}
}
