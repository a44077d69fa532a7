package components

import (
	"context"
	"log/slog"
	"time"

	"authentithief/internal/infra/cache"
	"authentithief/internal/infra/docstore"
	"authentithief/internal/infra/memory"
	"authentithief/internal/infra/repository"
	sqlc "authentithief/internal/infra/sqlc/generated"
	"authentithief/internal/infra/uow"
	"authentithief/internal/pkg/clock"
	"authentithief/internal/pkg/config"
	"authentithief/internal/usecase/shared"

	"go.uber.org/fx"
)

const connectTimeout = 10 * time.Second

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		clock.NewRealClock,
		NewSQLQueries,
		uow.NewPostgresUoW,
		NewLedger,
		NewScanStore,
	),
)

func NewSQLQueries() *sqlc.Queries {
	return sqlc.New()
}

func NewLedger(cfg config.Config, q *sqlc.Queries, u shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) shared.Ledger {
	logger.Info("ledger backend selected", "backend", cfg.Ledger.Backend)
	if cfg.Ledger.Backend == config.BackendPostgres {
		return repository.NewLedgerRepository(q, u, clk, cfg.Ledger.DefaultBalance)
	}
	return memory.NewLedger(clk, cfg.Ledger.DefaultBalance)
}

func NewScanStore(lc fx.Lifecycle, cfg config.Config, q *sqlc.Queries, u shared.UnitOfWork, logger *slog.Logger) (shared.ScanStore, error) {
	logger.Info("scan store backend selected", "backend", cfg.Scan.Backend)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	switch cfg.Scan.Backend {
	case config.BackendPostgres:
		return repository.NewScanRepository(q, u), nil
	case config.BackendRedis:
		client, err := cache.Connect(ctx, cfg.Scan.RedisURL)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		return cache.NewScanStore(client, cfg.Scan.RedisPrefix), nil
	case config.BackendMongo:
		client, err := docstore.Connect(ctx, cfg.Scan.MongoURI)
		if err != nil {
			return nil, err
		}
		store, err := docstore.NewScanStore(ctx, client.Database(cfg.Scan.MongoDatabase))
		if err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(stopCtx context.Context) error {
				return client.Disconnect(stopCtx)
			},
		})
		return store, nil
	default:
		return memory.NewScanStore(), nil
	}
}
