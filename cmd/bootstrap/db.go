package bootstrap

import (
	"context"

	"authentithief/internal/infra/db"
	"authentithief/internal/infra/uow"
	"authentithief/internal/pkg/config"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		fx.Annotate(
			NewDB,
			fx.As(new(uow.PoolProvider)),
		),
	),
)

// NewDB hands out a lazily connected pool; only Postgres-backed components
// ever dial.
func NewDB(lc fx.Lifecycle, cfg config.Config) *db.LazyPool {
	pool := db.NewLazyPool(cfg.DB)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			pool.Close()
			return nil
		},
	})

	return pool
}
