package components

import (
	"context"
	"log/slog"

	"logipark/internal/infra/janitor"
	"logipark/internal/infra/repository"
	sqlc "logipark/internal/infra/sqlc/generated"
	"logipark/internal/pkg/config"

	"go.uber.org/fx"
)

var JanitorModule = fx.Module("janitor",
	fx.Provide(
		newIdempotencySweeper,
	),
	fx.Invoke(registerSweeper),
)

func newIdempotencySweeper(q *sqlc.Queries, db sqlc.DBTX, cfg config.BookingConfig, logger *slog.Logger) *janitor.IdempotencySweeper {
	return janitor.NewIdempotencySweeper(
		repository.NewIdempotencyRepository(q, db),
		cfg.IdempotencySweepInterval,
		logger.With("component", "idempotency_sweeper"),
	)
}

func registerSweeper(lc fx.Lifecycle, sweeper *janitor.IdempotencySweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
