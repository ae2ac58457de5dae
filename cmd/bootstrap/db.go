package bootstrap

import (
	"context"
	"log/slog"

	"logipark/internal/infra/db"
	"logipark/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB connects eagerly so a bad DSN fails fx.New rather than the first request.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(func() {
		stat := pool.Stat()
		logger.Info("closing database pool",
			"acquired_conns", stat.AcquiredConns(),
			"total_conns", stat.TotalConns(),
		)
		cleanup()
	}))

	return pool, nil
}
