package janitor

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type ExpiredKeyDeleter interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// IdempotencySweeper periodically purges expired idempotency keys.
type IdempotencySweeper struct {
	deleter  ExpiredKeyDeleter
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewIdempotencySweeper(deleter ExpiredKeyDeleter, interval time.Duration, logger *slog.Logger) *IdempotencySweeper {
	return &IdempotencySweeper{
		deleter:  deleter,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the sweep loop. A non-positive interval leaves it off.
func (s *IdempotencySweeper) Start() {
	if s.interval <= 0 {
		s.logger.Info("idempotency sweep disabled")
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
}

// Stop cancels the loop and waits for an in-flight sweep to return.
func (s *IdempotencySweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
}

func (s *IdempotencySweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

func (s *IdempotencySweeper) Sweep(ctx context.Context) {
	n, err := s.deleter.DeleteExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn("idempotency sweep failed", "error", err.Error())
		}
		return
	}
	if n > 0 {
		s.logger.Info("swept expired idempotency keys", "count", n)
	}
}
