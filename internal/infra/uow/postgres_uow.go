package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"logipark/internal/domain/reservation"
	"logipark/internal/infra/readstore"
	"logipark/internal/infra/repository"
	sqlc "logipark/internal/infra/sqlc/generated"
	"logipark/internal/pkg/config"
	"logipark/internal/pkg/errs"
	"logipark/internal/usecase/shared"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeExclusionViolation   = "23P01"
	pgErrCodeUniqueViolation      = "23505"

	retryBase = 50 * time.Millisecond
)

// Constraints that stand in for the conflict check when two transactions race past it.
var conflictConstraints = map[string]reservation.Dimension{
	"reservations_vehicle_no_overlap":      reservation.DimensionVehicle,
	"reservations_driver_no_overlap":       reservation.DimensionDriver,
	"reservations_space_no_overlap":        reservation.DimensionSpace,
	"reservations_space_in_progress_key":   reservation.DimensionSpace,
	"reservations_vehicle_in_progress_key": reservation.DimensionVehicle,
}

type PostgresUoW struct {
	pool       *pgxpool.Pool
	q          *sqlc.Queries
	maxRetries int
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.BookingConfig) shared.UnitOfWork {
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		maxRetries: max(cfg.TxMaxRetries, 0),
	}
}

// Within runs fn at Serializable so the availability check and the insert
// it guards can't interleave with another booking.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(errs.Wrap(err, "begin transaction"), errs.ErrUnavailable)
		}

		err = fn(ctx, newPgTx(u.q, pgxTx))
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(errs.Wrap(err, "commit transaction"), errs.ErrUnavailable)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return translateConstraintErr(err)
		}
		if attempt >= u.maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(errs.Wrapf(err, "gave up after %d attempts", attempt+1), errs.ErrUnavailable)
		}

		waitTime := calculateBackoff(attempt, retryBase)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

// translateConstraintErr turns a reservation overlap caught by the database
// into the same ConflictError the in-transaction check produces.
func translateConstraintErr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	if pgErr.Code != pgErrCodeExclusionViolation && pgErr.Code != pgErrCodeUniqueViolation {
		return err
	}
	dim, ok := conflictConstraints[pgErr.ConstraintName]
	if !ok {
		return err
	}
	return reservation.NewConflictError(dim, uuid.Nil)
}

type pgTx struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX

	// Lazy-initialized repositories
	reservationRepo  shared.ReservationRepository
	lotRepo          shared.ParkingLotRepository
	spaceRepo        shared.ParkingSpaceRepository
	fleetRepo        shared.FleetRepository
	idempotencyRepo  shared.IdempotencyRepository
	notificationRepo shared.NotificationRepository
	userRepo         shared.UserRepository
	commandReads     shared.CommandReads
}

func newPgTx(q *sqlc.Queries, dbtx sqlc.DBTX) *pgTx {
	return &pgTx{q: q, dbtx: dbtx}
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Lots() shared.ParkingLotRepository {
	if t.lotRepo == nil {
		t.lotRepo = repository.NewParkingLotRepository(t.q, t.dbtx)
	}
	return t.lotRepo
}

func (t *pgTx) Spaces() shared.ParkingSpaceRepository {
	if t.spaceRepo == nil {
		t.spaceRepo = repository.NewParkingSpaceRepository(t.q, t.dbtx)
	}
	return t.spaceRepo
}

func (t *pgTx) Fleet() shared.FleetRepository {
	if t.fleetRepo == nil {
		t.fleetRepo = repository.NewFleetRepository(t.q, t.dbtx)
	}
	return t.fleetRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.q, t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = readstore.NewCommandReadStore(t.q, t.dbtx)
	}
	return t.commandReads
}
