package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"logipark/internal/domain/reservation"
	"logipark/internal/infra"
	"logipark/internal/infra/repository/converter"
	sqlc "logipark/internal/infra/sqlc/generated"
	"logipark/internal/pkg/pgconv"
	"logipark/internal/usecase/shared"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (int64, error)
	FindReservationByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	ListActiveReservationsInScope(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveReservationsInScopeParams) ([]sqlc.Reservations, error)
	FindInProgressReservationBySpace(ctx context.Context, db sqlc.DBTX, parkingSpaceID pgtype.UUID) (sqlc.Reservations, error)
	FindInProgressReservationByVehicle(ctx context.Context, db sqlc.DBTX, vehicleID uuid.UUID) (sqlc.Reservations, error)
	CountActiveReservationsBySpace(ctx context.Context, db sqlc.DBTX, parkingSpaceID pgtype.UUID) (int64, error)
	CountActiveReservationsByLot(ctx context.Context, db sqlc.DBTX, parkingLotID uuid.UUID) (int64, error)
}

// ReservationRepository is bound to one transaction's DBTX.
type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservation(ctx, r.db, converter.ReservationToUpdateParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.FindReservationByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, wrapFindErr("reservation", err)
	}
	return toReservation(row)
}

func (r *ReservationRepository) ListActiveInScope(ctx context.Context, scope shared.ConflictScope) ([]reservation.Booking, error) {
	rows, err := r.queries.ListActiveReservationsInScope(ctx, r.db, sqlc.ListActiveReservationsInScopeParams{
		VehicleID: scope.VehicleID,
		DriverID:  scope.DriverID,
		SpaceID:   pgconv.UUIDPtrToPgtype(scope.SpaceID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations", err)
	}

	bookings := make([]reservation.Booking, 0, len(rows))
	for _, row := range rows {
		res, err := toReservation(row)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, res.Booking())
	}
	return bookings, nil
}

func (r *ReservationRepository) FindInProgressBySpace(ctx context.Context, spaceID uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.FindInProgressReservationBySpace(ctx, r.db, pgconv.UUIDToPgtype(spaceID))
	if err != nil {
		return nil, wrapFindErr("reservation in progress", err)
	}
	return toReservation(row)
}

func (r *ReservationRepository) FindInProgressByVehicle(ctx context.Context, vehicleID uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.FindInProgressReservationByVehicle(ctx, r.db, vehicleID)
	if err != nil {
		return nil, wrapFindErr("reservation in progress", err)
	}
	return toReservation(row)
}

func (r *ReservationRepository) CountActiveBySpace(ctx context.Context, spaceID uuid.UUID) (int64, error) {
	n, err := r.queries.CountActiveReservationsBySpace(ctx, r.db, pgconv.UUIDToPgtype(spaceID))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active reservations by space", err)
	}
	return n, nil
}

func (r *ReservationRepository) CountActiveByLot(ctx context.Context, lotID uuid.UUID) (int64, error) {
	n, err := r.queries.CountActiveReservationsByLot(ctx, r.db, lotID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active reservations by lot", err)
	}
	return n, nil
}

func toReservation(row sqlc.Reservations) (*reservation.Reservation, error) {
	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt reservation row", err, infra.KindDBFailure)
	}
	return res, nil
}

// wrapFindErr turns pgx.ErrNoRows into a NotFound repository error.
func wrapFindErr(what string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(what+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to find "+what, err)
}
