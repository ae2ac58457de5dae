package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"logipark/internal/domain/parking"
	"logipark/internal/infra"
	"logipark/internal/infra/repository/converter"
	sqlc "logipark/internal/infra/sqlc/generated"
	"logipark/internal/pkg/pgconv"
)

type ParkingSpaceWriteQueries interface {
	FindParkingSpaceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ParkingSpaces, error)
	CreateParkingSpace(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateParkingSpaceParams) error
	UpdateParkingSpaceAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateParkingSpaceAvailabilityParams) (int64, error)
	DeactivateParkingSpace(ctx context.Context, db sqlc.DBTX, arg sqlc.DeactivateParkingSpaceParams) (int64, error)
	DeactivateParkingSpacesInLot(ctx context.Context, db sqlc.DBTX, arg sqlc.DeactivateParkingSpacesInLotParams) (int64, error)
	ActiveSpaceNumberExists(ctx context.Context, db sqlc.DBTX, arg sqlc.ActiveSpaceNumberExistsParams) (bool, error)
}

type ParkingSpaceRepository struct {
	queries ParkingSpaceWriteQueries
	db      sqlc.DBTX
}

func NewParkingSpaceRepository(queries ParkingSpaceWriteQueries, db sqlc.DBTX) *ParkingSpaceRepository {
	return &ParkingSpaceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ParkingSpaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*parking.Space, error) {
	row, err := r.queries.FindParkingSpaceByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapFindErr("parking space", err)
	}
	return converter.SpaceFromRow(row), nil
}

func (r *ParkingSpaceRepository) Create(ctx context.Context, space *parking.Space) error {
	if err := r.queries.CreateParkingSpace(ctx, r.db, converter.SpaceToCreateParams(space)); err != nil {
		return infra.WrapRepoErr("failed to create parking space", err)
	}
	return nil
}

func (r *ParkingSpaceRepository) UpdateAvailability(ctx context.Context, space *parking.Space) error {
	n, err := r.queries.UpdateParkingSpaceAvailability(ctx, r.db, sqlc.UpdateParkingSpaceAvailabilityParams{
		ID:          space.ID(),
		IsAvailable: space.IsAvailable(),
		UpdatedAt:   pgconv.TimeToPgtype(space.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update parking space availability", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("active parking space not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ParkingSpaceRepository) Deactivate(ctx context.Context, space *parking.Space) error {
	n, err := r.queries.DeactivateParkingSpace(ctx, r.db, sqlc.DeactivateParkingSpaceParams{
		ID:        space.ID(),
		UpdatedAt: pgconv.TimeToPgtype(space.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate parking space", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("active parking space not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ParkingSpaceRepository) DeactivateAllInLot(ctx context.Context, lotID uuid.UUID, at time.Time) (int64, error) {
	n, err := r.queries.DeactivateParkingSpacesInLot(ctx, r.db, sqlc.DeactivateParkingSpacesInLotParams{
		ParkingLotID: lotID,
		UpdatedAt:    pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to deactivate parking spaces", err)
	}
	return n, nil
}

func (r *ParkingSpaceRepository) ActiveNumberExists(ctx context.Context, lotID uuid.UUID, number string) (bool, error) {
	exists, err := r.queries.ActiveSpaceNumberExists(ctx, r.db, sqlc.ActiveSpaceNumberExistsParams{
		ParkingLotID: lotID,
		SpaceNumber:  number,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check space number", err)
	}
	return exists, nil
}
