package repository

import (
	"context"

	"github.com/google/uuid"

	"logipark/internal/domain/parking"
	"logipark/internal/infra"
	"logipark/internal/infra/repository/converter"
	sqlc "logipark/internal/infra/sqlc/generated"
)

type ParkingLotWriteQueries interface {
	FindParkingLotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ParkingLots, error)
	LockParkingLotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ParkingLots, error)
	AdjustParkingLotCounters(ctx context.Context, db sqlc.DBTX, arg sqlc.AdjustParkingLotCountersParams) (int64, error)
	SetParkingLotCounters(ctx context.Context, db sqlc.DBTX, arg sqlc.SetParkingLotCountersParams) (int64, error)
	CountLiveParkingSpaces(ctx context.Context, db sqlc.DBTX, parkingLotID uuid.UUID) (sqlc.CountLiveParkingSpacesRow, error)
}

type ParkingLotRepository struct {
	queries ParkingLotWriteQueries
	db      sqlc.DBTX
}

func NewParkingLotRepository(queries ParkingLotWriteQueries, db sqlc.DBTX) *ParkingLotRepository {
	return &ParkingLotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ParkingLotRepository) FindByID(ctx context.Context, id uuid.UUID) (*parking.Lot, error) {
	row, err := r.queries.FindParkingLotByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapFindErr("parking lot", err)
	}
	return toLot(row)
}

// LockByID holds the lot row until the transaction ends, so ledger
// operations on one lot run one at a time.
func (r *ParkingLotRepository) LockByID(ctx context.Context, id uuid.UUID) (*parking.Lot, error) {
	row, err := r.queries.LockParkingLotByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapFindErr("parking lot", err)
	}
	return toLot(row)
}

func (r *ParkingLotRepository) AdjustCounters(ctx context.Context, lotID uuid.UUID, deltaTotal, deltaAvailable int) error {
	n, err := r.queries.AdjustParkingLotCounters(ctx, r.db, sqlc.AdjustParkingLotCountersParams{
		ID:             lotID,
		DeltaTotal:     int32(deltaTotal),     // #nosec G115 -- deltas are ±1 or a space count
		DeltaAvailable: int32(deltaAvailable), // #nosec G115
	})
	if err != nil {
		return infra.WrapRepoErr("failed to adjust parking lot counters", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("parking lot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ParkingLotRepository) SetCounters(ctx context.Context, lotID uuid.UUID, total, available int) error {
	n, err := r.queries.SetParkingLotCounters(ctx, r.db, sqlc.SetParkingLotCountersParams{
		ID:              lotID,
		TotalSpaces:     int32(total),     // #nosec G115 -- bounded by the number of space rows
		AvailableSpaces: int32(available), // #nosec G115
	})
	if err != nil {
		return infra.WrapRepoErr("failed to set parking lot counters", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("parking lot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ParkingLotRepository) CountLiveSpaces(ctx context.Context, lotID uuid.UUID) (int, int, error) {
	row, err := r.queries.CountLiveParkingSpaces(ctx, r.db, lotID)
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to count live parking spaces", err)
	}
	return int(row.Total), int(row.Available), nil
}

func toLot(row sqlc.ParkingLots) (*parking.Lot, error) {
	lot, err := converter.LotFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt parking lot row", err, infra.KindDBFailure)
	}
	return lot, nil
}
