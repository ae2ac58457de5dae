package readstore

import (
	"context"

	"github.com/google/uuid"

	"logipark/internal/infra"
	sqlc "logipark/internal/infra/sqlc/generated"
	"logipark/internal/pkg/pgconv"
	"logipark/internal/usecase/queries"
)

type ParkingViewQueries interface {
	FindParkingLotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ParkingLots, error)
	ListActiveParkingSpaces(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveParkingSpacesParams) ([]sqlc.ParkingSpaces, error)
}

type ParkingReadStore struct {
	queries ParkingViewQueries
	db      sqlc.DBTX
}

func NewParkingReadStore(queries ParkingViewQueries, db sqlc.DBTX) *ParkingReadStore {
	return &ParkingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ParkingReadStore) FindLotByID(ctx context.Context, id uuid.UUID) (*queries.ParkingLotView, error) {
	row, err := r.queries.FindParkingLotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("parking lot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find parking lot", err)
	}

	price, err := formatMoney(row.PricePerHour)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt parking lot price", err, infra.KindDBFailure)
	}

	return &queries.ParkingLotView{
		ID:              row.ID,
		CompanyID:       row.CompanyID,
		Name:            row.Name,
		PricePerHour:    price,
		TotalSpaces:     int(row.TotalSpaces),
		AvailableSpaces: int(row.AvailableSpaces),
		IsActive:        row.IsActive,
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// ListActiveSpaces orders by space number.
func (r *ParkingReadStore) ListActiveSpaces(ctx context.Context, lotID uuid.UUID, onlyAvailable bool) ([]*queries.ParkingSpaceView, error) {
	rows, err := r.queries.ListActiveParkingSpaces(ctx, r.db, sqlc.ListActiveParkingSpacesParams{
		ParkingLotID:  lotID,
		OnlyAvailable: onlyAvailable,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list parking spaces", err)
	}

	result := make([]*queries.ParkingSpaceView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ParkingSpaceView{
			ID:           row.ID,
			ParkingLotID: row.ParkingLotID,
			SpaceNumber:  row.SpaceNumber,
			SpaceType:    row.SpaceType,
			IsAvailable:  row.IsAvailable,
			UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}
