package queries

import (
	"context"

	"github.com/google/uuid"

	"logipark/internal/infra"
	"logipark/internal/pkg/errs"
)

var ErrParkingLotNotFound = errs.NewKind("parking lot not found", errs.ErrNotFound)

type ParkingReadStore interface {
	FindLotByID(ctx context.Context, id uuid.UUID) (*ParkingLotView, error)
	ListActiveSpaces(ctx context.Context, lotID uuid.UUID, onlyAvailable bool) ([]*ParkingSpaceView, error)
}

type ParkingQueries interface {
	GetLot(ctx context.Context, id uuid.UUID) (*ParkingLotView, error)
	ListSpaces(ctx context.Context, lotID uuid.UUID, onlyAvailable bool) ([]*ParkingSpaceView, error)
}

type parkingQueriesImpl struct {
	store ParkingReadStore
}

func NewParkingQueries(store ParkingReadStore) ParkingQueries {
	return &parkingQueriesImpl{store: store}
}

func (q *parkingQueriesImpl) GetLot(ctx context.Context, id uuid.UUID) (*ParkingLotView, error) {
	lot, err := q.store.FindLotByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(ErrParkingLotNotFound, "%s", id)
		}
		return nil, err
	}
	return lot, nil
}

func (q *parkingQueriesImpl) ListSpaces(ctx context.Context, lotID uuid.UUID, onlyAvailable bool) ([]*ParkingSpaceView, error) {
	if _, err := q.GetLot(ctx, lotID); err != nil {
		return nil, err
	}
	return q.store.ListActiveSpaces(ctx, lotID, onlyAvailable)
}
