package repository

import (
	"context"

	"logipark/internal/domain/fleet"
	"logipark/internal/infra"
	"logipark/internal/infra/repository/converter"
	sqlc "logipark/internal/infra/sqlc/generated"
)

type FleetWriteQueries interface {
	CreateVehicle(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVehicleParams) error
	CreateDriver(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDriverParams) error
}

type FleetRepository struct {
	queries FleetWriteQueries
	db      sqlc.DBTX
}

func NewFleetRepository(queries FleetWriteQueries, db sqlc.DBTX) *FleetRepository {
	return &FleetRepository{
		queries: queries,
		db:      db,
	}
}

func (r *FleetRepository) CreateVehicle(ctx context.Context, v *fleet.Vehicle) error {
	if err := r.queries.CreateVehicle(ctx, r.db, converter.VehicleToCreateParams(v)); err != nil {
		return infra.WrapRepoErr("failed to create vehicle", err)
	}
	return nil
}

func (r *FleetRepository) CreateDriver(ctx context.Context, d *fleet.Driver) error {
	if err := r.queries.CreateDriver(ctx, r.db, converter.DriverToCreateParams(d)); err != nil {
		return infra.WrapRepoErr("failed to create driver", err)
	}
	return nil
}
