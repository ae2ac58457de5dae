package readstore

import (
	"context"

	"github.com/google/uuid"

	"logipark/internal/domain/company"
	"logipark/internal/domain/fleet"
	"logipark/internal/infra"
	"logipark/internal/infra/repository/converter"
	sqlc "logipark/internal/infra/sqlc/generated"
	"logipark/internal/pkg/pgconv"
)

type CommandReadQueries interface {
	FindCompanyByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Companies, error)
	FindVehicleByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vehicles, error)
	FindVehicleByPlate(ctx context.Context, db sqlc.DBTX, licensePlate string) (sqlc.Vehicles, error)
	FindDriverByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Drivers, error)
	IdempotencyReadQueries
}

// CommandReadStore serves the lookups a command validates against. It is
// bound to the command's transaction so reads and writes see one snapshot.
type CommandReadStore struct {
	queries CommandReadQueries
	db      sqlc.DBTX
}

func NewCommandReadStore(queries CommandReadQueries, db sqlc.DBTX) *CommandReadStore {
	return &CommandReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CommandReadStore) CompanyByID(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	row, err := r.queries.FindCompanyByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapLookupErr("company", err)
	}
	return converter.CompanyFromRow(row), nil
}

func (r *CommandReadStore) VehicleByID(ctx context.Context, id uuid.UUID) (*fleet.Vehicle, error) {
	row, err := r.queries.FindVehicleByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapLookupErr("vehicle", err)
	}
	return converter.VehicleFromRow(row), nil
}

func (r *CommandReadStore) VehicleByPlate(ctx context.Context, plate fleet.LicensePlate) (*fleet.Vehicle, error) {
	row, err := r.queries.FindVehicleByPlate(ctx, r.db, plate.String())
	if err != nil {
		return nil, wrapLookupErr("vehicle", err)
	}
	return converter.VehicleFromRow(row), nil
}

func (r *CommandReadStore) DriverByID(ctx context.Context, id uuid.UUID) (*fleet.Driver, error) {
	row, err := r.queries.FindDriverByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapLookupErr("driver", err)
	}
	return converter.DriverFromRow(row), nil
}

func wrapLookupErr(what string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(what+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to find "+what, err)
}
