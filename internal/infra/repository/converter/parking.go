package converter

import (
	"logipark/internal/domain/company"
	"logipark/internal/domain/fleet"
	"logipark/internal/domain/parking"
	"logipark/internal/domain/reservation"
	sqlc "logipark/internal/infra/sqlc/generated"
	"logipark/internal/pkg/pgconv"
)

func LotFromRow(row sqlc.ParkingLots) (*parking.Lot, error) {
	cents, err := pgconv.CentsFromNumeric(row.PricePerHour)
	if err != nil {
		return nil, err
	}
	price, err := reservation.NewMoney(cents)
	if err != nil {
		return nil, err
	}
	return parking.ReconstructLot(
		row.ID,
		row.CompanyID,
		row.Name,
		price,
		int(row.TotalSpaces),
		int(row.AvailableSpaces),
		row.IsActive,
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func SpaceFromRow(row sqlc.ParkingSpaces) *parking.Space {
	return parking.ReconstructSpace(
		row.ID,
		row.ParkingLotID,
		row.SpaceNumber,
		parking.SpaceType(row.SpaceType),
		row.IsAvailable,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func SpaceToCreateParams(s *parking.Space) sqlc.CreateParkingSpaceParams {
	return sqlc.CreateParkingSpaceParams{
		ID:           s.ID(),
		ParkingLotID: s.LotID(),
		SpaceNumber:  s.Number(),
		SpaceType:    string(s.Type()),
		IsAvailable:  s.IsAvailable(),
		IsActive:     s.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(s.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func CompanyFromRow(row sqlc.Companies) *company.Company {
	return company.ReconstructCompany(row.ID, row.Name, company.Type(row.CompanyType), row.IsActive)
}

func VehicleFromRow(row sqlc.Vehicles) *fleet.Vehicle {
	return fleet.ReconstructVehicle(
		row.ID,
		row.CompanyID,
		pgconv.UUIDPtrFromPgtype(row.DriverID),
		fleet.LicensePlate(row.LicensePlate),
		fleet.VehicleType(row.VehicleType),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func VehicleToCreateParams(v *fleet.Vehicle) sqlc.CreateVehicleParams {
	return sqlc.CreateVehicleParams{
		ID:           v.ID(),
		CompanyID:    v.CompanyID(),
		DriverID:     pgconv.UUIDPtrToPgtype(v.DriverID()),
		LicensePlate: v.Plate().String(),
		VehicleType:  string(v.Type()),
		IsActive:     v.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(v.CreatedAt()),
	}
}

func DriverFromRow(row sqlc.Drivers) *fleet.Driver {
	return fleet.ReconstructDriver(
		row.ID,
		row.CompanyID,
		row.Name,
		row.LicenseNumber,
		row.Phone,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func DriverToCreateParams(d *fleet.Driver) sqlc.CreateDriverParams {
	return sqlc.CreateDriverParams{
		ID:            d.ID(),
		CompanyID:     d.CompanyID(),
		Name:          d.Name(),
		LicenseNumber: d.LicenseNumber(),
		Phone:         d.Phone(),
		IsActive:      d.IsActive(),
		CreatedAt:     pgconv.TimeToPgtype(d.CreatedAt()),
	}
}
