package request

import (
	"github.com/google/uuid"

	"logipark/internal/domain/fleet"
	"logipark/internal/domain/user"
	"logipark/internal/usecase/commands"
)

type RegisterVehicleRequest struct {
	CompanyID    *uuid.UUID `json:"company_id,omitempty"`
	LicensePlate string     `json:"license_plate" binding:"required,max=16"`
	VehicleType  string     `json:"vehicle_type" binding:"required"`
	DriverID     *uuid.UUID `json:"driver_id,omitempty"`
}

func (r *RegisterVehicleRequest) ToInput(caller user.Caller) (commands.RegisterVehicleInput, error) {
	companyID, err := ownerCompany(r.CompanyID, caller)
	if err != nil {
		return commands.RegisterVehicleInput{}, err
	}
	vehicleType, err := fleet.ParseVehicleType(r.VehicleType)
	if err != nil {
		return commands.RegisterVehicleInput{}, err
	}
	return commands.RegisterVehicleInput{
		CompanyID:    companyID,
		LicensePlate: r.LicensePlate,
		VehicleType:  vehicleType,
		DriverID:     r.DriverID,
	}, nil
}

type RegisterDriverRequest struct {
	CompanyID     *uuid.UUID `json:"company_id,omitempty"`
	Name          string     `json:"name" binding:"required,max=255"`
	LicenseNumber string     `json:"license_number" binding:"required,max=20"`
	Phone         string     `json:"phone" binding:"max=20"`
}

func (r *RegisterDriverRequest) ToInput(caller user.Caller) (commands.RegisterDriverInput, error) {
	companyID, err := ownerCompany(r.CompanyID, caller)
	if err != nil {
		return commands.RegisterDriverInput{}, err
	}
	return commands.RegisterDriverInput{
		CompanyID:     companyID,
		Name:          r.Name,
		LicenseNumber: r.LicenseNumber,
		Phone:         r.Phone,
	}, nil
}

func ownerCompany(requested *uuid.UUID, caller user.Caller) (uuid.UUID, error) {
	if requested != nil {
		return *requested, nil
	}
	if caller.CompanyID != nil {
		return *caller.CompanyID, nil
	}
	return uuid.Nil, ErrCompanyRequired
}
