package commands

import (
	"context"

	"github.com/google/uuid"

	"logipark/internal/domain/fleet"
	"logipark/internal/domain/user"
	"logipark/internal/infra"
	"logipark/internal/pkg/clock"
	"logipark/internal/pkg/errs"
	"logipark/internal/usecase/shared"
)

type RegisterVehicleInput struct {
	CompanyID    uuid.UUID
	LicensePlate string
	VehicleType  fleet.VehicleType
	DriverID     *uuid.UUID
}

type RegisterDriverInput struct {
	CompanyID     uuid.UUID
	Name          string
	LicenseNumber string
	Phone         string
}

type FleetCommands interface {
	RegisterVehicle(ctx context.Context, caller user.Caller, in RegisterVehicleInput) (uuid.UUID, error)
	RegisterDriver(ctx context.Context, caller user.Caller, in RegisterDriverInput) (uuid.UUID, error)
}

type fleetCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFleetCommands(uow shared.UnitOfWork, clk clock.Clock) FleetCommands {
	return &fleetCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

func authorizeFleetOwner(caller user.Caller, companyID uuid.UUID) error {
	if caller.IsAdmin() || caller.IsCompanyUser(user.RoleTransportadora, companyID) {
		return nil
	}
	return errs.Wrapf(ErrRoleNotAllowed, "%s cannot manage the fleet of %s", caller.Role, companyID)
}

func (c *fleetCommandsImpl) RegisterVehicle(ctx context.Context, caller user.Caller, in RegisterVehicleInput) (uuid.UUID, error) {
	if err := authorizeFleetOwner(caller, in.CompanyID); err != nil {
		return uuid.Nil, err
	}
	plate, err := fleet.NewLicensePlate(in.LicensePlate)
	if err != nil {
		return uuid.Nil, err
	}
	vehicleType, err := fleet.ParseVehicleType(string(in.VehicleType))
	if err != nil {
		return uuid.Nil, err
	}

	var vehicleID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if in.DriverID != nil {
			if _, err := loadBookableDriver(ctx, tx, *in.DriverID, in.CompanyID); err != nil {
				return err
			}
		}

		v := fleet.NewVehicle(in.CompanyID, plate, vehicleType, in.DriverID, c.clock.Now())
		if err := tx.Fleet().CreateVehicle(ctx, v); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Wrapf(ErrPlateTaken, "%s", plate)
			}
			return err
		}
		vehicleID = v.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return vehicleID, nil
}

func (c *fleetCommandsImpl) RegisterDriver(ctx context.Context, caller user.Caller, in RegisterDriverInput) (uuid.UUID, error) {
	if err := authorizeFleetOwner(caller, in.CompanyID); err != nil {
		return uuid.Nil, err
	}
	d, err := fleet.NewDriver(in.CompanyID, in.Name, in.LicenseNumber, in.Phone, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Fleet().CreateDriver(ctx, d); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Wrapf(ErrLicenseTaken, "%s", d.LicenseNumber())
			}
			return err
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return d.ID(), nil
}
