package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"logipark/internal/domain/fleet"
	"logipark/internal/domain/parking"
	"logipark/internal/domain/reservation"
	"logipark/internal/domain/user"
	"logipark/internal/pkg/clock"
	"logipark/internal/pkg/config"
	"logipark/internal/pkg/errs"
	"logipark/internal/usecase/shared"
)

type OccupancyCommands interface {
	// OccupySpace parks a walk-up vehicle, identified by id or license plate,
	// and returns the provisional reservation id.
	OccupySpace(ctx context.Context, caller user.Caller, spaceID uuid.UUID, vehicleRef string) (uuid.UUID, error)
	// FreeSpace completes and settles the stay on the space.
	FreeSpace(ctx context.Context, caller user.Caller, spaceID uuid.UUID) (uuid.UUID, error)
}

type occupancyCommandsImpl struct {
	uow      shared.UnitOfWork
	ledger   *SpaceLedger
	services *reservation.Services
	clock    clock.Clock
	cfg      config.BookingConfig
}

func NewOccupancyCommands(
	uow shared.UnitOfWork,
	ledger *SpaceLedger,
	services *reservation.Services,
	cfg config.BookingConfig,
) OccupancyCommands {
	return &occupancyCommandsImpl{
		uow:      uow,
		ledger:   ledger,
		services: services,
		clock:    services.Clock,
		cfg:      cfg,
	}
}

func (c *occupancyCommandsImpl) OccupySpace(ctx context.Context, caller user.Caller, spaceID uuid.UUID, vehicleRef string) (uuid.UUID, error) {
	var reservationID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		space, lot, err := c.operatedSpace(ctx, tx, caller, spaceID)
		if err != nil {
			return err
		}

		if current, err := tx.Reservations().FindInProgressBySpace(ctx, spaceID); err == nil && current != nil {
			return errs.Wrapf(ErrSpaceOccupied, "space %s holds reservation %s", space.Number(), current.ID())
		} else if err != nil && !isNotFound(err) {
			return err
		}
		if !space.IsAvailable() {
			return errs.Wrapf(ErrSpaceOccupied, "space %s", space.Number())
		}

		vehicle, err := resolveVehicle(ctx, tx, vehicleRef)
		if err != nil {
			return err
		}
		driverID, err := assignedDriver(ctx, tx, vehicle)
		if err != nil {
			return err
		}

		if parked, err := tx.Reservations().FindInProgressByVehicle(ctx, vehicle.ID()); err == nil && parked != nil {
			return errs.Wrapf(ErrVehicleAlreadyParked, "vehicle %s holds reservation %s", vehicle.Plate(), parked.ID())
		} else if err != nil && !isNotFound(err) {
			return err
		}

		res, err := reservation.NewWalkUp(c.services, reservation.WalkUpParams{
			Lot:       lot.Spec(),
			CompanyID: vehicle.CompanyID(),
			VehicleID: vehicle.ID(),
			DriverID:  driverID,
			SpaceID:   spaceID,
			Horizon:   c.cfg.OccupancyHorizon,
		})
		if err != nil {
			return err
		}
		if err := checkConflicts(ctx, tx, res.Booking()); err != nil {
			return err
		}

		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}
		if err := c.ledger.SetAvailability(ctx, tx, spaceID, false); err != nil {
			return err
		}
		if err := enqueueEvent(ctx, tx, topicReservationCreated, res, "", c.clock.Now()); err != nil {
			return err
		}

		reservationID = res.ID()
		slog.Info("space occupied",
			"space_id", spaceID,
			"vehicle_id", vehicle.ID(),
			"reservation_id", res.ID(),
			"caller_id", caller.ID)
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return reservationID, nil
}

func (c *occupancyCommandsImpl) FreeSpace(ctx context.Context, caller user.Caller, spaceID uuid.UUID) (uuid.UUID, error) {
	var reservationID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		space, lot, err := c.operatedSpace(ctx, tx, caller, spaceID)
		if err != nil {
			return err
		}

		res, err := tx.Reservations().FindInProgressBySpace(ctx, spaceID)
		if err != nil {
			return translateNotFound(err, ErrNoActiveOccupancy, space.Number())
		}

		now := c.clock.Now()
		from := res.Status()
		if err := res.TransitionTo(reservation.StatusCompleted, reservation.ActorOperator, now); err != nil {
			return err
		}
		if err := res.Settle(lot.Spec(), now); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return err
		}
		if err := c.ledger.SetAvailability(ctx, tx, spaceID, true); err != nil {
			return err
		}
		if err := enqueueEvent(ctx, tx, topicReservationStatusChanged, res, from, now); err != nil {
			return err
		}

		reservationID = res.ID()
		slog.Info("space freed",
			"space_id", spaceID,
			"reservation_id", res.ID(),
			"total_cost", res.TotalCost().String())
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return reservationID, nil
}

// operatedSpace loads an active space whose lot is run by the caller's company.
func (c *occupancyCommandsImpl) operatedSpace(ctx context.Context, tx shared.Tx, caller user.Caller, spaceID uuid.UUID) (*parking.Space, *parking.Lot, error) {
	if caller.Role != user.RoleEstacionamento {
		return nil, nil, errs.Wrapf(ErrRoleNotAllowed, "%s cannot operate spaces", caller.Role)
	}
	space, err := loadSpace(ctx, tx, spaceID)
	if err != nil {
		return nil, nil, err
	}
	lot, err := loadActiveLot(ctx, tx, space.LotID())
	if err != nil {
		return nil, nil, err
	}
	if caller.CompanyID == nil || !lot.OperatedBy(*caller.CompanyID) {
		return nil, nil, errs.Wrapf(ErrLotAccessDenied, "lot %s", lot.ID())
	}
	return space, lot, nil
}

// resolveVehicle accepts a vehicle id or a license plate in any formatting.
func resolveVehicle(ctx context.Context, tx shared.Tx, ref string) (*fleet.Vehicle, error) {
	var (
		v   *fleet.Vehicle
		err error
	)
	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		v, err = tx.Reads().VehicleByID(ctx, id)
	} else {
		plate, plateErr := fleet.NewLicensePlate(ref)
		if plateErr != nil {
			return nil, errs.Wrapf(ErrVehicleNotFound, "%q", ref)
		}
		v, err = tx.Reads().VehicleByPlate(ctx, plate)
	}
	if err != nil {
		return nil, translateNotFound(err, ErrVehicleNotFound, ref)
	}
	if !v.IsActive() {
		return nil, errs.Wrapf(ErrVehicleNotFound, "%s is inactive", ref)
	}
	return v, nil
}

func assignedDriver(ctx context.Context, tx shared.Tx, v *fleet.Vehicle) (uuid.UUID, error) {
	if v.DriverID() == nil {
		return uuid.Nil, errs.Wrapf(ErrVehicleWithoutDriver, "vehicle %s", v.Plate())
	}
	d, err := tx.Reads().DriverByID(ctx, *v.DriverID())
	if err != nil {
		if isNotFound(err) {
			return uuid.Nil, errs.Wrapf(ErrVehicleWithoutDriver, "vehicle %s", v.Plate())
		}
		return uuid.Nil, err
	}
	if !d.IsActive() {
		return uuid.Nil, errs.Wrapf(ErrVehicleWithoutDriver, "driver of vehicle %s is inactive", v.Plate())
	}
	return d.ID(), nil
}
