package commands

import (
	"context"

	"github.com/google/uuid"

	"logipark/internal/domain/fleet"
	"logipark/internal/domain/parking"
	"logipark/internal/domain/reservation"
	"logipark/internal/domain/user"
	"logipark/internal/infra"
	"logipark/internal/pkg/errs"
	"logipark/internal/usecase/shared"
)

// actorFor resolves how the caller relates to res for the transition table.
func actorFor(caller user.Caller, res *reservation.Reservation, lot *parking.Lot) (reservation.Actor, error) {
	switch {
	case caller.IsAdmin():
		return reservation.ActorAdmin, nil
	case caller.IsCompanyUser(user.RoleEstacionamento, lot.CompanyID()):
		return reservation.ActorOperator, nil
	case caller.IsCompanyUser(user.RoleTransportadora, res.CompanyID()):
		return reservation.ActorOwner, nil
	default:
		return "", errs.Wrapf(ErrReservationAccessDenied, "reservation %s", res.ID())
	}
}

func authorizeLotOperator(caller user.Caller, lot *parking.Lot) error {
	if caller.IsAdmin() || caller.IsCompanyUser(user.RoleEstacionamento, lot.CompanyID()) {
		return nil
	}
	return errs.Wrapf(ErrLotAccessDenied, "lot %s", lot.ID())
}

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}

// translateNotFound swaps a repository NOT_FOUND for the usecase sentinel.
func translateNotFound(err, sentinel error, id any) error {
	if isNotFound(err) {
		return errs.Wrapf(sentinel, "%v", id)
	}
	return err
}

func loadActiveLot(ctx context.Context, tx shared.Tx, lotID uuid.UUID) (*parking.Lot, error) {
	lot, err := tx.Lots().FindByID(ctx, lotID)
	if err != nil {
		return nil, translateNotFound(err, ErrLotNotFound, lotID)
	}
	if !lot.IsActive() {
		return nil, errs.Wrapf(ErrLotNotFound, "%s is inactive", lotID)
	}
	return lot, nil
}

func loadSpace(ctx context.Context, tx shared.Tx, spaceID uuid.UUID) (*parking.Space, error) {
	space, err := tx.Spaces().FindByID(ctx, spaceID)
	if err != nil {
		return nil, translateNotFound(err, ErrSpaceNotFound, spaceID)
	}
	if !space.IsActive() {
		return nil, errs.Wrapf(ErrSpaceNotFound, "%s is inactive", spaceID)
	}
	return space, nil
}

// loadBookableSpace requires an active, currently available space inside lotID.
func loadBookableSpace(ctx context.Context, tx shared.Tx, spaceID, lotID uuid.UUID) (*parking.Space, error) {
	space, err := loadSpace(ctx, tx, spaceID)
	if err != nil {
		return nil, err
	}
	if space.LotID() != lotID {
		return nil, errs.Wrapf(ErrSpaceNotInLot, "space %s, lot %s", spaceID, lotID)
	}
	if !space.IsAvailable() {
		return nil, errs.Wrapf(ErrSpaceUnavailable, "space %s", space.Number())
	}
	return space, nil
}

func loadBookableVehicle(ctx context.Context, tx shared.Tx, vehicleID, companyID uuid.UUID) (*fleet.Vehicle, error) {
	v, err := tx.Reads().VehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, translateNotFound(err, ErrVehicleNotFound, vehicleID)
	}
	if !v.IsActive() {
		return nil, errs.Wrapf(ErrVehicleNotFound, "%s is inactive", vehicleID)
	}
	if !v.BelongsTo(companyID) {
		return nil, errs.Wrapf(ErrVehicleNotOwned, "vehicle %s", vehicleID)
	}
	return v, nil
}

func loadBookableDriver(ctx context.Context, tx shared.Tx, driverID, companyID uuid.UUID) (*fleet.Driver, error) {
	d, err := tx.Reads().DriverByID(ctx, driverID)
	if err != nil {
		return nil, translateNotFound(err, ErrDriverNotFound, driverID)
	}
	if !d.IsActive() {
		return nil, errs.Wrapf(ErrDriverNotFound, "%s is inactive", driverID)
	}
	if !d.BelongsTo(companyID) {
		return nil, errs.Wrapf(ErrDriverNotOwned, "driver %s", driverID)
	}
	return d, nil
}

// checkConflicts runs the overlap predicate against every active reservation
// sharing the booking's vehicle, driver or space.
func checkConflicts(ctx context.Context, tx shared.Tx, b reservation.Booking) error {
	existing, err := tx.Reservations().ListActiveInScope(ctx, shared.ConflictScope{
		VehicleID: b.VehicleID,
		DriverID:  b.DriverID,
		SpaceID:   b.SpaceID,
	})
	if err != nil {
		return err
	}
	return reservation.FindConflict(b, existing)
}
