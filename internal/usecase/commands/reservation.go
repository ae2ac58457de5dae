package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"logipark/internal/domain/parking"
	"logipark/internal/domain/reservation"
	"logipark/internal/domain/user"
	"logipark/internal/pkg/clock"
	"logipark/internal/pkg/config"
	"logipark/internal/pkg/errs"
	"logipark/internal/pkg/patch"
	"logipark/internal/usecase/shared"
)

const createReservationEndpoint = "POST /api/reservations"

type CreateReservationInput struct {
	CompanyID       uuid.UUID  `json:"companyId"`
	VehicleID       uuid.UUID  `json:"vehicleId"`
	DriverID        uuid.UUID  `json:"driverId"`
	ParkingLotID    uuid.UUID  `json:"parkingLotId"`
	ParkingSpaceID  *uuid.UUID `json:"parkingSpaceId,omitempty"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         time.Time  `json:"endTime"`
	SpecialRequests *string    `json:"specialRequests,omitempty"`
}

type CreateReservationResult struct {
	ReservationID uuid.UUID
	IsReplayed    bool
}

// ReservationPatch carries only the fields being changed.
type ReservationPatch struct {
	StartTime       *time.Time
	EndTime         *time.Time
	VehicleID       *uuid.UUID
	DriverID        *uuid.UUID
	ParkingSpaceID  *uuid.UUID
	SpecialRequests *string
	Status          *reservation.Status
	ActualArrival   *time.Time
	ActualDeparture *time.Time
	PaymentStatus   *reservation.PaymentStatus
}

func (p ReservationPatch) touchesSchedule() bool {
	return p.StartTime != nil || p.EndTime != nil
}

func (p ReservationPatch) touchesAssignment() bool {
	return p.VehicleID != nil || p.DriverID != nil || p.ParkingSpaceID != nil
}

func (p ReservationPatch) touchesOperatorFields() bool {
	return p.ActualArrival != nil || p.ActualDeparture != nil
}

type ReservationCommands interface {
	Create(ctx context.Context, caller user.Caller, in CreateReservationInput, idempotencyKey *uuid.UUID) (*CreateReservationResult, error)
	Update(ctx context.Context, caller user.Caller, id uuid.UUID, p ReservationPatch) error
	Cancel(ctx context.Context, caller user.Caller, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	ledger   *SpaceLedger
	services *reservation.Services
	clock    clock.Clock
	cfg      config.BookingConfig
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	ledger *SpaceLedger,
	services *reservation.Services,
	cfg config.BookingConfig,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:      uow,
		ledger:   ledger,
		services: services,
		clock:    services.Clock,
		cfg:      cfg,
	}
}

func (c *reservationCommandsImpl) Create(
	ctx context.Context,
	caller user.Caller,
	in CreateReservationInput,
	idempotencyKey *uuid.UUID,
) (*CreateReservationResult, error) {
	var result *CreateReservationResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil

		if idempotencyKey != nil {
			requestHash, err := hashRequest(in)
			if err != nil {
				return err
			}
			replayedID, err := c.claimIdempotencyKey(ctx, tx, *idempotencyKey, caller.ID, requestHash)
			if err != nil {
				return err
			}
			if replayedID != nil {
				result = &CreateReservationResult{ReservationID: *replayedID, IsReplayed: true}
				return nil
			}
		}

		res, err := c.book(ctx, tx, caller, in)
		if err != nil {
			return err
		}

		if idempotencyKey != nil {
			if err := tx.Idempotency().MarkCompleted(ctx, *idempotencyKey, caller.ID, res.ID()); err != nil {
				return err
			}
		}

		result = &CreateReservationResult{ReservationID: res.ID()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *reservationCommandsImpl) book(ctx context.Context, tx shared.Tx, caller user.Caller, in CreateReservationInput) (*reservation.Reservation, error) {
	if !caller.IsAdmin() && !caller.IsCompanyUser(user.RoleTransportadora, in.CompanyID) {
		return nil, errs.Wrapf(ErrRoleNotAllowed, "%s cannot book for company %s", caller.Role, in.CompanyID)
	}

	slot, err := reservation.NewTimeSlot(in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	comp, err := tx.Reads().CompanyByID(ctx, in.CompanyID)
	if err != nil {
		return nil, translateNotFound(err, ErrCompanyNotFound, in.CompanyID)
	}
	if !comp.IsActive() {
		return nil, errs.Wrapf(ErrCompanyNotFound, "%s is inactive", in.CompanyID)
	}
	if !comp.CanBook() {
		return nil, errs.Wrapf(ErrCompanyCannotBook, "%s is %s", comp.Name(), comp.Type())
	}

	lot, err := loadActiveLot(ctx, tx, in.ParkingLotID)
	if err != nil {
		return nil, err
	}
	if _, err := loadBookableVehicle(ctx, tx, in.VehicleID, in.CompanyID); err != nil {
		return nil, err
	}
	if _, err := loadBookableDriver(ctx, tx, in.DriverID, in.CompanyID); err != nil {
		return nil, err
	}
	if in.ParkingSpaceID != nil {
		if _, err := loadBookableSpace(ctx, tx, *in.ParkingSpaceID, lot.ID()); err != nil {
			return nil, err
		}
	}

	res := reservation.NewReservation(c.services, reservation.NewReservationParams{
		Lot:             lot.Spec(),
		CompanyID:       in.CompanyID,
		VehicleID:       in.VehicleID,
		DriverID:        in.DriverID,
		SpaceID:         in.ParkingSpaceID,
		Slot:            slot,
		SpecialRequests: reservation.NewSpecialRequests(patch.Coalesce(in.SpecialRequests, "")),
	})

	if err := checkConflicts(ctx, tx, res.Booking()); err != nil {
		return nil, err
	}
	if err := tx.Reservations().Create(ctx, res); err != nil {
		return nil, err
	}
	if err := enqueueEvent(ctx, tx, topicReservationCreated, res, "", c.clock.Now()); err != nil {
		return nil, err
	}
	return res, nil
}

// claimIdempotencyKey returns the original reservation id on a replay.
func (c *reservationCommandsImpl) claimIdempotencyKey(ctx context.Context, tx shared.Tx, key, userID uuid.UUID, requestHash string) (*uuid.UUID, error) {
	expiresAt := c.clock.Now().Add(c.cfg.IdempotencyTTL)
	if err := tx.Idempotency().TryInsert(ctx, key, userID, createReservationEndpoint, requestHash, expiresAt); err != nil {
		return nil, err
	}

	rec, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, err
	}
	if rec.RequestHash != requestHash {
		return nil, errs.Wrapf(ErrIdempotencyKeyReused, "key %s", key)
	}
	if rec.Status == shared.IdempotencyStatusCompleted {
		if rec.ResultReservationID == nil {
			return nil, errs.Wrapf(ErrIdempotencyCorrupted, "key %s", key)
		}
		return rec.ResultReservationID, nil
	}
	return nil, nil
}

func (c *reservationCommandsImpl) Update(ctx context.Context, caller user.Caller, id uuid.UUID, p ReservationPatch) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, lot, actor, err := c.loadForChange(ctx, tx, caller, id)
		if err != nil {
			return err
		}
		if res.Status().IsTerminal() {
			return errs.Wrapf(reservation.ErrTerminal, "cannot modify a reservation in status %s", res.Status())
		}
		return c.applyPatch(ctx, tx, actor, res, lot, p)
	})
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, caller user.Caller, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, lot, actor, err := c.loadForChange(ctx, tx, caller, id)
		if err != nil {
			return err
		}
		if res.Status().IsTerminal() {
			return errs.Wrapf(ErrCannotCancel, "cannot cancel a reservation in status %s", res.Status())
		}
		cancelled := reservation.StatusCancelled
		return c.applyPatch(ctx, tx, actor, res, lot, ReservationPatch{Status: &cancelled})
	})
}

func (c *reservationCommandsImpl) loadForChange(
	ctx context.Context,
	tx shared.Tx,
	caller user.Caller,
	id uuid.UUID,
) (*reservation.Reservation, *parking.Lot, reservation.Actor, error) {
	res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, nil, "", translateNotFound(err, ErrReservationNotFound, id)
	}
	lot, err := tx.Lots().FindByID(ctx, res.ParkingLotID())
	if err != nil {
		return nil, nil, "", translateNotFound(err, ErrLotNotFound, res.ParkingLotID())
	}
	actor, err := actorFor(caller, res, lot)
	if err != nil {
		return nil, nil, "", err
	}
	return res, lot, actor, nil
}

func authorizePatch(actor reservation.Actor, res *reservation.Reservation, p ReservationPatch) error {
	switch actor {
	case reservation.ActorAdmin:
		return nil
	case reservation.ActorOwner:
		if res.Status() != reservation.StatusPending {
			return errs.Wrapf(ErrOwnerModifyNonPending, "reservation is %s", res.Status())
		}
		if p.touchesOperatorFields() || p.PaymentStatus != nil {
			return errs.Wrap(ErrFieldNotPatchable, "owner may change schedule, assignment and special requests only")
		}
	case reservation.ActorOperator:
		if p.touchesSchedule() || p.touchesAssignment() || p.SpecialRequests != nil || p.PaymentStatus != nil {
			return errs.Wrap(ErrFieldNotPatchable, "operator may change status, actual arrival and actual departure only")
		}
	}
	return nil
}

func (c *reservationCommandsImpl) applyPatch(
	ctx context.Context,
	tx shared.Tx,
	actor reservation.Actor,
	res *reservation.Reservation,
	lot *parking.Lot,
	p ReservationPatch,
) error {
	if err := authorizePatch(actor, res, p); err != nil {
		return err
	}
	now := c.clock.Now()

	bookingChanged := false
	if p.touchesAssignment() {
		if err := c.reassign(ctx, tx, res, p, now); err != nil {
			return err
		}
		bookingChanged = true
	}
	if p.touchesSchedule() {
		slot, err := reservation.NewTimeSlot(
			patch.Coalesce(p.StartTime, res.TimeSlot().Start()),
			patch.Coalesce(p.EndTime, res.TimeSlot().End()),
		)
		if err != nil {
			return err
		}
		if err := res.Reschedule(slot, lot.Spec(), c.services.PriceCalculator, now); err != nil {
			return err
		}
		bookingChanged = true
	}
	if bookingChanged {
		if err := checkConflicts(ctx, tx, res.Booking()); err != nil {
			return err
		}
	}

	if p.SpecialRequests != nil {
		if err := res.SetSpecialRequests(reservation.NewSpecialRequests(*p.SpecialRequests), now); err != nil {
			return err
		}
	}
	if p.ActualArrival != nil {
		if err := res.RecordArrival(*p.ActualArrival, now); err != nil {
			return err
		}
	}
	if p.ActualDeparture != nil {
		if err := res.RecordDeparture(*p.ActualDeparture, now); err != nil {
			return err
		}
	}
	if p.PaymentStatus != nil {
		if err := res.SetPaymentStatus(*p.PaymentStatus, now); err != nil {
			return err
		}
	}

	if p.Status != nil {
		if err := c.transition(ctx, tx, res, lot, *p.Status, actor, now); err != nil {
			return err
		}
	}

	return tx.Reservations().Update(ctx, res)
}

func (c *reservationCommandsImpl) reassign(ctx context.Context, tx shared.Tx, res *reservation.Reservation, p ReservationPatch, now time.Time) error {
	vehicleID := patch.Coalesce(p.VehicleID, res.VehicleID())
	driverID := patch.Coalesce(p.DriverID, res.DriverID())
	oldSpace := res.ParkingSpaceID()
	newSpace := patch.CoalescePtr(p.ParkingSpaceID, oldSpace)

	if patch.Changes(p.VehicleID, res.VehicleID()) {
		if _, err := loadBookableVehicle(ctx, tx, vehicleID, res.CompanyID()); err != nil {
			return err
		}
	}
	if patch.Changes(p.DriverID, res.DriverID()) {
		if _, err := loadBookableDriver(ctx, tx, driverID, res.CompanyID()); err != nil {
			return err
		}
	}

	spaceChanged := newSpace != nil && (oldSpace == nil || *oldSpace != *newSpace)
	if spaceChanged {
		if _, err := loadBookableSpace(ctx, tx, *newSpace, res.ParkingLotID()); err != nil {
			return err
		}
	}

	if err := res.Reassign(vehicleID, driverID, newSpace, now); err != nil {
		return err
	}

	// A stay in progress moves with its space.
	if spaceChanged && res.Status() == reservation.StatusInProgress {
		if oldSpace != nil {
			if err := c.ledger.SetAvailability(ctx, tx, *oldSpace, true); err != nil {
				return err
			}
		}
		if err := c.ledger.SetAvailability(ctx, tx, *newSpace, false); err != nil {
			return err
		}
	}
	return nil
}

// transition applies a status change and its space side effects.
func (c *reservationCommandsImpl) transition(
	ctx context.Context,
	tx shared.Tx,
	res *reservation.Reservation,
	lot *parking.Lot,
	to reservation.Status,
	actor reservation.Actor,
	now time.Time,
) error {
	from := res.Status()
	if err := res.TransitionTo(to, actor, now); err != nil {
		return err
	}

	if spaceID := res.ParkingSpaceID(); spaceID != nil {
		switch {
		case to == reservation.StatusInProgress:
			space, err := loadSpace(ctx, tx, *spaceID)
			if err != nil {
				return err
			}
			if !space.IsAvailable() {
				return errs.Wrapf(ErrSpaceOccupied, "space %s", space.Number())
			}
			if err := c.ledger.SetAvailability(ctx, tx, *spaceID, false); err != nil {
				return err
			}
		case from == reservation.StatusInProgress:
			if err := c.ledger.SetAvailability(ctx, tx, *spaceID, true); err != nil {
				return err
			}
		}
	}

	if to == reservation.StatusCompleted && res.IsProvisional() {
		if err := res.Settle(lot.Spec(), now); err != nil {
			return err
		}
	}

	return enqueueEvent(ctx, tx, topicReservationStatusChanged, res, from, now)
}

func hashRequest(in CreateReservationInput) (string, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return "", errs.Wrap(err, "failed to hash reservation request")
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
