package commands

import "logipark/internal/pkg/errs"

var (
	ErrCompanyNotFound   = errs.NewKind("company not found", errs.ErrNotFound)
	ErrCompanyCannotBook = errs.NewKind("company is not an active transportadora", errs.ErrForbidden)
	ErrRoleNotAllowed    = errs.NewKind("role not allowed for this operation", errs.ErrForbidden)

	ErrLotNotFound     = errs.NewKind("parking lot not found", errs.ErrNotFound)
	ErrLotAccessDenied = errs.NewKind("caller does not operate this parking lot", errs.ErrForbidden)

	ErrSpaceNotFound              = errs.NewKind("parking space not found", errs.ErrNotFound)
	ErrSpaceNotInLot              = errs.NewKind("parking space does not belong to the parking lot", errs.ErrInvalidState)
	ErrSpaceUnavailable           = errs.NewKind("parking space is not available", errs.ErrConflict)
	ErrSpaceOccupied              = errs.NewKind("parking space is already occupied", errs.ErrConflict)
	ErrSpaceHasActiveReservations = errs.NewKind("parking space has active reservations", errs.ErrInvalidState)
	ErrLotHasActiveReservations   = errs.NewKind("parking lot has spaces bound to active reservations", errs.ErrInvalidState)
	ErrNoActiveOccupancy          = errs.NewKind("no vehicle is parked on this space", errs.ErrNotFound)

	ErrVehicleNotFound      = errs.NewKind("vehicle not found", errs.ErrNotFound)
	ErrVehicleNotOwned      = errs.NewKind("vehicle does not belong to the company", errs.ErrForbidden)
	ErrVehicleWithoutDriver = errs.NewKind("vehicle has no active driver assigned", errs.ErrInvalidState)
	ErrVehicleAlreadyParked = errs.NewKind("vehicle is already parked on another space", errs.ErrConflict)
	ErrDriverNotFound       = errs.NewKind("driver not found", errs.ErrNotFound)
	ErrDriverNotOwned       = errs.NewKind("driver does not belong to the company", errs.ErrForbidden)
	ErrPlateTaken           = errs.NewKind("license plate already registered", errs.ErrConflict)
	ErrLicenseTaken         = errs.NewKind("driver license already registered", errs.ErrConflict)

	ErrReservationNotFound     = errs.NewKind("reservation not found", errs.ErrNotFound)
	ErrReservationAccessDenied = errs.NewKind("caller may not act on this reservation", errs.ErrForbidden)
	ErrFieldNotPatchable       = errs.NewKind("caller may not modify this field", errs.ErrForbidden)
	ErrOwnerModifyNonPending   = errs.NewKind("the owning company may only modify pending reservations", errs.ErrForbidden)
	ErrCannotCancel            = errs.NewKind("reservation cannot be cancelled", errs.ErrInvalidState)

	ErrIdempotencyKeyReused = errs.NewKind("idempotency key was used with a different request", errs.ErrConflict)
	ErrIdempotencyCorrupted = errs.New("completed idempotency key has no result")
)
