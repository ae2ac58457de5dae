package reservation

import (
	"fmt"

	"github.com/google/uuid"

	"logipark/internal/pkg/errs"
)

var (
	ErrInvalidTimeSlot      = errs.NewKind("end time must be after start time", errs.ErrInvalidState)
	ErrInvalidStatus        = errs.NewKind("invalid reservation status", errs.ErrInvalidState)
	ErrInvalidPaymentStatus = errs.NewKind("invalid payment status", errs.ErrInvalidState)
	ErrNegativeAmount       = errs.NewKind("amount cannot be negative", errs.ErrInvalidState)
	ErrInvalidAmount        = errs.NewKind("invalid monetary amount", errs.ErrInvalidState)
	ErrTerminal             = errs.NewKind("reservation is in a terminal status", errs.ErrInvalidState)
	ErrTransitionForbidden  = errs.NewKind("caller may not perform this status transition", errs.ErrForbidden)
)

// InvalidTransitionError names a (from, to) pair outside the transition table.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

type Dimension string

const (
	DimensionVehicle Dimension = "vehicle"
	DimensionDriver  Dimension = "driver"
	DimensionSpace   Dimension = "space"
)

// ConflictError reports which dimension of a booking overlaps an existing active reservation.
type ConflictError struct {
	Dimension     Dimension
	ReservationID uuid.UUID
}

func (e *ConflictError) Error() string {
	if e.ReservationID == uuid.Nil {
		return fmt.Sprintf("%s is already booked for an overlapping interval", e.Dimension)
	}
	return fmt.Sprintf("%s is already booked by reservation %s for an overlapping interval", e.Dimension, e.ReservationID)
}

func NewConflictError(dim Dimension, reservationID uuid.UUID) error {
	return errs.Mark(&ConflictError{Dimension: dim, ReservationID: reservationID}, errs.ErrConflict)
}

func newInvalidTransitionError(from, to Status) error {
	return errs.Mark(&InvalidTransitionError{From: from, To: to}, errs.ErrInvalidState)
}
