package reservation

import (
	"time"

	"github.com/google/uuid"

	"logipark/internal/pkg/clock"
	"logipark/internal/pkg/errs"
)

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

// LotSpec is what a reservation needs to know about its parking lot.
type LotSpec struct {
	ID           uuid.UUID
	PricePerHour Money
}

type Reservation struct {
	id              uuid.UUID
	parkingLotID    uuid.UUID
	parkingSpaceID  *uuid.UUID
	vehicleID       uuid.UUID
	driverID        uuid.UUID
	companyID       uuid.UUID
	slot            TimeSlot
	actualArrival   *time.Time
	actualDeparture *time.Time
	totalCost       Money
	paymentStatus   PaymentStatus
	status          Status
	specialRequests SpecialRequests
	provisional     bool
	createdAt       time.Time
	updatedAt       time.Time
}

type NewReservationParams struct {
	Lot             LotSpec
	CompanyID       uuid.UUID
	VehicleID       uuid.UUID
	DriverID        uuid.UUID
	SpaceID         *uuid.UUID
	Slot            TimeSlot
	SpecialRequests SpecialRequests
}

// NewReservation books a PENDING reservation priced from the slot and the lot rate.
func NewReservation(services *Services, p NewReservationParams) *Reservation {
	now := services.Clock.Now()
	return &Reservation{
		id:              uuid.New(),
		parkingLotID:    p.Lot.ID,
		parkingSpaceID:  copyID(p.SpaceID),
		vehicleID:       p.VehicleID,
		driverID:        p.DriverID,
		companyID:       p.CompanyID,
		slot:            p.Slot,
		totalCost:       services.PriceCalculator.ComputeCost(p.Slot, p.Lot.PricePerHour),
		paymentStatus:   PaymentPending,
		status:          StatusPending,
		specialRequests: p.SpecialRequests,
		createdAt:       now,
		updatedAt:       now,
	}
}

type WalkUpParams struct {
	Lot       LotSpec
	CompanyID uuid.UUID
	VehicleID uuid.UUID
	DriverID  uuid.UUID
	SpaceID   uuid.UUID
	Horizon   time.Duration
}

// NewWalkUp starts an IN_PROGRESS stay at now with a provisional end of now+Horizon.
// Cost stays zero until the stay is settled.
func NewWalkUp(services *Services, p WalkUpParams) (*Reservation, error) {
	now := services.Clock.Now()
	slot, err := NewTimeSlot(now, now.Add(p.Horizon))
	if err != nil {
		return nil, errs.Wrap(err, "provisional horizon")
	}
	spaceID := p.SpaceID
	arrival := now
	return &Reservation{
		id:             uuid.New(),
		parkingLotID:   p.Lot.ID,
		parkingSpaceID: &spaceID,
		vehicleID:      p.VehicleID,
		driverID:       p.DriverID,
		companyID:      p.CompanyID,
		slot:           slot,
		actualArrival:  &arrival,
		paymentStatus:  PaymentPending,
		status:         StatusInProgress,
		provisional:    true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// Record is the flat persisted form of a Reservation.
type Record struct {
	ID              uuid.UUID
	ParkingLotID    uuid.UUID
	ParkingSpaceID  *uuid.UUID
	VehicleID       uuid.UUID
	DriverID        uuid.UUID
	CompanyID       uuid.UUID
	StartTime       time.Time
	EndTime         time.Time
	ActualArrival   *time.Time
	ActualDeparture *time.Time
	TotalCostCents  int64
	PaymentStatus   PaymentStatus
	Status          Status
	SpecialRequests *string
	Provisional     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func ReconstructReservation(r Record) *Reservation {
	res := &Reservation{
		id:              r.ID,
		parkingLotID:    r.ParkingLotID,
		parkingSpaceID:  copyID(r.ParkingSpaceID),
		vehicleID:       r.VehicleID,
		driverID:        r.DriverID,
		companyID:       r.CompanyID,
		slot:            TimeSlot{start: r.StartTime, end: r.EndTime},
		actualArrival:   copyTime(r.ActualArrival),
		actualDeparture: copyTime(r.ActualDeparture),
		totalCost:       Money{cents: r.TotalCostCents},
		paymentStatus:   r.PaymentStatus,
		status:          r.Status,
		provisional:     r.Provisional,
		createdAt:       r.CreatedAt,
		updatedAt:       r.UpdatedAt,
	}
	if r.SpecialRequests != nil {
		res.specialRequests = NewSpecialRequests(*r.SpecialRequests)
	}
	return res
}

func (r *Reservation) Record() Record {
	return Record{
		ID:              r.id,
		ParkingLotID:    r.parkingLotID,
		ParkingSpaceID:  copyID(r.parkingSpaceID),
		VehicleID:       r.vehicleID,
		DriverID:        r.driverID,
		CompanyID:       r.companyID,
		StartTime:       r.slot.start,
		EndTime:         r.slot.end,
		ActualArrival:   copyTime(r.actualArrival),
		ActualDeparture: copyTime(r.actualDeparture),
		TotalCostCents:  r.totalCost.cents,
		PaymentStatus:   r.paymentStatus,
		Status:          r.status,
		SpecialRequests: r.specialRequests.Ptr(),
		Provisional:     r.provisional,
		CreatedAt:       r.createdAt,
		UpdatedAt:       r.updatedAt,
	}
}

// TransitionTo moves the reservation along the transition table and stamps
// actualArrival / actualDeparture when they are still empty.
func (r *Reservation) TransitionTo(to Status, actor Actor, now time.Time) error {
	if err := CheckTransition(r.status, to, actor); err != nil {
		return err
	}
	switch to {
	case StatusInProgress:
		if r.actualArrival == nil {
			r.actualArrival = &now
		}
	case StatusCompleted:
		if r.actualDeparture == nil {
			r.actualDeparture = &now
		}
	}
	r.status = to
	r.updatedAt = now
	return nil
}

func (r *Reservation) Reschedule(slot TimeSlot, lot LotSpec, calc PriceCalculator, now time.Time) error {
	if err := r.ensureMutable(); err != nil {
		return err
	}
	r.slot = slot
	r.totalCost = calc.ComputeCost(slot, lot.PricePerHour)
	r.updatedAt = now
	return nil
}

func (r *Reservation) Reassign(vehicleID, driverID uuid.UUID, spaceID *uuid.UUID, now time.Time) error {
	if err := r.ensureMutable(); err != nil {
		return err
	}
	r.vehicleID = vehicleID
	r.driverID = driverID
	r.parkingSpaceID = copyID(spaceID)
	r.updatedAt = now
	return nil
}

func (r *Reservation) SetSpecialRequests(req SpecialRequests, now time.Time) error {
	if err := r.ensureMutable(); err != nil {
		return err
	}
	r.specialRequests = req
	r.updatedAt = now
	return nil
}

func (r *Reservation) RecordArrival(at, now time.Time) error {
	if err := r.ensureMutable(); err != nil {
		return err
	}
	r.actualArrival = &at
	r.updatedAt = now
	return nil
}

func (r *Reservation) RecordDeparture(at, now time.Time) error {
	if err := r.ensureMutable(); err != nil {
		return err
	}
	r.actualDeparture = &at
	r.updatedAt = now
	return nil
}

func (r *Reservation) SetPaymentStatus(p PaymentStatus, now time.Time) error {
	if !p.IsValid() {
		return ErrInvalidPaymentStatus
	}
	r.paymentStatus = p
	r.updatedAt = now
	return nil
}

// Settle finalizes a completed stay: the cost becomes elapsed real hours
// (actualArrival to actualDeparture) times the rate, and a provisional end
// is pulled in to the departure.
func (r *Reservation) Settle(lot LotSpec, now time.Time) error {
	if r.status != StatusCompleted {
		return errs.Wrapf(ErrInvalidStatus, "cannot settle a reservation in status %s", r.status)
	}
	if r.actualDeparture == nil {
		r.actualDeparture = &now
	}
	arrival := r.slot.start
	if r.actualArrival != nil {
		arrival = *r.actualArrival
	}
	if r.provisional && r.actualDeparture.After(r.slot.start) {
		r.slot.end = *r.actualDeparture
	}
	r.totalCost = ComputeCost(arrival, *r.actualDeparture, lot.PricePerHour)
	r.provisional = false
	r.updatedAt = now
	return nil
}

func (r *Reservation) Booking() Booking {
	return Booking{
		ReservationID: r.id,
		VehicleID:     r.vehicleID,
		DriverID:      r.driverID,
		SpaceID:       copyID(r.parkingSpaceID),
		Slot:          r.slot,
		Status:        r.status,
	}
}

func (r *Reservation) ensureMutable() error {
	if r.status.IsTerminal() {
		return errs.Wrapf(ErrTerminal, "cannot modify a reservation in status %s", r.status)
	}
	return nil
}

func (r *Reservation) ID() uuid.UUID                    { return r.id }
func (r *Reservation) ParkingLotID() uuid.UUID          { return r.parkingLotID }
func (r *Reservation) ParkingSpaceID() *uuid.UUID       { return copyID(r.parkingSpaceID) }
func (r *Reservation) VehicleID() uuid.UUID             { return r.vehicleID }
func (r *Reservation) DriverID() uuid.UUID              { return r.driverID }
func (r *Reservation) CompanyID() uuid.UUID             { return r.companyID }
func (r *Reservation) TimeSlot() TimeSlot               { return r.slot }
func (r *Reservation) ActualArrival() *time.Time        { return copyTime(r.actualArrival) }
func (r *Reservation) ActualDeparture() *time.Time      { return copyTime(r.actualDeparture) }
func (r *Reservation) TotalCost() Money                 { return r.totalCost }
func (r *Reservation) PaymentStatus() PaymentStatus     { return r.paymentStatus }
func (r *Reservation) Status() Status                   { return r.status }
func (r *Reservation) SpecialRequests() SpecialRequests { return r.specialRequests }
func (r *Reservation) IsProvisional() bool              { return r.provisional }
func (r *Reservation) CreatedAt() time.Time             { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time             { return r.updatedAt }

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
