package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/guregu/null.v4"

	"logipark/internal/domain/reservation"
	"logipark/internal/domain/user"
	"logipark/internal/pkg/errs"
	"logipark/internal/usecase/commands"
)

var (
	ErrCompanyRequired = errs.New("company_id is required")
	ErrEmptyPatch      = errs.New("at least one field must be provided")
)

type CreateReservationRequest struct {
	// CompanyID defaults to the caller's company; admins must set it.
	CompanyID       *uuid.UUID `json:"company_id,omitempty"`
	VehicleID       uuid.UUID  `json:"vehicle_id" binding:"required"`
	DriverID        uuid.UUID  `json:"driver_id" binding:"required"`
	ParkingLotID    uuid.UUID  `json:"parking_lot_id" binding:"required"`
	ParkingSpaceID  *uuid.UUID `json:"parking_space_id,omitempty"`
	StartTime       time.Time  `json:"start_time" binding:"required"`
	EndTime         time.Time  `json:"end_time" binding:"required"`
	SpecialRequests *string    `json:"special_requests,omitempty" binding:"omitempty,max=1000"`
}

func (r *CreateReservationRequest) ToInput(caller user.Caller) (commands.CreateReservationInput, error) {
	companyID, err := ownerCompany(r.CompanyID, caller)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}

	return commands.CreateReservationInput{
		CompanyID:       companyID,
		VehicleID:       r.VehicleID,
		DriverID:        r.DriverID,
		ParkingLotID:    r.ParkingLotID,
		ParkingSpaceID:  r.ParkingSpaceID,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		SpecialRequests: trimmed(r.SpecialRequests),
	}, nil
}

// UpdateReservationRequest is a partial update: absent and null fields are left unchanged.
type UpdateReservationRequest struct {
	StartTime       null.Time   `json:"start_time" swaggertype:"string"`
	EndTime         null.Time   `json:"end_time" swaggertype:"string"`
	VehicleID       *uuid.UUID  `json:"vehicle_id,omitempty"`
	DriverID        *uuid.UUID  `json:"driver_id,omitempty"`
	ParkingSpaceID  *uuid.UUID  `json:"parking_space_id,omitempty"`
	SpecialRequests null.String `json:"special_requests" swaggertype:"string"`
	Status          null.String `json:"status" swaggertype:"string"`
	ActualArrival   null.Time   `json:"actual_arrival" swaggertype:"string"`
	ActualDeparture null.Time   `json:"actual_departure" swaggertype:"string"`
	PaymentStatus   null.String `json:"payment_status" swaggertype:"string"`
}

func (r *UpdateReservationRequest) ToPatch() (commands.ReservationPatch, error) {
	p := commands.ReservationPatch{
		StartTime:       r.StartTime.Ptr(),
		EndTime:         r.EndTime.Ptr(),
		VehicleID:       r.VehicleID,
		DriverID:        r.DriverID,
		ParkingSpaceID:  r.ParkingSpaceID,
		SpecialRequests: trimmed(r.SpecialRequests.Ptr()),
		ActualArrival:   r.ActualArrival.Ptr(),
		ActualDeparture: r.ActualDeparture.Ptr(),
	}

	if r.Status.Valid {
		status, err := reservation.ParseStatus(r.Status.String)
		if err != nil {
			return commands.ReservationPatch{}, err
		}
		p.Status = &status
	}
	if r.PaymentStatus.Valid {
		ps, err := reservation.ParsePaymentStatus(r.PaymentStatus.String)
		if err != nil {
			return commands.ReservationPatch{}, err
		}
		p.PaymentStatus = &ps
	}

	if p == (commands.ReservationPatch{}) {
		return commands.ReservationPatch{}, ErrEmptyPatch
	}
	return p, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
