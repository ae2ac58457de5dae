//go:build unit || e2e

package builder

import (
	"time"

	"logipark/internal/domain/reservation"
	reqdto "logipark/internal/handler/dto/request"
	"logipark/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
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
	PaymentStatus   reservation.PaymentStatus
	Status          reservation.Status
	SpecialRequests *string
	Provisional     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:             uuid.New(),
		ParkingLotID:   uuid.New(),
		VehicleID:      uuid.New(),
		DriverID:       uuid.New(),
		CompanyID:      uuid.New(),
		StartTime:      start,
		EndTime:        start.Add(2 * time.Hour),
		TotalCostCents: 3000,
		PaymentStatus:  reservation.PaymentPending,
		Status:         reservation.StatusPending,
		CreatedAt:      start.Add(-24 * time.Hour),
		UpdatedAt:      start.Add(-24 * time.Hour),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) WithSpace(id uuid.UUID) *ReservationBuilder {
	b.ParkingSpaceID = &id
	return b
}

func (b *ReservationBuilder) WithWindow(start, end time.Time) *ReservationBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *ReservationBuilder) Record() reservation.Record {
	return reservation.Record{
		ID:              b.ID,
		ParkingLotID:    b.ParkingLotID,
		ParkingSpaceID:  b.ParkingSpaceID,
		VehicleID:       b.VehicleID,
		DriverID:        b.DriverID,
		CompanyID:       b.CompanyID,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		ActualArrival:   b.ActualArrival,
		ActualDeparture: b.ActualDeparture,
		TotalCostCents:  b.TotalCostCents,
		PaymentStatus:   b.PaymentStatus,
		Status:          b.Status,
		SpecialRequests: b.SpecialRequests,
		Provisional:     b.Provisional,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(b.Record())
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	var spaceNumber *string
	if b.ParkingSpaceID != nil {
		n := "A-01"
		spaceNumber = &n
	}
	return &queries.ReservationView{
		ID:              b.ID,
		ParkingLotID:    b.ParkingLotID,
		ParkingLotName:  "Pátio Central",
		LotCompanyID:    uuid.New(),
		ParkingSpaceID:  b.ParkingSpaceID,
		SpaceNumber:     spaceNumber,
		VehicleID:       b.VehicleID,
		LicensePlate:    "ABC1D23",
		DriverID:        b.DriverID,
		DriverName:      "João Motorista",
		CompanyID:       b.CompanyID,
		CompanyName:     "Transportes Rápidos",
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		ActualArrival:   b.ActualArrival,
		ActualDeparture: b.ActualDeparture,
		TotalCost:       reservation.MustMoney(b.TotalCostCents).String(),
		PaymentStatus:   b.PaymentStatus.String(),
		Status:          b.Status.String(),
		SpecialRequests: b.SpecialRequests,
		Provisional:     b.Provisional,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildCreateRequest() reqdto.CreateReservationRequest {
	companyID := b.CompanyID
	return reqdto.CreateReservationRequest{
		CompanyID:       &companyID,
		VehicleID:       b.VehicleID,
		DriverID:        b.DriverID,
		ParkingLotID:    b.ParkingLotID,
		ParkingSpaceID:  b.ParkingSpaceID,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		SpecialRequests: b.SpecialRequests,
	}
}
