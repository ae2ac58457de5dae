package queries

import (
	"time"

	"github.com/google/uuid"
)

// ReservationView is the read-side shape of a reservation joined with the
// names a client needs to render it.
type ReservationView struct {
	ID              uuid.UUID  `json:"id"`
	ParkingLotID    uuid.UUID  `json:"parking_lot_id"`
	ParkingLotName  string     `json:"parking_lot_name"`
	LotCompanyID    uuid.UUID  `json:"lot_company_id"`
	ParkingSpaceID  *uuid.UUID `json:"parking_space_id,omitempty"`
	SpaceNumber     *string    `json:"space_number,omitempty"`
	VehicleID       uuid.UUID  `json:"vehicle_id"`
	LicensePlate    string     `json:"license_plate"`
	DriverID        uuid.UUID  `json:"driver_id"`
	DriverName      string     `json:"driver_name"`
	CompanyID       uuid.UUID  `json:"company_id"`
	CompanyName     string     `json:"company_name"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         time.Time  `json:"end_time"`
	ActualArrival   *time.Time `json:"actual_arrival,omitempty"`
	ActualDeparture *time.Time `json:"actual_departure,omitempty"`
	TotalCost       string     `json:"total_cost"`
	PaymentStatus   string     `json:"payment_status"`
	Status          string     `json:"status"`
	SpecialRequests *string    `json:"special_requests,omitempty"`
	Provisional     bool       `json:"provisional"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ParkingLotView struct {
	ID              uuid.UUID `json:"id"`
	CompanyID       uuid.UUID `json:"company_id"`
	Name            string    `json:"name"`
	PricePerHour    string    `json:"price_per_hour"`
	TotalSpaces     int       `json:"total_spaces"`
	AvailableSpaces int       `json:"available_spaces"`
	IsActive        bool      `json:"is_active"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ParkingSpaceView struct {
	ID           uuid.UUID `json:"id"`
	ParkingLotID uuid.UUID `json:"parking_lot_id"`
	SpaceNumber  string    `json:"space_number"`
	SpaceType    string    `json:"space_type"`
	IsAvailable  bool      `json:"is_available"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
