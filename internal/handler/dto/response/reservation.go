package response

import (
	"time"

	"github.com/google/uuid"
	"gopkg.in/guregu/null.v4"

	"logipark/internal/usecase/queries"
)

type ReservationResponse struct {
	ID              uuid.UUID   `json:"id"`
	ParkingLotID    uuid.UUID   `json:"parking_lot_id"`
	ParkingLotName  string      `json:"parking_lot_name"`
	ParkingSpaceID  *uuid.UUID  `json:"parking_space_id"`
	SpaceNumber     null.String `json:"space_number" swaggertype:"string"`
	VehicleID       uuid.UUID   `json:"vehicle_id"`
	LicensePlate    string      `json:"license_plate"`
	DriverID        uuid.UUID   `json:"driver_id"`
	DriverName      string      `json:"driver_name"`
	CompanyID       uuid.UUID   `json:"company_id"`
	CompanyName     string      `json:"company_name"`
	StartTime       time.Time   `json:"start_time"`
	EndTime         time.Time   `json:"end_time"`
	ActualArrival   null.Time   `json:"actual_arrival" swaggertype:"string"`
	ActualDeparture null.Time   `json:"actual_departure" swaggertype:"string"`
	TotalCost       string      `json:"total_cost"`
	PaymentStatus   string      `json:"payment_status"`
	Status          string      `json:"status"`
	SpecialRequests null.String `json:"special_requests" swaggertype:"string"`
	Provisional     bool        `json:"provisional"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type ReservationListResponse struct {
	Items      []*ReservationResponse `json:"items"`
	NextCursor null.String            `json:"next_cursor" swaggertype:"string"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var resp ReservationResponse
	if err := copyFrom(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromReservationViews(views []*queries.ReservationView, next *queries.Cursor) (*ReservationListResponse, error) {
	resp := &ReservationListResponse{Items: make([]*ReservationResponse, 0, len(views))}
	for _, v := range views {
		item, err := FromReservationView(v)
		if err != nil {
			return nil, err
		}
		resp.Items = append(resp.Items, item)
	}
	if next != nil && next.After != "" {
		resp.NextCursor = null.StringFrom(next.After)
	}
	return resp, nil
}
