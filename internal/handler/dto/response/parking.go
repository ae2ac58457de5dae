package response

import (
	"time"

	"github.com/google/uuid"

	"logipark/internal/usecase/commands"
	"logipark/internal/usecase/queries"
)

type ParkingLotResponse struct {
	ID              uuid.UUID `json:"id"`
	CompanyID       uuid.UUID `json:"company_id"`
	Name            string    `json:"name"`
	PricePerHour    string    `json:"price_per_hour"`
	TotalSpaces     int       `json:"total_spaces"`
	AvailableSpaces int       `json:"available_spaces"`
	IsActive        bool      `json:"is_active"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ParkingSpaceResponse struct {
	ID           uuid.UUID `json:"id"`
	ParkingLotID uuid.UUID `json:"parking_lot_id"`
	SpaceNumber  string    `json:"space_number"`
	SpaceType    string    `json:"space_type"`
	IsAvailable  bool      `json:"is_available"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CounterSnapshotResponse struct {
	TotalSpaces     int `json:"total_spaces"`
	AvailableSpaces int `json:"available_spaces"`
}

type ReconcileResponse struct {
	LotID     uuid.UUID               `json:"parking_lot_id"`
	Before    CounterSnapshotResponse `json:"before"`
	After     CounterSnapshotResponse `json:"after"`
	Corrected bool                    `json:"corrected"`
}

type RegenerateResponse struct {
	LotID   uuid.UUID `json:"parking_lot_id"`
	Created int       `json:"created"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromParkingLotView(v *queries.ParkingLotView) (*ParkingLotResponse, error) {
	var resp ParkingLotResponse
	if err := copyFrom(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromParkingSpaceViews(views []*queries.ParkingSpaceView) ([]*ParkingSpaceResponse, error) {
	resp := make([]*ParkingSpaceResponse, 0, len(views))
	for _, v := range views {
		var item ParkingSpaceResponse
		if err := copyFrom(&item, v); err != nil {
			return nil, err
		}
		resp = append(resp, &item)
	}
	return resp, nil
}

func FromReconcileResult(r *commands.ReconcileResult) *ReconcileResponse {
	return &ReconcileResponse{
		LotID: r.LotID,
		Before: CounterSnapshotResponse{
			TotalSpaces:     r.Before.TotalSpaces,
			AvailableSpaces: r.Before.AvailableSpaces,
		},
		After: CounterSnapshotResponse{
			TotalSpaces:     r.After.TotalSpaces,
			AvailableSpaces: r.After.AvailableSpaces,
		},
		Corrected: r.Corrected,
	}
}
