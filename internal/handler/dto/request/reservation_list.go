package request

import (
	"time"

	"github.com/google/uuid"

	"logipark/internal/domain/reservation"
	"logipark/internal/pkg/errs"
	"logipark/internal/usecase/queries"
)

// ListReservationsQuery is bound from the query string. Every set field narrows the listing.
type ListReservationsQuery struct {
	Status       string `form:"status"`
	ParkingLotID string `form:"parking_lot_id"`
	VehicleID    string `form:"vehicle_id"`
	DriverID     string `form:"driver_id"`
	CompanyID    string `form:"company_id"`
	From         string `form:"from"`
	To           string `form:"to"`
	Cursor       string `form:"cursor"`
	Limit        int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q *ListReservationsQuery) ToFilters() ([]queries.ReservationFilter, error) {
	var filters []queries.ReservationFilter

	if q.Status != "" {
		status, err := reservation.ParseStatus(q.Status)
		if err != nil {
			return nil, err
		}
		filters = append(filters, queries.ByStatus(status))
	}

	ids := []struct {
		name  string
		raw   string
		build func(uuid.UUID) queries.ReservationFilter
	}{
		{"parking_lot_id", q.ParkingLotID, queries.ByLot},
		{"vehicle_id", q.VehicleID, queries.ByVehicle},
		{"driver_id", q.DriverID, queries.ByDriver},
		{"company_id", q.CompanyID, queries.ByCompany},
	}
	for _, f := range ids {
		if f.raw == "" {
			continue
		}
		id, err := uuid.Parse(f.raw)
		if err != nil {
			return nil, errs.Wrapf(err, "%s", f.name)
		}
		filters = append(filters, f.build(id))
	}

	if q.From != "" {
		from, err := time.Parse(time.RFC3339, q.From)
		if err != nil {
			return nil, errs.Wrap(err, "from")
		}
		filters = append(filters, queries.StartsFrom(from))
	}
	if q.To != "" {
		to, err := time.Parse(time.RFC3339, q.To)
		if err != nil {
			return nil, errs.Wrap(err, "to")
		}
		filters = append(filters, queries.StartsBefore(to))
	}

	return filters, nil
}

func (q *ListReservationsQuery) CursorOrNil() *queries.Cursor {
	if q.Cursor == "" {
		return nil
	}
	return &queries.Cursor{After: q.Cursor}
}
