package converter

import (
	"logipark/internal/domain/reservation"
	sqlc "logipark/internal/infra/sqlc/generated"
	"logipark/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	rec := res.Record()
	return sqlc.CreateReservationParams{
		ID:              rec.ID,
		ParkingLotID:    rec.ParkingLotID,
		ParkingSpaceID:  pgconv.UUIDPtrToPgtype(rec.ParkingSpaceID),
		VehicleID:       rec.VehicleID,
		DriverID:        rec.DriverID,
		CompanyID:       rec.CompanyID,
		StartTime:       pgconv.TimeToPgtype(rec.StartTime),
		EndTime:         pgconv.TimeToPgtype(rec.EndTime),
		ActualArrival:   pgconv.TimePtrToPgtype(rec.ActualArrival),
		ActualDeparture: pgconv.TimePtrToPgtype(rec.ActualDeparture),
		TotalCost:       pgconv.CentsToNumeric(rec.TotalCostCents),
		PaymentStatus:   rec.PaymentStatus.String(),
		Status:          rec.Status.String(),
		SpecialRequests: pgconv.StringPtrToPgtype(rec.SpecialRequests),
		Provisional:     rec.Provisional,
		CreatedAt:       pgconv.TimeToPgtype(rec.CreatedAt),
		UpdatedAt:       pgconv.TimeToPgtype(rec.UpdatedAt),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) sqlc.UpdateReservationParams {
	rec := res.Record()
	return sqlc.UpdateReservationParams{
		ID:              rec.ID,
		ParkingSpaceID:  pgconv.UUIDPtrToPgtype(rec.ParkingSpaceID),
		VehicleID:       rec.VehicleID,
		DriverID:        rec.DriverID,
		StartTime:       pgconv.TimeToPgtype(rec.StartTime),
		EndTime:         pgconv.TimeToPgtype(rec.EndTime),
		ActualArrival:   pgconv.TimePtrToPgtype(rec.ActualArrival),
		ActualDeparture: pgconv.TimePtrToPgtype(rec.ActualDeparture),
		TotalCost:       pgconv.CentsToNumeric(rec.TotalCostCents),
		PaymentStatus:   rec.PaymentStatus.String(),
		Status:          rec.Status.String(),
		SpecialRequests: pgconv.StringPtrToPgtype(rec.SpecialRequests),
		Provisional:     rec.Provisional,
		UpdatedAt:       pgconv.TimeToPgtype(rec.UpdatedAt),
	}
}

// ReservationFromRow fails only when total_cost is not a finite amount.
func ReservationFromRow(row sqlc.Reservations) (*reservation.Reservation, error) {
	cents, err := pgconv.CentsFromNumeric(row.TotalCost)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(reservation.Record{
		ID:              row.ID,
		ParkingLotID:    row.ParkingLotID,
		ParkingSpaceID:  pgconv.UUIDPtrFromPgtype(row.ParkingSpaceID),
		VehicleID:       row.VehicleID,
		DriverID:        row.DriverID,
		CompanyID:       row.CompanyID,
		StartTime:       pgconv.TimeFromPgtype(row.StartTime),
		EndTime:         pgconv.TimeFromPgtype(row.EndTime),
		ActualArrival:   pgconv.TimePtrFromPgtype(row.ActualArrival),
		ActualDeparture: pgconv.TimePtrFromPgtype(row.ActualDeparture),
		TotalCostCents:  cents,
		PaymentStatus:   reservation.PaymentStatus(row.PaymentStatus),
		Status:          reservation.Status(row.Status),
		SpecialRequests: pgconv.StringPtrFromPgtype(row.SpecialRequests),
		Provisional:     row.Provisional,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}
