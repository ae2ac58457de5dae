package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"logipark/internal/domain/reservation"
	"logipark/internal/infra"
	sqlc "logipark/internal/infra/sqlc/generated"
	"logipark/internal/pkg/pgconv"
	"logipark/internal/usecase/queries"
)

type ReservationViewQueries interface {
	GetReservationView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewRow, error)
	ListReservationViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationViewsParams) ([]sqlc.ListReservationViewsRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return toReservationView(row)
}

func (r *ReservationReadStore) List(ctx context.Context, c queries.ReservationCriteria) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViews(ctx, r.db, criteriaToParams(c))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		view, err := toReservationView(sqlc.GetReservationViewRow(row))
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, nil
}

func criteriaToParams(c queries.ReservationCriteria) sqlc.ListReservationViewsParams {
	p := sqlc.ListReservationViewsParams{
		ParkingLotID:  pgconv.UUIDPtrToPgtype(c.ParkingLotID),
		VehicleID:     pgconv.UUIDPtrToPgtype(c.VehicleID),
		DriverID:      pgconv.UUIDPtrToPgtype(c.DriverID),
		CompanyID:     pgconv.UUIDPtrToPgtype(c.CompanyID),
		LotOperatorID: pgconv.UUIDPtrToPgtype(c.LotOperatorID),
		StartsFrom:    pgconv.TimePtrToPgtype(c.StartsFrom),
		StartsBefore:  pgconv.TimePtrToPgtype(c.StartsBefore),
		AfterStart:    pgconv.TimePtrToPgtype(c.AfterStart),
		AfterID:       pgconv.UUIDPtrToPgtype(c.AfterID),
		RowLimit:      c.Limit,
	}
	if c.Status != nil {
		p.Status = pgconv.StringToPgtype(c.Status.String())
	}
	return p
}

func toReservationView(row sqlc.GetReservationViewRow) (*queries.ReservationView, error) {
	cost, err := formatMoney(row.TotalCost)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt reservation total_cost", err, infra.KindDBFailure)
	}

	return &queries.ReservationView{
		ID:              row.ID,
		ParkingLotID:    row.ParkingLotID,
		ParkingLotName:  row.ParkingLotName,
		LotCompanyID:    row.LotCompanyID,
		ParkingSpaceID:  pgconv.UUIDPtrFromPgtype(row.ParkingSpaceID),
		SpaceNumber:     pgconv.StringPtrFromPgtype(row.SpaceNumber),
		VehicleID:       row.VehicleID,
		LicensePlate:    row.LicensePlate,
		DriverID:        row.DriverID,
		DriverName:      row.DriverName,
		CompanyID:       row.CompanyID,
		CompanyName:     row.CompanyName,
		StartTime:       pgconv.TimeFromPgtype(row.StartTime),
		EndTime:         pgconv.TimeFromPgtype(row.EndTime),
		ActualArrival:   pgconv.TimePtrFromPgtype(row.ActualArrival),
		ActualDeparture: pgconv.TimePtrFromPgtype(row.ActualDeparture),
		TotalCost:       cost,
		PaymentStatus:   row.PaymentStatus,
		Status:          row.Status,
		SpecialRequests: pgconv.StringPtrFromPgtype(row.SpecialRequests),
		Provisional:     row.Provisional,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// formatMoney renders a NUMERIC(_,2) as "<units>.<cents>".
func formatMoney(n pgtype.Numeric) (string, error) {
	cents, err := pgconv.CentsFromNumeric(n)
	if err != nil {
		return "", err
	}
	m, err := reservation.NewMoney(cents)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}
