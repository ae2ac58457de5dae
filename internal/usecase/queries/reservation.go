package queries

import (
	"context"

	"github.com/google/uuid"

	"logipark/internal/domain/user"
	"logipark/internal/infra"
	"logipark/internal/pkg/errs"
)

var (
	ErrReservationNotFound = errs.NewKind("reservation not found", errs.ErrNotFound)
	ErrReservationAccess   = errs.NewKind("caller may not view this reservation", errs.ErrForbidden)
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// List returns at most criteria.Limit rows ordered by (start_time, id) descending.
	List(ctx context.Context, criteria ReservationCriteria) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, caller user.Caller, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, caller user.Caller, filters []ReservationFilter, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, caller user.Caller, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(ErrReservationNotFound, "%s", id)
		}
		return nil, err
	}
	if !canView(caller, view) {
		return nil, errs.Wrapf(ErrReservationAccess, "%s", id)
	}
	return view, nil
}

// canView: admins see everything, the booking company sees its own, the
// lot operator sees what is parked on its lots.
func canView(caller user.Caller, view *ReservationView) bool {
	return caller.IsAdmin() ||
		caller.IsCompanyUser(user.RoleTransportadora, view.CompanyID) ||
		caller.IsCompanyUser(user.RoleEstacionamento, view.LotCompanyID)
}

func (q *reservationQueriesImpl) List(
	ctx context.Context,
	caller user.Caller,
	filters []ReservationFilter,
	cursor *Cursor,
	limit int,
) ([]*ReservationView, *Cursor, error) {
	criteria, err := CompileFilters(caller, filters)
	if err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	if cursor != nil && cursor.After != "" {
		afterStart, afterID, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, err
		}
		criteria.AfterStart = &afterStart
		criteria.AfterID = &afterID
	}
	criteria.Limit = int32(limit + 1) // #nosec G115 -- bounded by MaxListLimit

	rows, err := q.store.List(ctx, criteria)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.StartTime, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
