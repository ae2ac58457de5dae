package queries

import (
	"time"

	"github.com/google/uuid"

	"logipark/internal/domain/reservation"
	"logipark/internal/domain/user"
	"logipark/internal/pkg/errs"
)

var (
	ErrInvalidFilter = errs.NewKind("invalid reservation filter", errs.ErrInvalidState)
	ErrListForbidden = errs.NewKind("caller may not list these reservations", errs.ErrForbidden)
)

type filterKind int

const (
	filterByStatus filterKind = iota + 1
	filterByLot
	filterByVehicle
	filterByDriver
	filterByCompany
	filterByLotOperator
	filterStartsFrom
	filterStartsBefore
)

// ReservationFilter is one predicate of a reservation listing. Build it with
// the By* and Starts* constructors; the zero value is rejected.
type ReservationFilter struct {
	kind   filterKind
	status reservation.Status
	id     uuid.UUID
	at     time.Time
}

func ByStatus(s reservation.Status) ReservationFilter {
	return ReservationFilter{kind: filterByStatus, status: s}
}

func ByLot(id uuid.UUID) ReservationFilter {
	return ReservationFilter{kind: filterByLot, id: id}
}

func ByVehicle(id uuid.UUID) ReservationFilter {
	return ReservationFilter{kind: filterByVehicle, id: id}
}

func ByDriver(id uuid.UUID) ReservationFilter {
	return ReservationFilter{kind: filterByDriver, id: id}
}

func ByCompany(id uuid.UUID) ReservationFilter {
	return ReservationFilter{kind: filterByCompany, id: id}
}

// ByLotOperator keeps reservations on lots run by the given company.
func ByLotOperator(companyID uuid.UUID) ReservationFilter {
	return ReservationFilter{kind: filterByLotOperator, id: companyID}
}

// StartsFrom keeps reservations with start_time >= t.
func StartsFrom(t time.Time) ReservationFilter {
	return ReservationFilter{kind: filterStartsFrom, at: t}
}

// StartsBefore keeps reservations with start_time < t.
func StartsBefore(t time.Time) ReservationFilter {
	return ReservationFilter{kind: filterStartsBefore, at: t}
}

// ReservationCriteria is the compiled, conjunctive form of a filter list.
// A nil field means "no constraint"; the read store binds every field as a
// nullable parameter of one static query.
type ReservationCriteria struct {
	Status        *reservation.Status
	ParkingLotID  *uuid.UUID
	VehicleID     *uuid.UUID
	DriverID      *uuid.UUID
	CompanyID     *uuid.UUID
	LotOperatorID *uuid.UUID
	StartsFrom    *time.Time
	StartsBefore  *time.Time

	AfterStart *time.Time
	AfterID    *uuid.UUID
	Limit      int32
}

// CompileFilters folds the filters into criteria and narrows them to what the
// caller may see. Repeating a predicate with a different value is rejected.
func CompileFilters(caller user.Caller, filters []ReservationFilter) (ReservationCriteria, error) {
	var c ReservationCriteria
	for _, f := range filters {
		var err error
		switch f.kind {
		case filterByStatus:
			if !f.status.IsValid() {
				return ReservationCriteria{}, errs.Wrapf(ErrInvalidFilter, "status %q", f.status)
			}
			c.Status, err = setOnce(c.Status, f.status, "status")
		case filterByLot:
			c.ParkingLotID, err = setOnce(c.ParkingLotID, f.id, "parking lot")
		case filterByVehicle:
			c.VehicleID, err = setOnce(c.VehicleID, f.id, "vehicle")
		case filterByDriver:
			c.DriverID, err = setOnce(c.DriverID, f.id, "driver")
		case filterByCompany:
			c.CompanyID, err = setOnce(c.CompanyID, f.id, "company")
		case filterByLotOperator:
			c.LotOperatorID, err = setOnce(c.LotOperatorID, f.id, "lot operator")
		case filterStartsFrom:
			c.StartsFrom, err = setOnce(c.StartsFrom, f.at, "starts from")
		case filterStartsBefore:
			c.StartsBefore, err = setOnce(c.StartsBefore, f.at, "starts before")
		default:
			err = errs.Wrap(ErrInvalidFilter, "empty filter")
		}
		if err != nil {
			return ReservationCriteria{}, err
		}
	}

	if c.StartsFrom != nil && c.StartsBefore != nil && !c.StartsFrom.Before(*c.StartsBefore) {
		return ReservationCriteria{}, errs.Wrap(ErrInvalidFilter, "empty time range")
	}

	return scopeToCaller(caller, c)
}

func scopeToCaller(caller user.Caller, c ReservationCriteria) (ReservationCriteria, error) {
	if caller.IsAdmin() {
		return c, nil
	}
	if caller.CompanyID == nil {
		return ReservationCriteria{}, errs.Wrapf(ErrListForbidden, "%s has no company", caller.ID)
	}

	own := *caller.CompanyID
	switch caller.Role {
	case user.RoleTransportadora:
		if c.CompanyID != nil && *c.CompanyID != own {
			return ReservationCriteria{}, errs.Wrapf(ErrListForbidden, "company %s", *c.CompanyID)
		}
		c.CompanyID = &own
	case user.RoleEstacionamento:
		if c.LotOperatorID != nil && *c.LotOperatorID != own {
			return ReservationCriteria{}, errs.Wrapf(ErrListForbidden, "lot operator %s", *c.LotOperatorID)
		}
		c.LotOperatorID = &own
	default:
		return ReservationCriteria{}, errs.Wrapf(ErrListForbidden, "role %s", caller.Role)
	}
	return c, nil
}

func setOnce[T comparable](cur *T, v T, name string) (*T, error) {
	if cur != nil && *cur != v {
		return nil, errs.Wrapf(ErrInvalidFilter, "conflicting %s filters", name)
	}
	return &v, nil
}
