package parking

import (
	"time"

	"github.com/google/uuid"

	"logipark/internal/domain/reservation"
	"logipark/internal/pkg/errs"
)

// Lot is the aggregate root owning the space counters and the hourly rate.
type Lot struct {
	id              uuid.UUID
	companyID       uuid.UUID
	name            string
	pricePerHour    reservation.Money
	totalSpaces     int
	availableSpaces int
	isActive        bool
	updatedAt       time.Time
}

func ReconstructLot(
	id, companyID uuid.UUID,
	name string,
	pricePerHour reservation.Money,
	totalSpaces, availableSpaces int,
	isActive bool,
	updatedAt time.Time,
) *Lot {
	return &Lot{
		id:              id,
		companyID:       companyID,
		name:            name,
		pricePerHour:    pricePerHour,
		totalSpaces:     totalSpaces,
		availableSpaces: availableSpaces,
		isActive:        isActive,
		updatedAt:       updatedAt,
	}
}

// Adjust applies a counter delta after checking 0 <= available <= total still holds.
func (l *Lot) Adjust(deltaTotal, deltaAvailable int) error {
	total := l.totalSpaces + deltaTotal
	available := l.availableSpaces + deltaAvailable
	if err := checkCounters(total, available); err != nil {
		return err
	}
	l.totalSpaces = total
	l.availableSpaces = available
	return nil
}

// Reset replaces both counters, as regenerate and reconcile do.
func (l *Lot) Reset(total, available int) error {
	if err := checkCounters(total, available); err != nil {
		return err
	}
	l.totalSpaces = total
	l.availableSpaces = available
	return nil
}

func checkCounters(total, available int) error {
	if total < 0 || available < 0 || available > total {
		return errs.Wrapf(ErrCounterOutOfRange, "total=%d available=%d", total, available)
	}
	return nil
}

func (l *Lot) Spec() reservation.LotSpec {
	return reservation.LotSpec{ID: l.id, PricePerHour: l.pricePerHour}
}

// OperatedBy reports whether companyID is the estacionamento running this lot.
func (l *Lot) OperatedBy(companyID uuid.UUID) bool {
	return l.companyID == companyID
}

func (l *Lot) ID() uuid.UUID                   { return l.id }
func (l *Lot) CompanyID() uuid.UUID            { return l.companyID }
func (l *Lot) Name() string                    { return l.name }
func (l *Lot) PricePerHour() reservation.Money { return l.pricePerHour }
func (l *Lot) TotalSpaces() int                { return l.totalSpaces }
func (l *Lot) AvailableSpaces() int            { return l.availableSpaces }
func (l *Lot) IsActive() bool                  { return l.isActive }
func (l *Lot) UpdatedAt() time.Time            { return l.updatedAt }
