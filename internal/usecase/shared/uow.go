package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"logipark/internal/domain/company"
	"logipark/internal/domain/fleet"
	"logipark/internal/domain/parking"
	"logipark/internal/domain/reservation"
)

type UnitOfWork interface {
	// Within runs fn in one serializable transaction, retrying serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to a single transaction.
type Tx interface {
	Reservations() ReservationRepository
	Lots() ParkingLotRepository
	Spaces() ParkingSpaceRepository
	Fleet() FleetRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
}

// CommandReads are the lookups commands validate against, inside the same transaction.
type CommandReads interface {
	CompanyByID(ctx context.Context, id uuid.UUID) (*company.Company, error)
	VehicleByID(ctx context.Context, id uuid.UUID) (*fleet.Vehicle, error)
	VehicleByPlate(ctx context.Context, plate fleet.LicensePlate) (*fleet.Vehicle, error)
	DriverByID(ctx context.Context, id uuid.UUID) (*fleet.Driver, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

// ConflictScope selects active reservations sharing any of these resources.
type ConflictScope struct {
	VehicleID uuid.UUID
	DriverID  uuid.UUID
	SpaceID   *uuid.UUID
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	Update(ctx context.Context, res *reservation.Reservation) error
	// FindByIDForUpdate loads and row-locks the reservation.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ListActiveInScope(ctx context.Context, scope ConflictScope) ([]reservation.Booking, error)
	FindInProgressBySpace(ctx context.Context, spaceID uuid.UUID) (*reservation.Reservation, error)
	FindInProgressByVehicle(ctx context.Context, vehicleID uuid.UUID) (*reservation.Reservation, error)
	CountActiveBySpace(ctx context.Context, spaceID uuid.UUID) (int64, error)
	CountActiveByLot(ctx context.Context, lotID uuid.UUID) (int64, error)
}

type ParkingLotRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*parking.Lot, error)
	// LockByID takes the per-lot exclusive scope (SELECT ... FOR UPDATE).
	LockByID(ctx context.Context, id uuid.UUID) (*parking.Lot, error)
	AdjustCounters(ctx context.Context, lotID uuid.UUID, deltaTotal, deltaAvailable int) error
	SetCounters(ctx context.Context, lotID uuid.UUID, total, available int) error
	CountLiveSpaces(ctx context.Context, lotID uuid.UUID) (total, available int, err error)
}

type ParkingSpaceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*parking.Space, error)
	Create(ctx context.Context, space *parking.Space) error
	UpdateAvailability(ctx context.Context, space *parking.Space) error
	Deactivate(ctx context.Context, space *parking.Space) error
	DeactivateAllInLot(ctx context.Context, lotID uuid.UUID, at time.Time) (int64, error)
	ActiveNumberExists(ctx context.Context, lotID uuid.UUID, number string) (bool, error)
}

type FleetRepository interface {
	CreateVehicle(ctx context.Context, v *fleet.Vehicle) error
	CreateDriver(ctx context.Context, d *fleet.Driver) error
}

type IdempotencyRepository interface {
	// TryInsert claims the key unless an unexpired row already holds it.
	TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error
	MarkCompleted(ctx context.Context, key, userID, reservationID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}
