//go:build unit

// Package memstore is an in-memory shared.UnitOfWork for command tests.
// One mutex serializes transactions; a failed transaction restores the
// snapshot taken when it began.
package memstore

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"logipark/internal/domain/company"
	"logipark/internal/domain/fleet"
	"logipark/internal/domain/parking"
	"logipark/internal/domain/reservation"
	"logipark/internal/domain/user"
	"logipark/internal/pkg/clock"
	"logipark/internal/usecase/shared"
)

type CompanyRow struct {
	ID       uuid.UUID
	Name     string
	Type     company.Type
	IsActive bool
}

type UserRow struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         user.Role
	CompanyID    *uuid.UUID
	IsActive     bool
	LastLogin    *time.Time
}

type VehicleRow struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	DriverID  *uuid.UUID
	Plate     fleet.LicensePlate
	Type      fleet.VehicleType
	IsActive  bool
	CreatedAt time.Time
}

type DriverRow struct {
	ID            uuid.UUID
	CompanyID     uuid.UUID
	Name          string
	LicenseNumber string
	Phone         string
	IsActive      bool
	CreatedAt     time.Time
}

type LotRow struct {
	ID              uuid.UUID
	CompanyID       uuid.UUID
	Name            string
	PricePerHour    reservation.Money
	TotalSpaces     int
	AvailableSpaces int
	IsActive        bool
	UpdatedAt       time.Time
}

type SpaceRow struct {
	ID          uuid.UUID
	LotID       uuid.UUID
	Number      string
	Type        parking.SpaceType
	IsAvailable bool
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type JobRow struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type idempotencyKey struct {
	key    uuid.UUID
	userID uuid.UUID
}

// State holds every table. Tests seed and inspect it through Store.Mutate and Store.Read.
type State struct {
	Companies    map[uuid.UUID]CompanyRow
	Users        map[uuid.UUID]UserRow
	Vehicles     map[uuid.UUID]VehicleRow
	Drivers      map[uuid.UUID]DriverRow
	Lots         map[uuid.UUID]LotRow
	Spaces       map[uuid.UUID]SpaceRow
	Reservations map[uuid.UUID]reservation.Record
	Jobs         []JobRow

	idempotency map[idempotencyKey]shared.IdempotencyRecord
}

func newState() *State {
	return &State{
		Companies:    map[uuid.UUID]CompanyRow{},
		Users:        map[uuid.UUID]UserRow{},
		Vehicles:     map[uuid.UUID]VehicleRow{},
		Drivers:      map[uuid.UUID]DriverRow{},
		Lots:         map[uuid.UUID]LotRow{},
		Spaces:       map[uuid.UUID]SpaceRow{},
		Reservations: map[uuid.UUID]reservation.Record{},
		idempotency:  map[idempotencyKey]shared.IdempotencyRecord{},
	}
}

func (s *State) clone() *State {
	return &State{
		Companies:    maps.Clone(s.Companies),
		Users:        maps.Clone(s.Users),
		Vehicles:     maps.Clone(s.Vehicles),
		Drivers:      maps.Clone(s.Drivers),
		Lots:         maps.Clone(s.Lots),
		Spaces:       maps.Clone(s.Spaces),
		Reservations: maps.Clone(s.Reservations),
		Jobs:         append([]JobRow(nil), s.Jobs...),
		idempotency:  maps.Clone(s.idempotency),
	}
}

// JobsByTopic returns the outbox rows written for topic, oldest first.
func (s *State) JobsByTopic(topic string) []JobRow {
	var out []JobRow
	for _, j := range s.Jobs {
		if j.Topic == topic {
			out = append(out, j)
		}
	}
	return out
}

type Store struct {
	mu     sync.Mutex
	state  *State
	clock  clock.Clock
	faults map[string]error

	Commits   int
	Rollbacks int
}

var _ shared.UnitOfWork = (*Store)(nil)

func New(clk clock.Clock) *Store {
	return &Store{
		state:  newState(),
		clock:  clk,
		faults: map[string]error{},
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	snapshot := s.state.clone()
	tx := &memTx{store: s, st: s.state}
	if err := fn(ctx, tx); err != nil {
		s.state = snapshot
		s.Rollbacks++
		return err
	}
	s.Commits++
	return nil
}

// Mutate runs fn against the committed state, outside any transaction.
func (s *Store) Mutate(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

func (s *Store) Read(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

// FailOn makes every call to op (e.g. "Notifications.CreateJob") return err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[op] = err
}

func (s *Store) fault(op string) error {
	return s.faults[op]
}
