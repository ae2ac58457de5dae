//go:build unit

package memstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"logipark/internal/domain/company"
	"logipark/internal/domain/fleet"
	"logipark/internal/domain/parking"
	"logipark/internal/domain/reservation"
	"logipark/internal/infra"
	"logipark/internal/usecase/shared"
)

type memTx struct {
	store *Store
	st    *State
}

func (t *memTx) Reservations() shared.ReservationRepository   { return reservationRepo{t} }
func (t *memTx) Lots() shared.ParkingLotRepository            { return lotRepo{t} }
func (t *memTx) Spaces() shared.ParkingSpaceRepository        { return spaceRepo{t} }
func (t *memTx) Fleet() shared.FleetRepository                { return fleetRepo{t} }
func (t *memTx) Idempotency() shared.IdempotencyRepository    { return idempotencyRepo{t} }
func (t *memTx) Notifications() shared.NotificationRepository { return notificationRepo{t} }
func (t *memTx) Users() shared.UserRepository                 { return userRepo{t} }
func (t *memTx) Reads() shared.CommandReads                   { return commandReads{t} }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func violation(kind infra.RepositoryErrorKind, constraint string) error {
	return infra.RepositoryError{Kind: kind, Constraint: constraint}
}

// reservations

type reservationRepo struct{ *memTx }

func (r reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	if err := r.store.fault("Reservations.Create"); err != nil {
		return err
	}
	if _, ok := r.st.Reservations[res.ID()]; ok {
		return violation(infra.KindDuplicateKey, "reservations_pkey")
	}
	r.st.Reservations[res.ID()] = res.Record()
	return nil
}

func (r reservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	if err := r.store.fault("Reservations.Update"); err != nil {
		return err
	}
	if _, ok := r.st.Reservations[res.ID()]; !ok {
		return notFound("reservation not found")
	}
	r.st.Reservations[res.ID()] = res.Record()
	return nil
}

func (r reservationRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	rec, ok := r.st.Reservations[id]
	if !ok {
		return nil, notFound("reservation not found")
	}
	return reservation.ReconstructReservation(rec), nil
}

func (r reservationRepo) ListActiveInScope(_ context.Context, scope shared.ConflictScope) ([]reservation.Booking, error) {
	var out []reservation.Booking
	for _, rec := range r.st.Reservations {
		if !rec.Status.IsActive() {
			continue
		}
		sameSpace := scope.SpaceID != nil && rec.ParkingSpaceID != nil && *scope.SpaceID == *rec.ParkingSpaceID
		if rec.VehicleID == scope.VehicleID || rec.DriverID == scope.DriverID || sameSpace {
			out = append(out, reservation.ReconstructReservation(rec).Booking())
		}
	}
	return out, nil
}

func (r reservationRepo) findInProgress(match func(reservation.Record) bool) (*reservation.Reservation, error) {
	for _, rec := range r.st.Reservations {
		if rec.Status == reservation.StatusInProgress && match(rec) {
			return reservation.ReconstructReservation(rec), nil
		}
	}
	return nil, notFound("no reservation in progress")
}

func (r reservationRepo) FindInProgressBySpace(_ context.Context, spaceID uuid.UUID) (*reservation.Reservation, error) {
	return r.findInProgress(func(rec reservation.Record) bool {
		return rec.ParkingSpaceID != nil && *rec.ParkingSpaceID == spaceID
	})
}

func (r reservationRepo) FindInProgressByVehicle(_ context.Context, vehicleID uuid.UUID) (*reservation.Reservation, error) {
	return r.findInProgress(func(rec reservation.Record) bool {
		return rec.VehicleID == vehicleID
	})
}

func (r reservationRepo) CountActiveBySpace(_ context.Context, spaceID uuid.UUID) (int64, error) {
	var n int64
	for _, rec := range r.st.Reservations {
		if rec.Status.IsActive() && rec.ParkingSpaceID != nil && *rec.ParkingSpaceID == spaceID {
			n++
		}
	}
	return n, nil
}

func (r reservationRepo) CountActiveByLot(_ context.Context, lotID uuid.UUID) (int64, error) {
	var n int64
	for _, rec := range r.st.Reservations {
		if rec.Status.IsActive() && rec.ParkingLotID == lotID && rec.ParkingSpaceID != nil {
			n++
		}
	}
	return n, nil
}

// parking lots

type lotRepo struct{ *memTx }

func (r lotRepo) FindByID(_ context.Context, id uuid.UUID) (*parking.Lot, error) {
	row, ok := r.st.Lots[id]
	if !ok {
		return nil, notFound("parking lot not found")
	}
	return parking.ReconstructLot(row.ID, row.CompanyID, row.Name, row.PricePerHour,
		row.TotalSpaces, row.AvailableSpaces, row.IsActive, row.UpdatedAt), nil
}

func (r lotRepo) LockByID(ctx context.Context, id uuid.UUID) (*parking.Lot, error) {
	return r.FindByID(ctx, id)
}

func (r lotRepo) AdjustCounters(ctx context.Context, lotID uuid.UUID, deltaTotal, deltaAvailable int) error {
	row, ok := r.st.Lots[lotID]
	if !ok {
		return notFound("parking lot not found")
	}
	return r.SetCounters(ctx, lotID, row.TotalSpaces+deltaTotal, row.AvailableSpaces+deltaAvailable)
}

func (r lotRepo) SetCounters(_ context.Context, lotID uuid.UUID, total, available int) error {
	row, ok := r.st.Lots[lotID]
	if !ok {
		return notFound("parking lot not found")
	}
	if total < 0 || available < 0 || available > total {
		return violation(infra.KindCheckViolated, "parking_lots_counters_check")
	}
	row.TotalSpaces = total
	row.AvailableSpaces = available
	row.UpdatedAt = r.store.clock.Now()
	r.st.Lots[lotID] = row
	return nil
}

func (r lotRepo) CountLiveSpaces(_ context.Context, lotID uuid.UUID) (int, int, error) {
	var total, available int
	for _, sp := range r.st.Spaces {
		if sp.LotID != lotID || !sp.IsActive {
			continue
		}
		total++
		if sp.IsAvailable {
			available++
		}
	}
	return total, available, nil
}

// parking spaces

type spaceRepo struct{ *memTx }

func toSpace(row SpaceRow) *parking.Space {
	return parking.ReconstructSpace(row.ID, row.LotID, row.Number, row.Type,
		row.IsAvailable, row.IsActive, row.CreatedAt, row.UpdatedAt)
}

func fromSpace(sp *parking.Space) SpaceRow {
	return SpaceRow{
		ID:          sp.ID(),
		LotID:       sp.LotID(),
		Number:      sp.Number(),
		Type:        sp.Type(),
		IsAvailable: sp.IsAvailable(),
		IsActive:    sp.IsActive(),
		CreatedAt:   sp.CreatedAt(),
		UpdatedAt:   sp.UpdatedAt(),
	}
}

func (r spaceRepo) FindByID(_ context.Context, id uuid.UUID) (*parking.Space, error) {
	row, ok := r.st.Spaces[id]
	if !ok {
		return nil, notFound("parking space not found")
	}
	return toSpace(row), nil
}

func (r spaceRepo) Create(ctx context.Context, sp *parking.Space) error {
	exists, _ := r.ActiveNumberExists(ctx, sp.LotID(), sp.Number())
	if exists {
		return violation(infra.KindDuplicateKey, "parking_spaces_lot_number_active_key")
	}
	r.st.Spaces[sp.ID()] = fromSpace(sp)
	return nil
}

func (r spaceRepo) UpdateAvailability(_ context.Context, sp *parking.Space) error {
	if err := r.store.fault("Spaces.UpdateAvailability"); err != nil {
		return err
	}
	row, ok := r.st.Spaces[sp.ID()]
	if !ok {
		return notFound("parking space not found")
	}
	row.IsAvailable = sp.IsAvailable()
	row.UpdatedAt = sp.UpdatedAt()
	r.st.Spaces[sp.ID()] = row
	return nil
}

func (r spaceRepo) Deactivate(_ context.Context, sp *parking.Space) error {
	row, ok := r.st.Spaces[sp.ID()]
	if !ok {
		return notFound("parking space not found")
	}
	row.IsActive = false
	row.UpdatedAt = sp.UpdatedAt()
	r.st.Spaces[sp.ID()] = row
	return nil
}

func (r spaceRepo) DeactivateAllInLot(_ context.Context, lotID uuid.UUID, at time.Time) (int64, error) {
	var n int64
	for id, row := range r.st.Spaces {
		if row.LotID == lotID && row.IsActive {
			row.IsActive = false
			row.UpdatedAt = at
			r.st.Spaces[id] = row
			n++
		}
	}
	return n, nil
}

func (r spaceRepo) ActiveNumberExists(_ context.Context, lotID uuid.UUID, number string) (bool, error) {
	for _, row := range r.st.Spaces {
		if row.LotID == lotID && row.IsActive && row.Number == number {
			return true, nil
		}
	}
	return false, nil
}

// fleet

type fleetRepo struct{ *memTx }

func (r fleetRepo) CreateVehicle(_ context.Context, v *fleet.Vehicle) error {
	for _, row := range r.st.Vehicles {
		if row.Plate == v.Plate() {
			return violation(infra.KindDuplicateKey, "vehicles_license_plate_key")
		}
	}
	r.st.Vehicles[v.ID()] = VehicleRow{
		ID:        v.ID(),
		CompanyID: v.CompanyID(),
		DriverID:  v.DriverID(),
		Plate:     v.Plate(),
		Type:      v.Type(),
		IsActive:  v.IsActive(),
		CreatedAt: v.CreatedAt(),
	}
	return nil
}

func (r fleetRepo) CreateDriver(_ context.Context, d *fleet.Driver) error {
	for _, row := range r.st.Drivers {
		if row.LicenseNumber == d.LicenseNumber() {
			return violation(infra.KindDuplicateKey, "drivers_license_number_key")
		}
	}
	r.st.Drivers[d.ID()] = DriverRow{
		ID:            d.ID(),
		CompanyID:     d.CompanyID(),
		Name:          d.Name(),
		LicenseNumber: d.LicenseNumber(),
		Phone:         d.Phone(),
		IsActive:      d.IsActive(),
		CreatedAt:     d.CreatedAt(),
	}
	return nil
}

// idempotency

type idempotencyRepo struct{ *memTx }

func (r idempotencyRepo) TryInsert(_ context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error {
	k := idempotencyKey{key: key, userID: userID}
	if cur, ok := r.st.idempotency[k]; ok && cur.ExpiresAt.After(r.store.clock.Now()) {
		return nil
	}
	r.st.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return nil
}

func (r idempotencyRepo) MarkCompleted(_ context.Context, key, userID, reservationID uuid.UUID) error {
	k := idempotencyKey{key: key, userID: userID}
	rec, ok := r.st.idempotency[k]
	if !ok {
		return notFound("idempotency key not found")
	}
	rec.Status = shared.IdempotencyStatusCompleted
	rec.ResultReservationID = &reservationID
	r.st.idempotency[k] = rec
	return nil
}

// notifications

type notificationRepo struct{ *memTx }

func (r notificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	if err := r.store.fault("Notifications.CreateJob"); err != nil {
		return err
	}
	r.st.Jobs = append(r.st.Jobs, JobRow{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}

// users

type userRepo struct{ *memTx }

func (r userRepo) UpdateLastLogin(_ context.Context, userID uuid.UUID, at time.Time) error {
	if err := r.store.fault("Users.UpdateLastLogin"); err != nil {
		return err
	}
	row, ok := r.st.Users[userID]
	if !ok {
		return notFound("user not found")
	}
	row.LastLogin = &at
	r.st.Users[userID] = row
	return nil
}

// command reads

type commandReads struct{ *memTx }

func (r commandReads) CompanyByID(_ context.Context, id uuid.UUID) (*company.Company, error) {
	row, ok := r.st.Companies[id]
	if !ok {
		return nil, notFound("company not found")
	}
	return company.ReconstructCompany(row.ID, row.Name, row.Type, row.IsActive), nil
}

func toVehicle(row VehicleRow) *fleet.Vehicle {
	return fleet.ReconstructVehicle(row.ID, row.CompanyID, row.DriverID, row.Plate, row.Type, row.IsActive, row.CreatedAt)
}

func (r commandReads) VehicleByID(_ context.Context, id uuid.UUID) (*fleet.Vehicle, error) {
	row, ok := r.st.Vehicles[id]
	if !ok {
		return nil, notFound("vehicle not found")
	}
	return toVehicle(row), nil
}

func (r commandReads) VehicleByPlate(_ context.Context, plate fleet.LicensePlate) (*fleet.Vehicle, error) {
	for _, row := range r.st.Vehicles {
		if row.Plate == plate {
			return toVehicle(row), nil
		}
	}
	return nil, notFound("vehicle not found")
}

func (r commandReads) DriverByID(_ context.Context, id uuid.UUID) (*fleet.Driver, error) {
	row, ok := r.st.Drivers[id]
	if !ok {
		return nil, notFound("driver not found")
	}
	return fleet.ReconstructDriver(row.ID, row.CompanyID, row.Name, row.LicenseNumber, row.Phone, row.IsActive, row.CreatedAt), nil
}

func (r commandReads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.st.idempotency[idempotencyKey{key: key, userID: userID}]
	if !ok {
		return nil, notFound("idempotency key not found")
	}
	return &rec, nil
}
