//go:build unit

package memstore

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"logipark/internal/domain/company"
	"logipark/internal/domain/fleet"
	"logipark/internal/domain/parking"
	"logipark/internal/domain/reservation"
	"logipark/internal/domain/user"
	"logipark/internal/pkg/clock"
)

// World is a seeded store: one carrier with a vehicle and a driver, one
// operator running a lot with N spaces, and a caller for each role.
type World struct {
	Store *Store
	Clock *clock.MockClock

	Carrier  CompanyRow
	Operator CompanyRow
	Lot      LotRow
	Spaces   []SpaceRow
	Vehicle  VehicleRow
	Driver   DriverRow

	CarrierCaller  user.Caller
	OperatorCaller user.Caller
	AdminCaller    user.Caller
}

func NewWorld(now time.Time, spaces int, pricePerHour reservation.Money) *World {
	clk := clock.NewMockClock(now)
	w := &World{Store: New(clk), Clock: clk}

	w.Carrier = CompanyRow{ID: uuid.New(), Name: "Transportes Rota Sul", Type: company.TypeTransportadora, IsActive: true}
	w.Operator = CompanyRow{ID: uuid.New(), Name: "Patio Anhanguera", Type: company.TypeEstacionamento, IsActive: true}
	w.Lot = LotRow{
		ID:              uuid.New(),
		CompanyID:       w.Operator.ID,
		Name:            "Patio Km 42",
		PricePerHour:    pricePerHour,
		TotalSpaces:     spaces,
		AvailableSpaces: spaces,
		IsActive:        true,
		UpdatedAt:       now,
	}
	for i := 1; i <= spaces; i++ {
		w.Spaces = append(w.Spaces, SpaceRow{
			ID:          uuid.New(),
			LotID:       w.Lot.ID,
			Number:      fmt.Sprintf("A%02d", i),
			Type:        parking.SpaceTypeTruck,
			IsAvailable: true,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	w.Store.Mutate(func(st *State) {
		st.Companies[w.Carrier.ID] = w.Carrier
		st.Companies[w.Operator.ID] = w.Operator
		st.Lots[w.Lot.ID] = w.Lot
		for _, sp := range w.Spaces {
			st.Spaces[sp.ID] = sp
		}
	})

	w.Driver = w.AddDriver("CNH0001")
	w.Vehicle = w.AddVehicle("ABC1D23", &w.Driver.ID)

	w.CarrierCaller = user.NewCaller(uuid.New(), user.RoleTransportadora, &w.Carrier.ID)
	w.OperatorCaller = user.NewCaller(uuid.New(), user.RoleEstacionamento, &w.Operator.ID)
	w.AdminCaller = user.NewCaller(uuid.New(), user.RoleAdmin, nil)
	return w
}

func (w *World) AddDriver(license string) DriverRow {
	d := DriverRow{
		ID:            uuid.New(),
		CompanyID:     w.Carrier.ID,
		Name:          "Motorista " + license,
		LicenseNumber: license,
		IsActive:      true,
		CreatedAt:     w.Clock.Now(),
	}
	w.Store.Mutate(func(st *State) { st.Drivers[d.ID] = d })
	return d
}

func (w *World) AddVehicle(plate string, driverID *uuid.UUID) VehicleRow {
	v := VehicleRow{
		ID:        uuid.New(),
		CompanyID: w.Carrier.ID,
		DriverID:  driverID,
		Plate:     fleet.LicensePlate(fleet.NormalizePlate(plate)),
		Type:      fleet.VehicleTypeTruck,
		IsActive:  true,
		CreatedAt: w.Clock.Now(),
	}
	w.Store.Mutate(func(st *State) { st.Vehicles[v.ID] = v })
	return v
}

func (w *World) LotRow() LotRow {
	var row LotRow
	w.Store.Read(func(st *State) { row = st.Lots[w.Lot.ID] })
	return row
}

func (w *World) SpaceRow(id uuid.UUID) SpaceRow {
	var row SpaceRow
	w.Store.Read(func(st *State) { row = st.Spaces[id] })
	return row
}

func (w *World) Reservation(id uuid.UUID) reservation.Record {
	var rec reservation.Record
	w.Store.Read(func(st *State) { rec = st.Reservations[id] })
	return rec
}

func (w *World) Jobs(topic string) []JobRow {
	var jobs []JobRow
	w.Store.Read(func(st *State) { jobs = st.JobsByTopic(topic) })
	return jobs
}

// Violations lists every broken storage invariant: lot counters that
// disagree with the live spaces, and active reservations that overlap on a
// shared vehicle, driver or space.
func (s *Store) Violations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []string
	for _, lot := range s.state.Lots {
		total, available := 0, 0
		for _, sp := range s.state.Spaces {
			if sp.LotID == lot.ID && sp.IsActive {
				total++
				if sp.IsAvailable {
					available++
				}
			}
		}
		if lot.TotalSpaces != total || lot.AvailableSpaces != available {
			out = append(out, fmt.Sprintf("lot %s counters %d/%d, live spaces %d/%d",
				lot.ID, lot.AvailableSpaces, lot.TotalSpaces, available, total))
		}
	}

	var active []reservation.Booking
	for _, rec := range s.state.Reservations {
		if rec.Status.IsActive() {
			active = append(active, reservation.ReconstructReservation(rec).Booking())
		}
	}
	for i, b := range active {
		if err := reservation.FindConflict(b, active[i+1:]); err != nil {
			out = append(out, fmt.Sprintf("reservation %s: %v", b.ReservationID, err))
		}
	}
	return out
}
