//go:build unit

package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logipark/internal/domain/reservation"
	"logipark/internal/pkg/config"
	"logipark/internal/pkg/errs"
	"logipark/internal/usecase/commands"
	"logipark/tests/common/memstore"
)

var (
	testNow   = time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC)
	slotStart = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	slotEnd   = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
)

type harness struct {
	*memstore.World
	reservations commands.ReservationCommands
	occupancy    commands.OccupancyCommands
	inventory    commands.InventoryCommands
	fleet        commands.FleetCommands
}

func newHarness(t *testing.T, spaces int) *harness {
	t.Helper()
	w := memstore.NewWorld(testNow, spaces, reservation.MustMoney(1500))
	services := &reservation.Services{
		Clock:           w.Clock,
		PriceCalculator: reservation.NewHourlyPriceCalculator(),
	}
	ledger := commands.NewSpaceLedger(w.Clock)
	cfg := config.NewTestConfig().Booking

	return &harness{
		World:        w,
		reservations: commands.NewReservationCommands(w.Store, ledger, services, cfg),
		occupancy:    commands.NewOccupancyCommands(w.Store, ledger, services, cfg),
		inventory:    commands.NewInventoryCommands(w.Store, ledger),
		fleet:        commands.NewFleetCommands(w.Store, w.Clock),
	}
}

func (h *harness) bookingInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		CompanyID:    h.Carrier.ID,
		VehicleID:    h.Vehicle.ID,
		DriverID:     h.Driver.ID,
		ParkingLotID: h.Lot.ID,
		StartTime:    slotStart,
		EndTime:      slotEnd,
	}
}

func (h *harness) assertNoViolations(t *testing.T) {
	t.Helper()
	assert.Empty(t, h.Store.Violations())
}

func assertKind(t *testing.T, err error, kind error) {
	t.Helper()
	require.Error(t, err)
	assert.Truef(t, errs.Is(err, kind), "want kind %v, got %v", kind, err)
}

func ptr[T any](v T) *T { return &v }
