//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logipark/internal/domain/reservation"
	"logipark/internal/domain/user"
	"logipark/internal/pkg/errs"
	"logipark/internal/usecase/commands"
	"logipark/tests/common/memstore"
)

func TestOccupyAndFreeSpace(t *testing.T) {
	h := newHarness(t, 3)
	ctx := context.Background()
	spaceID := h.Spaces[0].ID

	id, err := h.occupancy.OccupySpace(ctx, h.OperatorCaller, spaceID, "abc-1d23")
	require.NoError(t, err)

	rec := h.Reservation(id)
	assert.Equal(t, reservation.StatusInProgress, rec.Status)
	assert.True(t, rec.Provisional)
	assert.Zero(t, rec.TotalCostCents)
	assert.Equal(t, h.Vehicle.ID, rec.VehicleID)
	assert.Equal(t, h.Driver.ID, rec.DriverID)
	assert.Equal(t, h.Carrier.ID, rec.CompanyID)
	assert.Equal(t, testNow, rec.StartTime)
	assert.Equal(t, testNow.Add(24*time.Hour), rec.EndTime)
	assert.False(t, h.SpaceRow(spaceID).IsAvailable)
	assert.Equal(t, 2, h.LotRow().AvailableSpaces)
	h.assertNoViolations(t)

	h.Clock.Add(3 * time.Hour)
	freedID, err := h.occupancy.FreeSpace(ctx, h.OperatorCaller, spaceID)
	require.NoError(t, err)
	assert.Equal(t, id, freedID)

	rec = h.Reservation(id)
	assert.Equal(t, reservation.StatusCompleted, rec.Status)
	assert.False(t, rec.Provisional)
	assert.Equal(t, int64(4500), rec.TotalCostCents)
	require.NotNil(t, rec.ActualDeparture)
	assert.Equal(t, h.Clock.Now(), *rec.ActualDeparture)
	assert.Equal(t, h.Clock.Now(), rec.EndTime)
	assert.True(t, h.SpaceRow(spaceID).IsAvailable)
	assert.Equal(t, 3, h.LotRow().AvailableSpaces)
	assert.Len(t, h.Jobs("reservation_created"), 1)
	assert.Len(t, h.Jobs("reservation_status_changed"), 1)
	h.assertNoViolations(t)
}

func TestOccupySpace_ByVehicleID(t *testing.T) {
	h := newHarness(t, 3)

	id, err := h.occupancy.OccupySpace(context.Background(), h.OperatorCaller, h.Spaces[1].ID, h.Vehicle.ID.String())
	require.NoError(t, err)
	assert.Equal(t, h.Vehicle.ID, h.Reservation(id).VehicleID)
}

func TestOccupySpace_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		prepare  func(t *testing.T, h *harness) (caller user.Caller, vehicleRef string)
		wantKind error
		wantErr  error
	}{
		{
			name: "space bound by a pending reservation in the window",
			prepare: func(t *testing.T, h *harness) (user.Caller, string) {
				h.bookOnSpace(t)
				d := h.AddDriver("CNH0002")
				h.AddVehicle("ABC1234", &d.ID)
				return h.OperatorCaller, "ABC1234"
			},
			wantKind: errs.ErrConflict,
		},
		{
			name: "space already occupied",
			prepare: func(t *testing.T, h *harness) (user.Caller, string) {
				_, err := h.occupancy.OccupySpace(context.Background(), h.OperatorCaller, h.Spaces[0].ID, "ABC1D23")
				require.NoError(t, err)
				d := h.AddDriver("CNH0002")
				h.AddVehicle("ABC1234", &d.ID)
				return h.OperatorCaller, "ABC1234"
			},
			wantKind: errs.ErrConflict,
			wantErr:  commands.ErrSpaceOccupied,
		},
		{
			name: "vehicle already parked elsewhere",
			prepare: func(t *testing.T, h *harness) (user.Caller, string) {
				_, err := h.occupancy.OccupySpace(context.Background(), h.OperatorCaller, h.Spaces[1].ID, "ABC1D23")
				require.NoError(t, err)
				return h.OperatorCaller, "ABC1D23"
			},
			wantKind: errs.ErrConflict,
			wantErr:  commands.ErrVehicleAlreadyParked,
		},
		{
			name: "vehicle without driver",
			prepare: func(_ *testing.T, h *harness) (user.Caller, string) {
				h.AddVehicle("NODRV01", nil)
				return h.OperatorCaller, "NODRV01"
			},
			wantKind: errs.ErrInvalidState,
			wantErr:  commands.ErrVehicleWithoutDriver,
		},
		{
			name: "vehicle whose driver left",
			prepare: func(_ *testing.T, h *harness) (user.Caller, string) {
				h.Store.Mutate(func(st *memstore.State) {
					d := st.Drivers[h.Driver.ID]
					d.IsActive = false
					st.Drivers[d.ID] = d
				})
				return h.OperatorCaller, "ABC1D23"
			},
			wantKind: errs.ErrInvalidState,
			wantErr:  commands.ErrVehicleWithoutDriver,
		},
		{
			name: "unknown plate",
			prepare: func(_ *testing.T, h *harness) (user.Caller, string) {
				return h.OperatorCaller, "ZZZ9999"
			},
			wantKind: errs.ErrNotFound,
			wantErr:  commands.ErrVehicleNotFound,
		},
		{
			name: "carrier cannot operate spaces",
			prepare: func(_ *testing.T, h *harness) (user.Caller, string) {
				return h.CarrierCaller, "ABC1D23"
			},
			wantKind: errs.ErrForbidden,
			wantErr:  commands.ErrRoleNotAllowed,
		},
		{
			name: "operator of another lot",
			prepare: func(_ *testing.T, h *harness) (user.Caller, string) {
				other := uuid.New()
				return user.NewCaller(uuid.New(), user.RoleEstacionamento, &other), "ABC1D23"
			},
			wantKind: errs.ErrForbidden,
			wantErr:  commands.ErrLotAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, 3)
			caller, ref := tt.prepare(t, h)

			var before int
			h.Store.Read(func(st *memstore.State) { before = len(st.Reservations) })
			lotBefore := h.LotRow()

			_, err := h.occupancy.OccupySpace(context.Background(), caller, h.Spaces[0].ID, ref)
			assertKind(t, err, tt.wantKind)
			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
			}

			h.Store.Read(func(st *memstore.State) { assert.Len(t, st.Reservations, before) })
			assert.Equal(t, lotBefore, h.LotRow())
			h.assertNoViolations(t)
		})
	}
}

func TestFreeSpace_NothingParked(t *testing.T) {
	h := newHarness(t, 3)

	_, err := h.occupancy.FreeSpace(context.Background(), h.OperatorCaller, h.Spaces[0].ID)
	assertKind(t, err, errs.ErrNotFound)
	assert.True(t, errs.Is(err, commands.ErrNoActiveOccupancy))
	assert.Equal(t, 3, h.LotRow().AvailableSpaces)
}
