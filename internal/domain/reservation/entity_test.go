//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"logipark/internal/domain/reservation"
	"logipark/internal/pkg/clock"
	"logipark/internal/pkg/errs"
	"logipark/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func services(now time.Time) *reservation.Services {
	return &reservation.Services{
		Clock:           clock.NewMockClock(now),
		PriceCalculator: reservation.NewHourlyPriceCalculator(),
	}
}

var lot = reservation.LotSpec{ID: uuid.New(), PricePerHour: reservation.MustMoney(1500)}

func TestNewReservation(t *testing.T) {
	svc := services(base.Add(-48 * time.Hour))
	res := reservation.NewReservation(svc, reservation.NewReservationParams{
		Lot:       lot,
		CompanyID: uuid.New(),
		VehicleID: uuid.New(),
		DriverID:  uuid.New(),
		Slot:      slot(t, 0, 2),
	})

	assert.NotEqual(t, uuid.Nil, res.ID())
	assert.Equal(t, reservation.StatusPending, res.Status())
	assert.Equal(t, reservation.PaymentPending, res.PaymentStatus())
	assert.Equal(t, "30.00", res.TotalCost().String())
	assert.Nil(t, res.ParkingSpaceID())
	assert.Nil(t, res.ActualArrival())
	assert.False(t, res.IsProvisional())
}

func TestReservation_TransitionTo(t *testing.T) {
	now := at(0).Add(5 * time.Minute)

	t.Run("stamps arrival and departure once", func(t *testing.T) {
		res := builder.NewReservationBuilder().BuildDomain()

		require.NoError(t, res.TransitionTo(reservation.StatusConfirmed, reservation.ActorOperator, now))
		assert.Nil(t, res.ActualArrival())

		require.NoError(t, res.TransitionTo(reservation.StatusInProgress, reservation.ActorOperator, now))
		require.NotNil(t, res.ActualArrival())
		assert.Equal(t, now, *res.ActualArrival())

		later := now.Add(2 * time.Hour)
		require.NoError(t, res.TransitionTo(reservation.StatusCompleted, reservation.ActorAdmin, later))
		require.NotNil(t, res.ActualDeparture())
		assert.Equal(t, later, *res.ActualDeparture())
		assert.Equal(t, now, *res.ActualArrival())
	})

	t.Run("keeps explicit arrival", func(t *testing.T) {
		arrival := at(0)
		res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Status = reservation.StatusConfirmed
			b.ActualArrival = &arrival
		}).BuildDomain()

		require.NoError(t, res.TransitionTo(reservation.StatusInProgress, reservation.ActorOperator, now))
		assert.Equal(t, arrival, *res.ActualArrival())
	})

	t.Run("completed is final", func(t *testing.T) {
		res := builder.NewReservationBuilder().WithStatus(reservation.StatusCompleted).BuildDomain()
		err := res.TransitionTo(reservation.StatusCompleted, reservation.ActorAdmin, now)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidState))
		assert.Equal(t, reservation.StatusCompleted, res.Status())
	})

	t.Run("owner cannot confirm", func(t *testing.T) {
		res := builder.NewReservationBuilder().BuildDomain()
		err := res.TransitionTo(reservation.StatusConfirmed, reservation.ActorOwner, now)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
		assert.Equal(t, reservation.StatusPending, res.Status())
	})
}

func TestReservation_Reschedule(t *testing.T) {
	res := builder.NewReservationBuilder().BuildDomain()
	calc := reservation.NewHourlyPriceCalculator()

	newSlot := slot(t, 0, 3)
	require.NoError(t, res.Reschedule(newSlot, lot, calc, at(-1)))
	assert.Equal(t, "45.00", res.TotalCost().String())
	assert.Equal(t, calc.ComputeCost(res.TimeSlot(), lot.PricePerHour), res.TotalCost())

	cancelled := builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled).BuildDomain()
	err := cancelled.Reschedule(newSlot, lot, calc, at(-1))
	require.ErrorIs(t, err, reservation.ErrTerminal)
	assert.Contains(t, err.Error(), "CANCELLED")
}

func TestReservation_WalkUpAndSettle(t *testing.T) {
	arrival := at(0)
	svc := services(arrival)

	res, err := reservation.NewWalkUp(svc, reservation.WalkUpParams{
		Lot:       lot,
		CompanyID: uuid.New(),
		VehicleID: uuid.New(),
		DriverID:  uuid.New(),
		SpaceID:   uuid.New(),
		Horizon:   24 * time.Hour,
	})
	require.NoError(t, err)

	assert.Equal(t, reservation.StatusInProgress, res.Status())
	assert.True(t, res.IsProvisional())
	assert.True(t, res.TotalCost().IsZero())
	assert.Equal(t, arrival.Add(24*time.Hour), res.TimeSlot().End())
	require.NotNil(t, res.ActualArrival())

	departure := arrival.Add(90 * time.Minute)
	require.NoError(t, res.TransitionTo(reservation.StatusCompleted, reservation.ActorOperator, departure))
	require.NoError(t, res.Settle(lot, departure))

	assert.False(t, res.IsProvisional())
	assert.Equal(t, departure, res.TimeSlot().End())
	assert.Equal(t, "22.50", res.TotalCost().String())

	_, err = reservation.NewWalkUp(svc, reservation.WalkUpParams{Lot: lot, SpaceID: uuid.New()})
	assert.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)
}

func TestReservation_SettleRequiresCompleted(t *testing.T) {
	res := builder.NewReservationBuilder().WithStatus(reservation.StatusInProgress).BuildDomain()
	err := res.Settle(lot, at(3))
	assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
}

func TestReservation_RecordRoundTrip(t *testing.T) {
	notes := "needs a reefer plug"
	spaceID := uuid.New()
	b := builder.NewReservationBuilder().WithSpace(spaceID).With(func(b *builder.ReservationBuilder) {
		b.SpecialRequests = &notes
	})

	res := b.BuildDomain()
	assert.Equal(t, b.Record(), res.Record())
	assert.Equal(t, notes, res.SpecialRequests().String())
	assert.Equal(t, spaceID, *res.Booking().SpaceID)
}
