//go:build unit

package parking_test

import (
	"testing"
	"time"

	"logipark/internal/domain/parking"
	"logipark/internal/domain/reservation"
	"logipark/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

func newLot(total, available int) *parking.Lot {
	return parking.ReconstructLot(uuid.New(), uuid.New(), "Patio Norte", reservation.MustMoney(1500), total, available, true, now)
}

func TestLot_Adjust(t *testing.T) {
	tests := []struct {
		name           string
		total, avail   int
		dTotal, dAvail int
		wantErr        bool
		wantT, wantA   int
	}{
		{"add available space", 2, 1, 1, 1, false, 3, 2},
		{"add occupied space", 2, 1, 1, 0, false, 3, 1},
		{"occupy", 2, 1, 0, -1, false, 2, 0},
		{"occupy beyond zero", 2, 0, 0, -1, true, 2, 0},
		{"free beyond total", 2, 2, 0, 1, true, 2, 2},
		{"remove last space", 1, 1, -1, -1, false, 0, 0},
		{"remove occupied space keeps available", 2, 1, -1, 0, false, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lot := newLot(tt.total, tt.avail)
			err := lot.Adjust(tt.dTotal, tt.dAvail)
			if tt.wantErr {
				require.ErrorIs(t, err, parking.ErrCounterOutOfRange)
				assert.True(t, errs.Is(err, errs.ErrInvalidState))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantT, lot.TotalSpaces())
			assert.Equal(t, tt.wantA, lot.AvailableSpaces())
		})
	}
}

func TestSpace_SetAvailable(t *testing.T) {
	space, err := parking.NewSpace(uuid.New(), "A-01", parking.SpaceTypeTruck, true, now)
	require.NoError(t, err)

	changed, err := space.SetAvailable(true, now)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = space.SetAvailable(false, now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, space.IsAvailable())

	require.NoError(t, space.Deactivate(now))
	_, err = space.SetAvailable(true, now)
	assert.ErrorIs(t, err, parking.ErrSpaceInactive)
	assert.ErrorIs(t, space.Deactivate(now), parking.ErrSpaceInactive)
}

func TestNewSpace_Validation(t *testing.T) {
	_, err := parking.NewSpace(uuid.New(), "  ", parking.SpaceTypeTruck, true, now)
	assert.ErrorIs(t, err, parking.ErrInvalidSpaceNumber)

	_, err = parking.NewSpace(uuid.New(), "B-01", parking.SpaceType("BOAT"), true, now)
	assert.ErrorIs(t, err, parking.ErrInvalidSpaceType)

	st, err := parking.ParseSpaceType(" trailer ")
	require.NoError(t, err)
	assert.Equal(t, parking.SpaceTypeTrailer, st)
}

func TestGenerationPlan(t *testing.T) {
	t.Run("numbers each group", func(t *testing.T) {
		plan, err := parking.NewGenerationPlan(4, []parking.SpaceGroup{
			{Type: parking.SpaceTypeTruck, Count: 3, Prefix: "T-", StartIndex: 1},
			{Type: parking.SpaceTypeTrailer, Count: 1, Prefix: "R-", StartIndex: 100},
		})
		require.NoError(t, err)

		specs, err := plan.Specs()
		require.NoError(t, err)
		assert.Equal(t, []parking.SpaceSpec{
			{Number: "T-01", Type: parking.SpaceTypeTruck},
			{Number: "T-02", Type: parking.SpaceTypeTruck},
			{Number: "T-03", Type: parking.SpaceTypeTruck},
			{Number: "R-100", Type: parking.SpaceTypeTrailer},
		}, specs)
	})

	t.Run("counts must sum to total", func(t *testing.T) {
		_, err := parking.NewGenerationPlan(5, []parking.SpaceGroup{
			{Type: parking.SpaceTypeTruck, Count: 3, Prefix: "T-", StartIndex: 1},
		})
		require.ErrorIs(t, err, parking.ErrPlanTotalMismatch)
		assert.True(t, errs.Is(err, errs.ErrInvalidState))
	})

	t.Run("overlapping groups collide", func(t *testing.T) {
		plan, err := parking.NewGenerationPlan(4, []parking.SpaceGroup{
			{Type: parking.SpaceTypeTruck, Count: 2, Prefix: "A", StartIndex: 1},
			{Type: parking.SpaceTypeVan, Count: 2, Prefix: "A", StartIndex: 2},
		})
		require.NoError(t, err)

		_, err = plan.Specs()
		require.ErrorIs(t, err, parking.ErrDuplicateSpaceNumber)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("negative count", func(t *testing.T) {
		_, err := parking.NewGenerationPlan(0, []parking.SpaceGroup{
			{Type: parking.SpaceTypeTruck, Count: -1, Prefix: "A", StartIndex: 1},
			{Type: parking.SpaceTypeTruck, Count: 1, Prefix: "B", StartIndex: 1},
		})
		assert.ErrorIs(t, err, parking.ErrInvalidPlan)
	})
}
