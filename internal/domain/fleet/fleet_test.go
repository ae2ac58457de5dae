//go:build unit

package fleet_test

import (
	"testing"
	"time"

	"logipark/internal/domain/fleet"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePlate(t *testing.T) {
	tests := map[string]string{
		"abc-1234":  "ABC1234",
		"ABC 1234":  "ABC1234",
		" abc1d23 ": "ABC1D23",
		"ç-abc1234": "ABC1234",
		"":          "",
	}
	for in, want := range tests {
		assert.Equal(t, want, fleet.NormalizePlate(in), in)
	}
}

func TestNewLicensePlate(t *testing.T) {
	p, err := fleet.NewLicensePlate("brA-2e19")
	require.NoError(t, err)
	assert.Equal(t, fleet.LicensePlate("BRA2E19"), p)

	_, err = fleet.NewLicensePlate("a-1")
	assert.ErrorIs(t, err, fleet.ErrInvalidPlate)
}

func TestNewDriver(t *testing.T) {
	companyID := uuid.New()
	d, err := fleet.NewDriver(companyID, " Joao Silva ", "sp-123456", "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Joao Silva", d.Name())
	assert.Equal(t, "SP-123456", d.LicenseNumber())
	assert.True(t, d.BelongsTo(companyID))
	assert.True(t, d.IsActive())

	_, err = fleet.NewDriver(companyID, "", "X1", "", time.Now())
	assert.ErrorIs(t, err, fleet.ErrInvalidDriver)
}

func TestParseVehicleType(t *testing.T) {
	vt, err := fleet.ParseVehicleType("bitruck")
	require.NoError(t, err)
	assert.Equal(t, fleet.VehicleTypeBitruck, vt)

	_, err = fleet.ParseVehicleType("boat")
	assert.ErrorIs(t, err, fleet.ErrInvalidVehicleType)
}
