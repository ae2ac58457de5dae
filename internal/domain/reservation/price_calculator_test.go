//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"logipark/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCost(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		rate     int64
		want     string
	}{
		{"two hours at 15.00", 2 * time.Hour, 1500, "30.00"},
		{"ninety minutes at 15.00", 90 * time.Minute, 1500, "22.50"},
		{"twenty minutes at 10.00 rounds", 20 * time.Minute, 1000, "3.33"},
		{"forty minutes at 10.00 rounds up", 40 * time.Minute, 1000, "6.67"},
		{"half cent rounds away from zero", 90 * time.Minute, 1999, "29.99"},
		{"zero rate", 3 * time.Hour, 0, "0.00"},
		{"zero duration", 0, 1500, "0.00"},
		{"negative duration", -time.Hour, 1500, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reservation.ComputeCost(base, base.Add(tt.duration), reservation.MustMoney(tt.rate))
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		cents   int64
		wantErr bool
	}{
		{"15", 1500, false},
		{"15.5", 1550, false},
		{"15.50", 1550, false},
		{"0.07", 7, false},
		{"15.", 0, true},
		{"15.505", 0, true},
		{"abc", 0, true},
		{"-3.00", 0, true},
		{"-0.50", 0, true},
		{"+1.00", 0, true},
		{"1.-5", 0, true},
		{"1.+5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := reservation.ParseMoney(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, reservation.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cents, got.Cents())
		})
	}
}
