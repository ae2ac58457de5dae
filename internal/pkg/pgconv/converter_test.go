//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"

	"logipark/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentsFromNumeric(t *testing.T) {
	tests := []struct {
		name string
		in   pgtype.Numeric
		want int64
	}{
		{"two decimals", pgtype.Numeric{Int: big.NewInt(3000), Exp: -2, Valid: true}, 3000},
		{"integer with positive exponent", pgtype.Numeric{Int: big.NewInt(15), Exp: 0, Valid: true}, 1500},
		{"one decimal", pgtype.Numeric{Int: big.NewInt(155), Exp: -1, Valid: true}, 1550},
		{"trailing precision truncated", pgtype.Numeric{Int: big.NewInt(12345), Exp: -3, Valid: true}, 1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pgconv.CentsFromNumeric(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := pgconv.CentsFromNumeric(pgtype.Numeric{})
	assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)
}

func TestCentsToNumeric(t *testing.T) {
	n := pgconv.CentsToNumeric(2999)
	got, err := pgconv.CentsFromNumeric(n)
	require.NoError(t, err)
	assert.Equal(t, int64(2999), got)
}
