//go:build unit

package errs_test

import (
	"fmt"
	"testing"

	"logipark/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	errVehicleMissing := errs.NewKind("vehicle not found", errs.ErrNotFound)

	tests := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{"nil", nil, ""},
		{"sentinel", errVehicleMissing, errs.KindNotFound},
		{"wrapped sentinel", errs.Wrap(errVehicleMissing, "create reservation"), errs.KindNotFound},
		{"fmt wrapped", fmt.Errorf("outer: %w", errs.NewKind("overlap", errs.ErrConflict)), errs.KindConflict},
		{"marked after the fact", errs.Mark(errs.New("tx begin"), errs.ErrUnavailable), errs.KindUnavailable},
		{"plain", errs.New("boom"), errs.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.KindOf(tt.err))
		})
	}
}

func TestIs_SentinelSurvivesWrapping(t *testing.T) {
	errSpaceTaken := errs.NewKind("space taken", errs.ErrConflict)
	wrapped := errs.Wrapf(errSpaceTaken, "space %s", "A-01")

	assert.True(t, errs.Is(wrapped, errSpaceTaken))
	assert.True(t, errs.Is(wrapped, errs.ErrConflict))
	assert.False(t, errs.Is(wrapped, errs.ErrNotFound))
}
