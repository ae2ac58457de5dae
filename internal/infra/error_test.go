//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"logipark/internal/infra"
	"logipark/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr_Classifies(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantKind       infra.RepositoryErrorKind
		wantConstraint string
	}{
		{"unique", &pgconn.PgError{Code: "23505", ConstraintName: "vehicles_license_plate_key"}, infra.KindDuplicateKey, "vehicles_license_plate_key"},
		{"foreign key", &pgconn.PgError{Code: "23503", ConstraintName: "reservations_vehicle_id_fkey"}, infra.KindForeignKeyViolated, "reservations_vehicle_id_fkey"},
		{"exclusion", &pgconn.PgError{Code: "23P01", ConstraintName: "reservations_space_no_overlap"}, infra.KindExclusionViolated, "reservations_space_no_overlap"},
		{"serialization", &pgconn.PgError{Code: "40001"}, infra.KindSerializationFailed, ""},
		{"other", errors.New("conn reset"), infra.KindDBFailure, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op", tt.err)
			assert.True(t, infra.IsKind(err, tt.wantKind))
			assert.Equal(t, tt.wantConstraint, infra.ConstraintOf(err))
		})
	}
}

func TestWrapRepoErr_ExplicitKindWins(t *testing.T) {
	err := infra.WrapRepoErr("vehicle not found", errors.New("no rows"), infra.KindNotFound)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.False(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestWrapRepoErr_KeepsPgErrorReachable(t *testing.T) {
	err := infra.WrapRepoErr("update", &pgconn.PgError{Code: "40001"})

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))
	assert.Equal(t, "40001", pgErr.Code)
}

func TestWrapRepoErr_StorageFailureIsUnavailable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     []infra.RepositoryErrorKind
		wantKind errs.Kind
	}{
		{"dropped connection", errors.New("conn closed"), nil, errs.KindUnavailable},
		{"unmapped pg code", &pgconn.PgError{Code: "53300"}, nil, errs.KindUnavailable},
		{"duplicate key", &pgconn.PgError{Code: "23505", ConstraintName: "vehicles_license_plate_key"}, nil, errs.KindInternal},
		{"not found", errors.New("no rows"), []infra.RepositoryErrorKind{infra.KindNotFound}, errs.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op", tt.err, tt.kind...)
			assert.Equal(t, tt.wantKind, errs.KindOf(err))
		})
	}

	t.Run("repository kind survives the mark", func(t *testing.T) {
		err := infra.WrapRepoErr("op", errors.New("conn closed"))
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.True(t, errs.Is(err, errs.ErrUnavailable))
	})
}
