//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"logipark/internal/domain/user"
	"logipark/internal/pkg/jwt"
	"logipark/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	validator := usecase.NewTokenValidator(svc)

	t.Run("rebuilds the caller from the claims", func(t *testing.T) {
		userID, companyID := uuid.New(), uuid.New()
		token, err := svc.GenerateToken(userID, user.RoleTransportadora, &companyID)
		require.NoError(t, err)

		caller, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.NewCaller(userID, user.RoleTransportadora, &companyID), caller)
	})

	t.Run("admins carry no company", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), user.RoleAdmin, nil)
		require.NoError(t, err)

		caller, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.True(t, caller.IsAdmin())
		assert.Nil(t, caller.CompanyID)
	})

	t.Run("rejects a company role without a company", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), user.RoleEstacionamento, nil)
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, user.ErrMissingCompany)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), user.Role("DRIVER"), nil)
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("passes jwt errors through", func(t *testing.T) {
		_, err := validator.ValidateToken("garbage")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
