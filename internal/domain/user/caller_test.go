//go:build unit

package user_test

import (
	"strings"
	"testing"

	"logipark/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	tests := []struct {
		in      string
		want    user.Role
		wantErr bool
	}{
		{"ADMIN", user.RoleAdmin, false},
		{"TRANSPORTADORA", user.RoleTransportadora, false},
		{"ESTACIONAMENTO", user.RoleEstacionamento, false},
		{"admin", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := user.NewRole(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, user.ErrInvalidRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCaller_ActsFor(t *testing.T) {
	companyID := uuid.New()
	other := uuid.New()

	carrier := user.NewCaller(uuid.New(), user.RoleTransportadora, &companyID)
	admin := user.NewCaller(uuid.New(), user.RoleAdmin, nil)

	assert.True(t, carrier.ActsFor(companyID))
	assert.False(t, carrier.ActsFor(other))
	assert.True(t, carrier.IsCompanyUser(user.RoleTransportadora, companyID))
	assert.False(t, carrier.IsCompanyUser(user.RoleEstacionamento, companyID))

	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.ActsFor(companyID))
}

func TestNewEmail(t *testing.T) {
	email, err := user.NewEmail("  Ops@Patio.com.br ")
	require.NoError(t, err)
	assert.Equal(t, "ops@patio.com.br", email.Value())

	_, err = user.NewEmail("not-an-email")
	assert.ErrorIs(t, err, user.ErrInvalidEmail)
}

func TestRole_RequiresCompany(t *testing.T) {
	assert.False(t, user.RoleAdmin.RequiresCompany())
	assert.True(t, user.RoleTransportadora.RequiresCompany())
	assert.True(t, user.RoleEstacionamento.RequiresCompany())
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	_, err = user.NewPassword(strings.Repeat("p", 73))
	assert.ErrorIs(t, err, user.ErrPasswordTooLong)

	p, err := user.NewPassword(strings.Repeat("p", 72))
	require.NoError(t, err)
	assert.Len(t, p.Value(), 72)
}
