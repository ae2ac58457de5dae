//go:build unit || e2e

package builder

import (
	"logipark/internal/domain/auth"
	reqdto "logipark/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "ops@transportes.com.br",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

// BuildCredentials panics on invalid input; tests only build valid credentials with it.
func (a *AuthBuilder) BuildCredentials() auth.Credentials {
	creds, err := auth.NewCredentials(a.Email, a.Password)
	if err != nil {
		panic(err)
	}
	return creds
}
