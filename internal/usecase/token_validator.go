package usecase

import (
	"logipark/internal/domain/user"
	"logipark/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into the caller identity used by commands and queries.
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Caller, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Caller, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Caller{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Caller{}, err
	}

	if role.RequiresCompany() && claims.CompanyID == nil {
		return user.Caller{}, user.ErrMissingCompany
	}

	return user.NewCaller(claims.UserID, role, claims.CompanyID), nil
}
