package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"logipark/internal/domain/auth"
	"logipark/internal/domain/user"
	"logipark/internal/pkg/clock"
	"logipark/internal/pkg/errs"
	"logipark/internal/pkg/jwt"
	"logipark/internal/pkg/password"
	"logipark/internal/usecase/queries"
	"logipark/internal/usecase/shared"
)

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	CompanyID   *uuid.UUID
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error) {
	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(view.ID, role, view.CompanyID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, view.ID, a.clock.Now())
	})
	if err != nil {
		// the token is already issued; a stale last_login is acceptable
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:      view.ID,
		Role:        role,
		CompanyID:   view.CompanyID,
		AccessToken: token,
	}, nil
}

// validateUser answers every failure with the same error so emails cannot be enumerated.
func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.AuthorizedUserView, error) {
	view, hashed, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil || view == nil {
		return nil, auth.ErrInvalidCredentials
	}
	if !view.IsActive {
		return nil, auth.ErrInvalidCredentials
	}
	if err := password.Compare(hashed, credentials.Password().Value()); err != nil {
		return nil, auth.ErrInvalidCredentials
	}
	return view, nil
}
