//go:build unit || e2e

package builder

import (
	"time"

	"logipark/internal/domain/user"
	sqlc "logipark/internal/infra/sqlc/generated"
	"logipark/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         user.Role
	CompanyID    *uuid.UUID
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	companyID := uuid.New()
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "ops@transportes.com.br",
		PasswordHash: "hashed_password",
		Role:         user.RoleTransportadora,
		CompanyID:    &companyID,
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildCaller() user.Caller {
	return user.NewCaller(u.ID, u.Role, u.CompanyID)
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	var companyID pgtype.UUID
	if u.CompanyID != nil {
		companyID = pgtype.UUID{Bytes: *u.CompanyID, Valid: true}
	}

	return sqlc.Users{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role.String(),
		CompanyID:    companyID,
		LastLogin:    pgtype.Timestamptz{},
		IsActive:     u.IsActive,
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role.String(),
		CompanyID: u.CompanyID,
		IsActive:  u.IsActive,
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role user.Role) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = user.RoleAdmin
	u.CompanyID = nil
	return u
}

func (u *UserBuilder) AsOperator(lotCompanyID uuid.UUID) *UserBuilder {
	u.Role = user.RoleEstacionamento
	u.CompanyID = &lotCompanyID
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
