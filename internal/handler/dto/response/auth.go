package response

import (
	"time"

	"github.com/google/uuid"
	"gopkg.in/guregu/null.v4"

	"logipark/internal/usecase/queries"
)

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CompanyID *uuid.UUID `json:"company_id"`
	IsActive  bool       `json:"is_active"`
	LastLogin null.Time  `json:"last_login" swaggertype:"string"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresAt   time.Time     `json:"expires_at"`
	User        *UserResponse `json:"user"`
}

func FromAuthorizedUserView(v *queries.AuthorizedUserView) (*UserResponse, error) {
	var resp UserResponse
	if err := copyFrom(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}
