package queries

import (
	"context"

	"github.com/google/uuid"

	"logipark/internal/infra"
	"logipark/internal/pkg/errs"
)

var (
	ErrUserNotFound = errs.NewKind("user not found", errs.ErrNotFound)
	ErrUserInactive = errs.NewKind("user inactive", errs.ErrForbidden)
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	// FindByEmail also returns the bcrypt hash.
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{readStore: readStore}
}

// GetCurrentUser resolves the caller behind a token. A token can outlive its
// user, so a deactivated account is rejected here as well as at login.
func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(ErrUserNotFound, "user %s", userID)
		}
		return nil, errs.Wrap(err, "failed to load current user")
	}

	if !view.IsActive {
		return nil, errs.Wrapf(ErrUserInactive, "user %s", userID)
	}

	return view, nil
}
