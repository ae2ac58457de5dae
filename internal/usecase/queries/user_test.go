//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"logipark/internal/infra"
	"logipark/internal/pkg/errs"
	"logipark/internal/usecase/queries"
	"logipark/tests/common/builder"
	queriesmock "logipark/tests/mock/queries"
)

func TestUserQueries_GetCurrentUser(t *testing.T) {
	t.Run("active user", func(t *testing.T) {
		u := builder.NewUserBuilder()
		store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(gomock.Any(), u.ID).Return(u.BuildReadModel(), nil).Times(1)

		got, err := queries.NewUserQueries(store).GetCurrentUser(context.Background(), u.ID)

		require.NoError(t, err)
		assert.Equal(t, u.Email, got.Email)
		assert.Equal(t, u.CompanyID, got.CompanyID)
	})

	t.Run("inactive user is forbidden", func(t *testing.T) {
		u := builder.NewUserBuilder().AsInactive()
		store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(gomock.Any(), u.ID).Return(u.BuildReadModel(), nil).Times(1)

		_, err := queries.NewUserQueries(store).GetCurrentUser(context.Background(), u.ID)

		assert.ErrorIs(t, err, queries.ErrUserInactive)
		assert.Equal(t, errs.KindForbidden, errs.KindOf(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		u := builder.NewUserBuilder()
		store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(gomock.Any(), u.ID).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)).Times(1)

		_, err := queries.NewUserQueries(store).GetCurrentUser(context.Background(), u.ID)

		assert.ErrorIs(t, err, queries.ErrUserNotFound)
	})

	t.Run("store failures pass through", func(t *testing.T) {
		u := builder.NewUserBuilder()
		boom := errs.New("connection reset")
		store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(gomock.Any(), u.ID).Return(nil, boom).Times(1)

		_, err := queries.NewUserQueries(store).GetCurrentUser(context.Background(), u.ID)

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, errs.KindInternal, errs.KindOf(err))
	})
}
