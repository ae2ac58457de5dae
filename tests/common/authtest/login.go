//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"logipark/internal/handler/dto/request"
	resdto "logipark/internal/handler/dto/response"
	"logipark/tests/common/dbtest"
	"logipark/tests/common/httptest"

	"github.com/stretchr/testify/require"
)

const loginPath = "/api/auth/login"

// Session is what a successful login hands back to a test.
type Session struct {
	Token string
	User  *resdto.UserResponse
}

// LoginUser logs in through the HTTP API and checks that the cookie and body agree on the token.
func LoginUser(t *testing.T, router http.Handler, email, password string) Session {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, loginPath,
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body resdto.LoginResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))

	cookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, cookie, "login did not set the access_token cookie")
	require.Equal(t, body.AccessToken, cookie.Value)

	return Session{Token: body.AccessToken, User: body.User}
}

// CreateAndLogin inserts a user with dbtest.TestPassword and logs in as them.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router http.Handler, email, role string) Session {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, dbtest.TestPassword)
}
