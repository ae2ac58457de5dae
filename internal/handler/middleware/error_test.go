//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"logipark/internal/handler/httperr"
	"logipark/internal/handler/middleware"
	"logipark/internal/pkg/errs"
	"logipark/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	return r
}

func TestErrorHandler(t *testing.T) {
	t.Run("renders the newest public error response", func(t *testing.T) {
		r := newErrorRouter()
		r.GET("/", func(c *gin.Context) {
			older := httperr.Response{Status: http.StatusBadRequest}
			older.Error.Message = "older"
			_ = c.Error(&gin.Error{Err: errors.New("a"), Type: gin.ErrorTypePublic, Meta: older})

			newer := httperr.Response{Status: http.StatusConflict}
			newer.Error.Message = "newer"
			_ = c.Error(&gin.Error{Err: errors.New("b"), Type: gin.ErrorTypePublic, Meta: newer})
		})

		w := httptest.PerformRequest(t, r, http.MethodGet, "/", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "newer")
	})

	t.Run("maps a private error through its kind", func(t *testing.T) {
		r := newErrorRouter()
		r.GET("/", func(c *gin.Context) {
			_ = c.Error(errs.NewKind("parking lot not found", errs.ErrNotFound))
		})

		w := httptest.PerformRequest(t, r, http.MethodGet, "/", nil, "")
		body := httptest.DecodeErrorBody(t, w)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", body.Error.Kind)
	})

	t.Run("leaves written responses alone", func(t *testing.T) {
		r := newErrorRouter()
		r.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusAccepted, gin.H{"ok": true})
			_ = c.Error(errors.New("late"))
		})

		w := httptest.PerformRequest(t, r, http.MethodGet, "/", nil, "")
		assert.Equal(t, http.StatusAccepted, w.Code)
	})
}

func TestCustomRecovery(t *testing.T) {
	r := newErrorRouter()
	r.GET("/", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.PerformRequest(t, r, http.MethodGet, "/", nil, "")
	httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
}
