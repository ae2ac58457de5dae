//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"logipark/internal/handler/middleware"
	"logipark/internal/pkg/config"
	"logipark/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)

	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	return r
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	t.Run("generates an id when none is sent", func(t *testing.T) {
		w := httptest.PerformRequest(t, newLoggedRouter(), http.MethodGet, "/", nil, "")

		id := w.Header().Get("X-Request-ID")
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("keeps the id sent by the client", func(t *testing.T) {
		w := httptest.PerformRequestWithHeaders(t, newLoggedRouter(), http.MethodGet, "/", nil,
			map[string]string{"X-Request-ID": "edge-42"}, "")

		assert.Equal(t, "edge-42", w.Header().Get("X-Request-ID"))
		assert.Equal(t, "edge-42", w.Body.String())
	})
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.CORSConfig{
		AllowOrigins:     []string{"http://yard.example.com"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Idempotency-Key"},
		ExposeHeaders:    []string{"Idempotent-Replayed"},
		AllowCredentials: true,
	}

	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/", nil,
		map[string]string{"Origin": "http://yard.example.com"}, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://yard.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Idempotent-Replayed")
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Request-Id")
}
