package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"logipark/internal/domain/user"
	"logipark/internal/handler/httperr"
	"logipark/internal/handler/middleware"
	"logipark/internal/pkg/errs"
)

var errMissingCaller = errs.New("caller missing from context")

// mustCaller aborts with 500 when the route was not wrapped in RequireAuth.
func mustCaller(c *gin.Context) (user.Caller, bool) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingCaller, "Internal server error", nil)
		return user.Caller{}, false
	}
	return caller, true
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}
