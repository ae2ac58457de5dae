package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"logipark/internal/domain/user"
	"logipark/internal/pkg/cookie"
	"logipark/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxCallerKey = "caller"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortJSON(c, http.StatusUnauthorized, "Access token required")
			return
		}

		caller, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			abortJSON(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		SetCaller(c, caller)
		c.Next()
	}
}

// RequireRoles must run after RequireAuth.
func (m *AuthMiddleware) RequireRoles(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			abortJSON(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		if !slices.Contains(roles, caller.Role) {
			abortJSON(c, http.StatusForbidden, "Insufficient permissions")
			return
		}

		c.Next()
	}
}

// cookie first, then the Authorization header
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func abortJSON(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{"message": msg},
	})
}

// SetCaller stores the authenticated identity and the claims the request logger reads.
func SetCaller(c *gin.Context, caller user.Caller) {
	c.Set(ctxCallerKey, caller)
	claims := map[string]any{
		"user_id": caller.ID.String(),
		"role":    caller.Role.String(),
	}
	if caller.CompanyID != nil {
		claims["company_id"] = caller.CompanyID.String()
	}
	c.Set("jwt_claims", claims)
}

func GetCaller(c *gin.Context) (user.Caller, bool) {
	v, exists := c.Get(ctxCallerKey)
	if !exists {
		return user.Caller{}, false
	}

	caller, ok := v.(user.Caller)
	return caller, ok
}
