// auth.go - JWT authentication and admin authorization middleware
//
// Auth validates the bearer token and stores the caller's identity in the
// request context. RequireAdmin layers a role check on top; it is always
// used after Auth, never instead of it.

package middleware

import (
	"net/http"
	"strings"

	"go-ecommerce-backend/auth"
	"go-ecommerce-backend/models"

	"github.com/gin-gonic/gin"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// Auth returns middleware that extracts and verifies the bearer token
// from the Authorization header. On any failure the request is aborted
// with 401 before the protected handler runs.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims, err := auth.Verify(secret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin returns middleware that rejects non-admin callers with 403.
// The role comes from the verified token claims stored by Auth, so no
// database lookup is needed here.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// UserID reads the authenticated caller's id from the context. The bool
// is false when Auth did not run on this route.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(CtxUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// IsAdmin reports whether the authenticated caller carries the admin role.
func IsAdmin(c *gin.Context) bool {
	role, exists := c.Get(CtxRole)
	return exists && role == models.RoleAdmin
}
