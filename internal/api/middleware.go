package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderpk/tour-booking-backend/internal/auth"
	"github.com/wanderpk/tour-booking-backend/internal/user"
)

// RequireAdmin ensures the authenticated user carries the admin flag.
// It MUST be used after auth.AuthRequired middleware. The flag on the
// user row is the authorization boundary; the ADMIN_EMAILS allowlist
// only feeds that flag at login and is never consulted here.
func RequireAdmin(userService user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		u, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		if !u.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}

		c.Next()
	}
}
