package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const ContextKeyUserRole = "user_role"

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(ContextKeyUserRole)
		if userRole != string(RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CanAccessResourceByOwnerID reports whether a caller may touch a resource
// owned by resourceOwnerID. Admins may touch anything.
func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}
