package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// AuthMiddleware validates the bearer token and resolves the calling user.
// Requests keep no state between each other; every call presents the token
// again and is scoped to the user it resolves to.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			unauthorized(c, "missing bearer token")
			return
		}

		userID, err := h.auth.Authenticate(token)
		if err != nil {
			unauthorized(c, "invalid or expired token")
			return
		}

		user, err := h.store.GetUserByID(userID)
		if err != nil {
			h.serverError(c, err)
			c.Abort()
			return
		}
		if user == nil {
			unauthorized(c, "unknown user")
			return
		}

		c.Set(userIDKey, user.ID)
		c.Next()
	}
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

func currentUserID(c *gin.Context) int {
	return c.GetInt(userIDKey)
}
