package middleware

import (
	"strconv"
	"strings"

	"fleetdesk/utils"

	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware extracts the requesting user's id from a bearer token when
// one is present. Requests without a valid token proceed as anonymous; the fleet
// pipeline then resolves zero allowed categories for them.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.Next()
			return
		}

		sub, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.Next()
			return
		}
		userID, err := strconv.ParseInt(sub, 10, 64)
		if err != nil || userID <= 0 {
			c.Next()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
