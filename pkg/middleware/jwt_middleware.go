package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"voyago/pkg/utils"
)

// JWTAuthMiddleware guards the trip-record routes. Session issuance lives with
// the auth provider; this only validates the bearer token and exposes the
// owning account id to handlers.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil || claims.AccountID == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("account_id", claims.AccountID)
		c.Next()
	}
}
