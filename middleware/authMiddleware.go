package middleware

import (
	"net/http"
	"strings"

	"github.com/Sri-Charith/AI-HealthVault/helpers"
	"github.com/gin-gonic/gin"
)

// Context keys set for authenticated requests.
const (
	ContextUserID    = "user_id"
	ContextEmail     = "email"
	ContextFirstName = "first_name"
)

// Authentication verifies the bearer token and stores the caller's identity
// in the gin context. Every private route runs behind this.
func Authentication(tokens *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := c.GetHeader("Authorization")
		if clientToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no authorization header provided"})
			return
		}
		clientToken = strings.TrimPrefix(clientToken, "Bearer ")

		claims, err := tokens.ValidateToken(clientToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextFirstName, claims.FirstName)
		c.Next()
	}
}
