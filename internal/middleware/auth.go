package middleware

import (
	"net/http"
	"strings"

	"food_ordering/internal/models"
	"food_ordering/pkg/token"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// Authenticate validates the bearer token and places the resulting Actor in
// the request context.
func Authenticate(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		actor, err := tokens.Parse(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// ActorFromContext returns the authenticated actor placed by Authenticate.
func ActorFromContext(c *gin.Context) (models.Actor, bool) {
	val, exists := c.Get(actorKey)
	if !exists {
		return models.Actor{}, false
	}
	actor, ok := val.(models.Actor)
	return actor, ok
}
