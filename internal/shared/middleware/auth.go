package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"contenthub-backend/internal/shared"
	"contenthub-backend/internal/shared/response"
	"contenthub-backend/pkg/jwt"
)

const actorKey = "actor"

// AuthMiddleware verifies the bearer token and stores the caller's
// identity in the request context.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "invalid user id in token")
			c.Abort()
			return
		}

		c.Set(actorKey, shared.Actor{
			ID:    userID,
			Email: claims.Email,
			Role:  claims.Role,
		})

		c.Next()
	}
}

// RequirePublisher allows only authors and admins through.
func RequirePublisher() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok || !actor.IsPublisher() {
			response.Forbidden(c, "author role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetActor returns the authenticated caller set by AuthMiddleware.
func GetActor(c *gin.Context) (shared.Actor, bool) {
	v, exists := c.Get(actorKey)
	if !exists {
		return shared.Actor{}, false
	}
	actor, ok := v.(shared.Actor)
	return actor, ok
}
