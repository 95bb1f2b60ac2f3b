package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/knotapp/circle-management-backend/config"
)

// MemberResolver maps an authenticated user id onto their circle membership.
// Implemented by the member service; declared here to avoid an import cycle.
type MemberResolver interface {
	ResolveAccess(userID string) (memberID uint, circleID uint, roleName string, err error)
}

// AuthMiddleware validates the bearer token issued by the external auth
// provider and sets up the access context. Authentication itself (signup,
// login, refresh) lives outside this service.
func AuthMiddleware(cfg *config.Config, members MemberResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header"})
			return
		}

		tokenStr := parts[1]
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTAccessSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}

		userID, ok := claims["sub"].(string)
		if !ok || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sub missing in token"})
			return
		}

		memberID, circleID, roleName, err := members.ResolveAccess(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "member not found"})
			return
		}

		accessContext := AccessContext{
			UserID:   userID,
			MemberID: memberID,
			CircleID: circleID,
			RoleName: roleName,
		}

		c.Set("access_context", accessContext)
		c.Set("user_id", userID)

		c.Next()
	}
}

// GetAccessContext pulls the access context set by AuthMiddleware.
func GetAccessContext(c *gin.Context) (AccessContext, bool) {
	accessContextRaw, exists := c.Get("access_context")
	if !exists {
		return AccessContext{}, false
	}
	accessContext, ok := accessContextRaw.(AccessContext)
	return accessContext, ok
}
