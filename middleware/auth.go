package middleware

import (
	"net/http"
	"strings"

	"bookwise/config"
	businessRepo "bookwise/database/repository/business"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// JWTAuthMiddleware validates the bearer token and stores the caller's user ID
// in the request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(config.AppConfig.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		userID, _ := claims["sub"].(string)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token missing subject"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// TenantMiddleware resolves the businessId query parameter and verifies the
// authenticated user is a member of that business. Every tenant-scoped route
// runs behind it; handlers read the verified business ID from the context.
func TenantMiddleware(businesses businessRepo.BusinessRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		businessID := c.Query("businessId")
		if businessID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "businessId required"})
			return
		}
		userID := c.GetString("userID")

		ok, err := businesses.IsMember(c.Request.Context(), businessID, userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to verify membership"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not a member of this business"})
			return
		}

		c.Set("businessID", businessID)
		c.Next()
	}
}
