package middleware

import (
	"net/http"
	"os"
	"strings"

	"backend/internal/apperror"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// GetJWTSecret reads the signing secret from the environment with a
// development-only fallback.
func GetJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			panic("FATAL: JWT_SECRET environment variable is required in production mode")
		}
		secret = "default_super_secret_key" // Development fallback only — DO NOT use in production
	}
	return []byte(secret)
}

// RequireAuth validates the bearer token and stores the authenticated user id
// in the request context.
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization is missing")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Invalid authorization format. Expected 'Bearer <token>'")
			return
		}

		payload, err := auth.VerifyToken(parts[1])
		if err != nil {
			abortUnauthorized(c, apperror.From(err).Message)
			return
		}

		c.Set("userID", payload.UserID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	err := apperror.Unauthorized(message, nil)
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(err, c.Request.URL.Path))
}
