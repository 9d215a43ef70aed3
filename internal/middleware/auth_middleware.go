package middleware

import (
	"net/http"
	"strings"

	"github.com/eyesdeal/eyesdeal-backend/internal/errors"
	"github.com/eyesdeal/eyesdeal-backend/pkg/util"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the Bearer token and loads identity claims
// into the request context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthUnauthorized, "Authorization token is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "Authorization header must be a Bearer token")
			c.Abort()
			return
		}

		claims, err := util.ValidateToken(parts[1], jwtSecret)
		if err != nil {
			code := errors.AuthTokenInvalid
			message := "Invalid authorization token"
			if err == util.ErrExpiredToken {
				code = errors.AuthTokenExpired
				message = "Authorization token has expired"
			}
			errors.RespondWithError(c, http.StatusUnauthorized, code, message)
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_type", claims.Type)

		c.Next()
	}
}

// RequireType restricts the route to users of the given type.
func RequireType(userType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_type") != userType {
			errors.Forbidden(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}
