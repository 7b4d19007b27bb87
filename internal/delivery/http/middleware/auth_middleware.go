package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer credential and resolves it to a live
// profile. Missing, malformed, or expired tokens, unknown profiles, and
// deactivated accounts all yield 401 - there is no partial-trust mode.
func AuthMiddleware(issuer *auth.TokenIssuer, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := issuer.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		// Resolve against the store; the token alone is not enough
		profile, err := authUC.GetProfileByID(c.Request.Context(), claims.Subject)
		if err != nil || profile == nil {
			response.Error(c, http.StatusUnauthorized, "Account not found", nil)
			c.Abort()
			return
		}
		if !profile.IsActive {
			response.Error(c, http.StatusUnauthorized, "Account is deactivated", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyProfileID), profile.ID)
		c.Set(string(domain.KeyPhone), profile.Phone)

		// Typed keys live on the request context so usecases can read them
		// from a plain context.Context
		ctx := context.WithValue(c.Request.Context(), domain.KeyProfileID, profile.ID)
		ctx = context.WithValue(ctx, domain.KeyPhone, profile.Phone)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
