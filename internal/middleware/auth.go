package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"wellnest-be/internal/auth"
	"wellnest-be/internal/user"
)

const currentUserKey = "currentUser"

// Authenticate validates the bearer token and re-fetches the account by id so
// a token for a deleted account is rejected even before natural expiry.
func Authenticate(tokens *auth.TokenManager, users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := auth.ExtractAccessToken(c.Request)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			return
		}

		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		u, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		c.Set(currentUserKey, u)
		c.Next()
	}
}

// CurrentUser returns the authenticated account set by Authenticate.
func CurrentUser(c *gin.Context) *user.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*user.User)
	return u
}

// RequireAdmin rejects authenticated callers without the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil || !u.Role.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// RequirePharmacist admits pharmacists and admins; pharmacist capability is a
// strict subset of admin's.
func RequirePharmacist() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil || !u.Role.CanReview() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Pharmacist access required"})
			return
		}
		c.Next()
	}
}
