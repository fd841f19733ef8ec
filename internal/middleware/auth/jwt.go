package auth

import (
	"net/http"
	"strings"

	"cinelog/internal/http-api/apperr"
	"cinelog/internal/http-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	CtxUserID   = "userID"
	CtxUsername = "username"
	CtxRole     = "role"
)

// AuthClaims is the JWT payload carried by every access token.
type AuthClaims struct {
	UserID   string `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenValidator is the slice of the auth service the middleware needs.
type TokenValidator interface {
	ValidateToken(tokenString string) (*AuthClaims, error)
}

// RequireAuth validates the Bearer token and stores the caller's
// identity in the gin context.
func RequireAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			unauthorized(c, "missing bearer token")
			return
		}

		claims, err := tokens.ValidateToken(token)
		if err != nil {
			unauthorized(c, "invalid or expired access token")
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUsername, claims.Username)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, apperr.ProblemDetails{
				Status:   http.StatusForbidden,
				Title:    "Forbidden",
				Detail:   "admin role required",
				Instance: c.Request.URL.Path,
			})
			return
		}
		c.Next()
	}
}

func unauthorized(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, apperr.ProblemDetails{
		Status:   http.StatusUnauthorized,
		Title:    "Unauthorized",
		Detail:   detail,
		Instance: c.Request.URL.Path,
	})
}
