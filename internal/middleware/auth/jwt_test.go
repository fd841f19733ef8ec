package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cinelog/internal/http-api/apperr"
	"cinelog/internal/http-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubValidator struct {
	claims *AuthClaims
	err    error
}

func (s *stubValidator) ValidateToken(string) (*AuthClaims, error) {
	return s.claims, s.err
}

func newAuthRouter(v TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", RequireAuth(v), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(CtxUserID),
			"role":    c.GetString(CtxRole),
		})
	})
	r.GET("/admin", RequireAuth(v), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequireAuthMissingHeader(t *testing.T) {
	r := newAuthRouter(&stubValidator{claims: &AuthClaims{UserID: "u1"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsInvalidToken(t *testing.T) {
	r := newAuthRouter(&stubValidator{err: apperr.Unauthenticated("invalid or expired access token")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthSetsIdentity(t *testing.T) {
	r := newAuthRouter(&stubValidator{claims: &AuthClaims{UserID: "u1", Username: "neo", Role: models.RoleUser}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestRequireAdminBlocksRegularUser(t *testing.T) {
	r := newAuthRouter(&stubValidator{claims: &AuthClaims{UserID: "u1", Role: models.RoleUser}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	r := newAuthRouter(&stubValidator{claims: &AuthClaims{UserID: "u1", Role: models.RoleAdmin}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
