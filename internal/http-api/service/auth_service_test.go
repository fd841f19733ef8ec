package service

import (
	"context"
	"testing"
	"time"

	"cinelog/internal/http-api/apperr"
	"cinelog/internal/http-api/dto"
	"cinelog/internal/http-api/models"
	"cinelog/internal/middleware/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(users *mockUserRepo, tokens *mockTokenRepo) AuthService {
	return NewAuthService(users, tokens, "test-secret", 15*time.Minute, 7*24*time.Hour, testLogger())
}

func TestRegisterDuplicateUsername(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenRepo)
	svc := newAuthService(users, tokens)
	ctx := context.Background()

	users.On("FindByUsername", ctx, "neo").Return(&models.User{Username: "neo"}, nil)

	_, err := svc.Register(ctx, dto.RegisterDTO{
		FullName: "Thomas Anderson",
		Age:      35,
		Username: "neo",
		Email:    "neo@example.com",
		Password: "whiterabbit",
	})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterHashesPassword(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenRepo)
	svc := newAuthService(users, tokens)
	ctx := context.Background()

	users.On("FindByUsername", ctx, "neo").Return(nil, gorm.ErrRecordNotFound)
	users.On("FindByEmail", ctx, "neo@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.Password != "whiterabbit" && auth.VerifyPassword(u.Password, "whiterabbit") == nil &&
			u.Role == models.RoleUser
	})).Return(nil)

	resp, err := svc.Register(ctx, dto.RegisterDTO{
		FullName: "Thomas Anderson",
		Age:      35,
		Username: "neo",
		Email:    "neo@example.com",
		Password: "whiterabbit",
	})
	require.NoError(t, err)
	assert.Equal(t, "neo", resp.Username)
	users.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenRepo)
	svc := newAuthService(users, tokens)
	ctx := context.Background()

	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	users.On("FindByUsername", ctx, "neo").Return(&models.User{ID: "u1", Username: "neo", Password: hash}, nil)

	_, err = svc.Login(ctx, dto.LoginDTO{Username: "neo", Password: "wrong"})
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
	tokens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoginUnknownUserSameError(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenRepo)
	svc := newAuthService(users, tokens)
	ctx := context.Background()

	users.On("FindByUsername", ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)
	users.On("FindByEmail", ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(ctx, dto.LoginDTO{Username: "ghost", Password: "anything"})
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}

func TestLoginIssuesValidatableToken(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenRepo)
	svc := newAuthService(users, tokens)
	ctx := context.Background()

	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	user := &models.User{ID: "u1", Username: "neo", Role: models.RoleAdmin, Password: hash}
	users.On("FindByUsername", ctx, "neo").Return(user, nil)
	users.On("Update", ctx, user).Return(nil)
	tokens.On("Create", ctx, mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	resp, err := svc.Login(ctx, dto.LoginDTO{Username: "neo", Password: "correct-horse"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "neo", claims.Username)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestRefreshExpiredToken(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenRepo)
	svc := newAuthService(users, tokens)
	ctx := context.Background()

	stored := &models.RefreshToken{
		ID:        "rt1",
		UserID:    "u1",
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	tokens.On("FindByToken", ctx, "stale").Return(stored, nil)
	tokens.On("Delete", ctx, "rt1").Return(nil)

	_, err := svc.Refresh(ctx, "stale")
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
	tokens.AssertCalled(t, "Delete", ctx, "rt1")
}

func TestRefreshRotatesToken(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenRepo)
	svc := newAuthService(users, tokens)
	ctx := context.Background()

	stored := &models.RefreshToken{
		ID:        "rt1",
		UserID:    "u1",
		Token:     "live",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	tokens.On("FindByToken", ctx, "live").Return(stored, nil)
	users.On("FindByID", ctx, "u1").Return(&models.User{ID: "u1", Username: "neo"}, nil)
	tokens.On("Delete", ctx, "rt1").Return(nil)
	tokens.On("Create", ctx, mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	resp, err := svc.Refresh(ctx, "live")
	require.NoError(t, err)
	assert.NotEqual(t, "live", resp.RefreshToken)
	tokens.AssertExpectations(t)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newAuthService(new(mockUserRepo), new(mockTokenRepo))

	_, err := svc.ValidateToken("not-a-jwt")
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}
