package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cinelog/internal/http-api/apperr"
	"cinelog/internal/http-api/dto"
	"cinelog/internal/http-api/models"
	"cinelog/internal/http-api/repository"
	"cinelog/internal/middleware/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterDTO) (*dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginDTO) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	ValidateToken(tokenString string) (*auth.AuthClaims, error)
}

type authService struct {
	users      repository.UserRepository
	tokens     repository.RefreshTokenRepository
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     *slog.Logger
}

// dummyHash keeps login timing flat when the username does not exist.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func NewAuthService(
	users repository.UserRepository,
	tokens repository.RefreshTokenRepository,
	secret string,
	accessTTL, refreshTTL time.Duration,
	logger *slog.Logger,
) AuthService {
	return &authService{
		users:      users,
		tokens:     tokens,
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		logger:     logger,
	}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterDTO) (*dto.UserResponse, error) {
	if _, err := s.users.FindByUsername(ctx, req.Username); err == nil {
		return nil, apperr.Conflict("username %q is already taken", req.Username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperr.Conflict("email %q is already registered", req.Email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName: req.FullName,
		Age:      req.Age,
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return dto.FromModelToUserResponse(user), nil
}

// Login accepts a username or an email address in the username field.
func (s *authService) Login(ctx context.Context, req dto.LoginDTO) (*dto.LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = s.users.FindByEmail(ctx, req.Username)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Burn the same bcrypt cost as a real comparison.
			_ = auth.VerifyPassword(dummyHash, req.Password)
			return nil, apperr.Unauthenticated("invalid username or password")
		}
		return nil, err
	}

	if err := auth.VerifyPassword(user.Password, req.Password); err != nil {
		return nil, apperr.Unauthenticated("invalid username or password")
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Warn("failed to record last login", "user_id", user.ID, "error", err)
	}

	return s.issueTokens(ctx, user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	stored, err := s.tokens.FindByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthenticated("invalid refresh token")
		}
		return nil, err
	}
	if stored.Revoked || time.Now().After(stored.ExpiresAt) {
		_ = s.tokens.Delete(ctx, stored.ID)
		return nil, apperr.Unauthenticated("refresh token expired")
	}

	user, err := s.users.FindByID(ctx, stored.UserID)
	if err != nil {
		return nil, asNotFound(err, "user %s not found", stored.UserID)
	}

	// Single use: the old token dies on every refresh.
	if err := s.tokens.Delete(ctx, stored.ID); err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, user)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	stored, err := s.tokens.FindByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.tokens.Delete(ctx, stored.ID)
}

func (s *authService) ValidateToken(tokenString string) (*auth.AuthClaims, error) {
	claims := &auth.AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Unauthenticated("invalid or expired access token")
	}
	return claims, nil
}

func (s *authService) issueTokens(ctx context.Context, user *models.User) (*dto.LoginResponse, error) {
	now := time.Now()
	claims := &auth.AuthClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	refresh := &models.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     uuid.New().String(),
		ExpiresAt: now.Add(s.refreshTTL),
	}
	if err := s.tokens.Create(ctx, refresh); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh.Token,
		User:         *dto.FromModelToUserResponse(user),
	}, nil
}
