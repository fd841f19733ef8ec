package service

import (
	"context"
	"log/slog"

	"cinelog/internal/http-api/dto"
	"cinelog/internal/http-api/repository"
	"cinelog/internal/middleware/auth"
)

type AccountService interface {
	GetByID(ctx context.Context, id string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, id string, req dto.UserUpdateDTO) (*dto.UserResponse, error)
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	SetRole(ctx context.Context, id, role string) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
}

type accountService struct {
	users  repository.UserRepository
	tokens repository.RefreshTokenRepository
	logger *slog.Logger
}

func NewAccountService(users repository.UserRepository, tokens repository.RefreshTokenRepository, logger *slog.Logger) AccountService {
	return &accountService{users: users, tokens: tokens, logger: logger}
}

func (s *accountService) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "user %s not found", id)
	}
	return dto.FromModelToUserResponse(user), nil
}

func (s *accountService) UpdateProfile(ctx context.Context, id string, req dto.UserUpdateDTO) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "user %s not found", id)
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Age != nil {
		user.Age = *req.Age
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return dto.FromModelToUserResponse(user), nil
}

func (s *accountService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *dto.FromModelToUserResponse(&users[i]))
	}
	return out, nil
}

func (s *accountService) SetRole(ctx context.Context, id, role string) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "user %s not found", id)
	}
	user.Role = role
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user role changed", "user_id", id, "role", role)
	return dto.FromModelToUserResponse(user), nil
}

func (s *accountService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return asNotFound(err, "user %s not found", id)
	}
	// Drop sessions first so a concurrent refresh cannot resurrect the
	// account's access.
	if err := s.tokens.DeleteByUser(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", "user_id", id)
	return nil
}
