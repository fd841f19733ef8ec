package service

import (
	"context"
	"errors"
	"log/slog"

	"cinelog/internal/http-api/apperr"
	"cinelog/internal/http-api/dto"
	"cinelog/internal/http-api/models"
	"cinelog/internal/http-api/repository"

	"gorm.io/gorm"
)

type GenresService interface {
	Create(ctx context.Context, req dto.GenreCreateDTO) (*dto.GenreResponse, error)
	Update(ctx context.Context, id int64, req dto.GenreUpdateDTO) (*dto.GenreResponse, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*dto.GenreResponse, error)
	GetAll(ctx context.Context) ([]dto.GenreResponse, error)
}

type genresService struct {
	genres repository.GenresRepository
	logger *slog.Logger
}

func NewGenresService(genres repository.GenresRepository, logger *slog.Logger) GenresService {
	return &genresService{genres: genres, logger: logger}
}

// Create rejects names that differ only in case from an existing genre.
func (s *genresService) Create(ctx context.Context, req dto.GenreCreateDTO) (*dto.GenreResponse, error) {
	existing, err := s.genres.FindByNameFold(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("genre %q already exists", existing.Name)
	}

	genre := &models.Genre{Name: req.Name}
	if err := s.genres.Create(ctx, genre); err != nil {
		return nil, err
	}
	s.logger.Info("genre created", "genre_id", genre.ID, "name", genre.Name)
	return dto.FromModelToGenreResponse(genre), nil
}

func (s *genresService) Update(ctx context.Context, id int64, req dto.GenreUpdateDTO) (*dto.GenreResponse, error) {
	if err := requireID(id, "genre"); err != nil {
		return nil, err
	}
	genre, err := s.genres.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "genre %d not found", id)
	}

	existing, err := s.genres.FindByNameFold(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, apperr.Conflict("genre %q already exists", existing.Name)
	}

	genre.Name = req.Name
	if err := s.genres.Update(ctx, genre); err != nil {
		return nil, err
	}
	return dto.FromModelToGenreResponse(genre), nil
}

func (s *genresService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id, "genre"); err != nil {
		return err
	}
	genre, err := s.genres.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "genre %d not found", id)
	}
	if err := s.genres.Delete(ctx, genre); err != nil {
		return err
	}
	s.logger.Info("genre deleted", "genre_id", id)
	return nil
}

func (s *genresService) GetByID(ctx context.Context, id int64) (*dto.GenreResponse, error) {
	if err := requireID(id, "genre"); err != nil {
		return nil, err
	}
	genre, err := s.genres.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "genre %d not found", id)
	}
	return dto.FromModelToGenreResponse(genre), nil
}

func (s *genresService) GetAll(ctx context.Context) ([]dto.GenreResponse, error) {
	genres, err := s.genres.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GenreResponse, 0, len(genres))
	for i := range genres {
		out = append(out, *dto.FromModelToGenreResponse(&genres[i]))
	}
	return out, nil
}
