package service

import (
	"context"
	"log/slog"

	"cinelog/internal/http-api/apperr"
	"cinelog/internal/http-api/dto"
	"cinelog/internal/http-api/models"
	"cinelog/internal/http-api/repository"
)

type FavoriteService interface {
	Add(ctx context.Context, userID string, req dto.TargetDTO) (*dto.MarkResponse, error)
	Remove(ctx context.Context, userID string, id int64) error
	List(ctx context.Context, userID, kind string) ([]dto.MarkResponse, error)
	Contains(ctx context.Context, userID string, req dto.TargetDTO) (bool, error)
}

type favoriteService struct {
	targetChecker
	favorites repository.FavoriteRepository
	logger    *slog.Logger
}

func NewFavoriteService(
	favorites repository.FavoriteRepository,
	movies repository.MovieRepository,
	series repository.SeriesRepository,
	logger *slog.Logger,
) FavoriteService {
	return &favoriteService{
		targetChecker: targetChecker{movies: movies, series: series},
		favorites:     favorites,
		logger:        logger,
	}
}

func (s *favoriteService) Add(ctx context.Context, userID string, req dto.TargetDTO) (*dto.MarkResponse, error) {
	if err := validateTarget(req.MovieID, req.SeriesID); err != nil {
		return nil, err
	}
	if err := s.ensureTargetExists(ctx, req.MovieID, req.SeriesID); err != nil {
		return nil, err
	}

	exists, err := s.favorites.Exists(ctx, userID, req.MovieID, req.SeriesID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("title is already in your favorites")
	}

	favorite := &models.Favorite{
		UserID:   userID,
		MovieID:  req.MovieID,
		SeriesID: req.SeriesID,
	}
	if err := s.favorites.Create(ctx, favorite); err != nil {
		return nil, err
	}

	fresh, err := s.favorites.GetByID(ctx, favorite.ID)
	if err != nil {
		return nil, asNotFound(err, "favorite %d not found", favorite.ID)
	}
	return dto.FromModelToFavoriteResponse(fresh), nil
}

func (s *favoriteService) Remove(ctx context.Context, userID string, id int64) error {
	if err := requireID(id, "favorite"); err != nil {
		return err
	}
	favorite, err := s.favorites.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "favorite %d not found", id)
	}
	if err := authorizeOwner(favorite, userID); err != nil {
		return err
	}
	return s.favorites.Delete(ctx, favorite)
}

func (s *favoriteService) List(ctx context.Context, userID, kind string) ([]dto.MarkResponse, error) {
	favorites, err := s.favorites.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MarkResponse, 0, len(favorites))
	for i := range favorites {
		if !matchesKind(kind, favorites[i].MovieID, favorites[i].SeriesID) {
			continue
		}
		out = append(out, *dto.FromModelToFavoriteResponse(&favorites[i]))
	}
	return out, nil
}

func (s *favoriteService) Contains(ctx context.Context, userID string, req dto.TargetDTO) (bool, error) {
	if err := validateTarget(req.MovieID, req.SeriesID); err != nil {
		return false, err
	}
	return s.favorites.Exists(ctx, userID, req.MovieID, req.SeriesID)
}
