package service

import (
	"context"
	"log/slog"

	"cinelog/internal/cache"
	"cinelog/internal/http-api/apperr"
	"cinelog/internal/http-api/dto"
	"cinelog/internal/http-api/models"
	"cinelog/internal/http-api/repository"
)

type RatingService interface {
	Create(ctx context.Context, userID string, req dto.RatingCreateDTO) (*dto.RatingResponse, error)
	Delete(ctx context.Context, userID string, id int64) error
	GetByUser(ctx context.Context, userID, kind string) ([]dto.RatingResponse, error)
	IsRated(ctx context.Context, userID string, req dto.TargetDTO) (bool, error)
	AverageForMovie(ctx context.Context, movieID int64) (*dto.AverageRatingResponse, error)
	AverageForSeries(ctx context.Context, seriesID int64) (*dto.AverageRatingResponse, error)
}

type ratingService struct {
	targetChecker
	ratings repository.RatingRepository
	cache   *cache.Cache
	logger  *slog.Logger
}

func NewRatingService(
	ratings repository.RatingRepository,
	movies repository.MovieRepository,
	series repository.SeriesRepository,
	cache *cache.Cache,
	logger *slog.Logger,
) RatingService {
	return &ratingService{
		targetChecker: targetChecker{movies: movies, series: series},
		ratings:       ratings,
		cache:         cache,
		logger:        logger,
	}
}

// Create rejects a second rating from the same user for the same
// title. Partial unique indexes back this check at the database level.
func (s *ratingService) Create(ctx context.Context, userID string, req dto.RatingCreateDTO) (*dto.RatingResponse, error) {
	if err := validateTarget(req.MovieID, req.SeriesID); err != nil {
		return nil, err
	}
	if err := s.ensureTargetExists(ctx, req.MovieID, req.SeriesID); err != nil {
		return nil, err
	}

	exists, err := s.ratings.Exists(ctx, userID, req.MovieID, req.SeriesID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("you have already rated this title")
	}

	rating := &models.Rating{
		UserID:   userID,
		MovieID:  req.MovieID,
		SeriesID: req.SeriesID,
		Score:    req.Score,
	}
	if err := s.ratings.Create(ctx, rating); err != nil {
		return nil, err
	}

	invalidateTarget(ctx, s.cache, req.MovieID, req.SeriesID)
	fresh, err := s.ratings.GetByID(ctx, rating.ID)
	if err != nil {
		return nil, asNotFound(err, "rating %d not found", rating.ID)
	}
	return dto.FromModelToRatingResponse(fresh), nil
}

func (s *ratingService) Delete(ctx context.Context, userID string, id int64) error {
	if err := requireID(id, "rating"); err != nil {
		return err
	}
	rating, err := s.ratings.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "rating %d not found", id)
	}
	if err := authorizeOwner(rating, userID); err != nil {
		return err
	}

	if err := s.ratings.Delete(ctx, rating); err != nil {
		return err
	}
	invalidateTarget(ctx, s.cache, rating.MovieID, rating.SeriesID)
	return nil
}

// GetByUser lists the user's ratings, optionally narrowed to movies
// or series only.
func (s *ratingService) GetByUser(ctx context.Context, userID, kind string) ([]dto.RatingResponse, error) {
	ratings, err := s.ratings.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RatingResponse, 0, len(ratings))
	for i := range ratings {
		if !matchesKind(kind, ratings[i].MovieID, ratings[i].SeriesID) {
			continue
		}
		out = append(out, *dto.FromModelToRatingResponse(&ratings[i]))
	}
	return out, nil
}

func (s *ratingService) IsRated(ctx context.Context, userID string, req dto.TargetDTO) (bool, error) {
	if err := validateTarget(req.MovieID, req.SeriesID); err != nil {
		return false, err
	}
	return s.ratings.Exists(ctx, userID, req.MovieID, req.SeriesID)
}

func (s *ratingService) AverageForMovie(ctx context.Context, movieID int64) (*dto.AverageRatingResponse, error) {
	if err := requireID(movieID, "movie"); err != nil {
		return nil, err
	}
	if err := s.ensureTargetExists(ctx, &movieID, nil); err != nil {
		return nil, err
	}
	avg, count, err := s.ratings.AverageForMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	return &dto.AverageRatingResponse{AverageRating: dto.Round1(avg), TotalRatings: count}, nil
}

func (s *ratingService) AverageForSeries(ctx context.Context, seriesID int64) (*dto.AverageRatingResponse, error) {
	if err := requireID(seriesID, "series"); err != nil {
		return nil, err
	}
	if err := s.ensureTargetExists(ctx, nil, &seriesID); err != nil {
		return nil, err
	}
	avg, count, err := s.ratings.AverageForSeries(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	return &dto.AverageRatingResponse{AverageRating: dto.Round1(avg), TotalRatings: count}, nil
}
