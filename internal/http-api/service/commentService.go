package service

import (
	"context"
	"log/slog"

	"cinelog/internal/cache"
	"cinelog/internal/http-api/dto"
	"cinelog/internal/http-api/models"
	"cinelog/internal/http-api/repository"
)

type CommentService interface {
	Create(ctx context.Context, userID string, req dto.CommentCreateDTO) (*dto.CommentResponse, error)
	Update(ctx context.Context, userID string, id int64, req dto.CommentUpdateDTO) (*dto.CommentResponse, error)
	Delete(ctx context.Context, userID string, id int64) error
	GetByID(ctx context.Context, id int64) (*dto.CommentResponse, error)
	GetByUser(ctx context.Context, userID string) ([]dto.CommentResponse, error)
	GetByMovie(ctx context.Context, movieID int64) ([]dto.CommentResponse, error)
	GetBySeries(ctx context.Context, seriesID int64) ([]dto.CommentResponse, error)
}

type commentService struct {
	targetChecker
	comments repository.CommentRepository
	cache    *cache.Cache
	logger   *slog.Logger
}

func NewCommentService(
	comments repository.CommentRepository,
	movies repository.MovieRepository,
	series repository.SeriesRepository,
	cache *cache.Cache,
	logger *slog.Logger,
) CommentService {
	return &commentService{
		targetChecker: targetChecker{movies: movies, series: series},
		comments:      comments,
		cache:         cache,
		logger:        logger,
	}
}

func (s *commentService) Create(ctx context.Context, userID string, req dto.CommentCreateDTO) (*dto.CommentResponse, error) {
	if err := validateTarget(req.MovieID, req.SeriesID); err != nil {
		return nil, err
	}
	if err := s.ensureTargetExists(ctx, req.MovieID, req.SeriesID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:   userID,
		MovieID:  req.MovieID,
		SeriesID: req.SeriesID,
		Content:  req.Content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	invalidateTarget(ctx, s.cache, req.MovieID, req.SeriesID)
	return s.fetch(ctx, comment.ID)
}

func (s *commentService) Update(ctx context.Context, userID string, id int64, req dto.CommentUpdateDTO) (*dto.CommentResponse, error) {
	if err := requireID(id, "comment"); err != nil {
		return nil, err
	}
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "comment %d not found", id)
	}
	if err := authorizeOwner(comment, userID); err != nil {
		return nil, err
	}

	comment.Content = req.Content
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	invalidateTarget(ctx, s.cache, comment.MovieID, comment.SeriesID)
	return dto.FromModelToCommentResponse(comment), nil
}

func (s *commentService) Delete(ctx context.Context, userID string, id int64) error {
	if err := requireID(id, "comment"); err != nil {
		return err
	}
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "comment %d not found", id)
	}
	if err := authorizeOwner(comment, userID); err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, comment); err != nil {
		return err
	}
	invalidateTarget(ctx, s.cache, comment.MovieID, comment.SeriesID)
	return nil
}

func (s *commentService) GetByID(ctx context.Context, id int64) (*dto.CommentResponse, error) {
	if err := requireID(id, "comment"); err != nil {
		return nil, err
	}
	return s.fetch(ctx, id)
}

func (s *commentService) fetch(ctx context.Context, id int64) (*dto.CommentResponse, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "comment %d not found", id)
	}
	return dto.FromModelToCommentResponse(comment), nil
}

func (s *commentService) GetByUser(ctx context.Context, userID string) ([]dto.CommentResponse, error) {
	comments, err := s.comments.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toCommentResponses(comments), nil
}

func (s *commentService) GetByMovie(ctx context.Context, movieID int64) ([]dto.CommentResponse, error) {
	if err := requireID(movieID, "movie"); err != nil {
		return nil, err
	}
	if err := s.ensureTargetExists(ctx, &movieID, nil); err != nil {
		return nil, err
	}
	comments, err := s.comments.GetByMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	return toCommentResponses(comments), nil
}

func (s *commentService) GetBySeries(ctx context.Context, seriesID int64) ([]dto.CommentResponse, error) {
	if err := requireID(seriesID, "series"); err != nil {
		return nil, err
	}
	if err := s.ensureTargetExists(ctx, nil, &seriesID); err != nil {
		return nil, err
	}
	comments, err := s.comments.GetBySeries(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	return toCommentResponses(comments), nil
}

func toCommentResponses(comments []models.Comment) []dto.CommentResponse {
	out := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, *dto.FromModelToCommentResponse(&comments[i]))
	}
	return out
}
