package service

import (
	"context"
	"log/slog"

	"cinelog/internal/http-api/apperr"
	"cinelog/internal/http-api/dto"
	"cinelog/internal/http-api/models"
	"cinelog/internal/http-api/repository"
)

type WatchlistService interface {
	Add(ctx context.Context, userID string, req dto.TargetDTO) (*dto.MarkResponse, error)
	Remove(ctx context.Context, userID string, id int64) error
	List(ctx context.Context, userID, kind string) ([]dto.MarkResponse, error)
	Contains(ctx context.Context, userID string, req dto.TargetDTO) (bool, error)
}

type watchlistService struct {
	targetChecker
	watchlist repository.WatchlistRepository
	logger    *slog.Logger
}

func NewWatchlistService(
	watchlist repository.WatchlistRepository,
	movies repository.MovieRepository,
	series repository.SeriesRepository,
	logger *slog.Logger,
) WatchlistService {
	return &watchlistService{
		targetChecker: targetChecker{movies: movies, series: series},
		watchlist:     watchlist,
		logger:        logger,
	}
}

func (s *watchlistService) Add(ctx context.Context, userID string, req dto.TargetDTO) (*dto.MarkResponse, error) {
	if err := validateTarget(req.MovieID, req.SeriesID); err != nil {
		return nil, err
	}
	if err := s.ensureTargetExists(ctx, req.MovieID, req.SeriesID); err != nil {
		return nil, err
	}

	exists, err := s.watchlist.Exists(ctx, userID, req.MovieID, req.SeriesID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("title is already on your watchlist")
	}

	entry := &models.Watchlist{
		UserID:   userID,
		MovieID:  req.MovieID,
		SeriesID: req.SeriesID,
	}
	if err := s.watchlist.Create(ctx, entry); err != nil {
		return nil, err
	}

	fresh, err := s.watchlist.GetByID(ctx, entry.ID)
	if err != nil {
		return nil, asNotFound(err, "watchlist entry %d not found", entry.ID)
	}
	return dto.FromModelToWatchlistResponse(fresh), nil
}

func (s *watchlistService) Remove(ctx context.Context, userID string, id int64) error {
	if err := requireID(id, "watchlist entry"); err != nil {
		return err
	}
	entry, err := s.watchlist.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "watchlist entry %d not found", id)
	}
	if err := authorizeOwner(entry, userID); err != nil {
		return err
	}
	return s.watchlist.Delete(ctx, entry)
}

func (s *watchlistService) List(ctx context.Context, userID, kind string) ([]dto.MarkResponse, error) {
	entries, err := s.watchlist.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MarkResponse, 0, len(entries))
	for i := range entries {
		if !matchesKind(kind, entries[i].MovieID, entries[i].SeriesID) {
			continue
		}
		out = append(out, *dto.FromModelToWatchlistResponse(&entries[i]))
	}
	return out, nil
}

func (s *watchlistService) Contains(ctx context.Context, userID string, req dto.TargetDTO) (bool, error) {
	if err := validateTarget(req.MovieID, req.SeriesID); err != nil {
		return false, err
	}
	return s.watchlist.Exists(ctx, userID, req.MovieID, req.SeriesID)
}
