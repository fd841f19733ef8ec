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

type EpisodeService interface {
	Create(ctx context.Context, req *dto.EpisodeCreateRequest) (*dto.EpisodeResponse, error)
	Update(ctx context.Context, id int64, req *dto.EpisodeUpdateRequest) (*dto.EpisodeResponse, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*dto.EpisodeResponse, error)
	GetPaginated(ctx context.Context, page, pageSize int) (*dto.PaginateResponse[dto.EpisodeResponse], error)
	GetBySeriesID(ctx context.Context, seriesID int64) ([]dto.EpisodeResponse, error)
}

type episodeService struct {
	episodes repository.EpisodeRepository
	series   repository.SeriesRepository
	cache    *cache.Cache
	logger   *slog.Logger
}

func NewEpisodeService(episodes repository.EpisodeRepository, series repository.SeriesRepository, cache *cache.Cache, logger *slog.Logger) EpisodeService {
	return &episodeService{episodes: episodes, series: series, cache: cache, logger: logger}
}

func (s *episodeService) Create(ctx context.Context, req *dto.EpisodeCreateRequest) (*dto.EpisodeResponse, error) {
	if _, err := s.series.GetByID(ctx, req.SeriesID); err != nil {
		return nil, asNotFound(err, "series %d not found", req.SeriesID)
	}

	taken, err := s.episodes.NumberExists(ctx, req.SeriesID, req.SeasonNumber, req.EpisodeNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("episode S%02dE%02d already exists for series %d",
			req.SeasonNumber, req.EpisodeNumber, req.SeriesID)
	}

	episode := &models.Episode{
		SeriesID:      req.SeriesID,
		SeasonNumber:  req.SeasonNumber,
		EpisodeNumber: req.EpisodeNumber,
		Title:         req.Title,
		ReleaseDate:   req.ReleaseDate,
		DurationSec:   req.DurationSec,
	}
	if err := s.episodes.Create(ctx, episode); err != nil {
		return nil, err
	}

	// Episodes are embedded in the series detail payload.
	s.cache.Delete(ctx, seriesCacheKey(req.SeriesID))
	s.logger.Info("episode created", "episode_id", episode.ID, "series_id", req.SeriesID)
	return s.fetch(ctx, episode.ID)
}

func (s *episodeService) Update(ctx context.Context, id int64, req *dto.EpisodeUpdateRequest) (*dto.EpisodeResponse, error) {
	if err := requireID(id, "episode"); err != nil {
		return nil, err
	}
	episode, err := s.episodes.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "episode %d not found", id)
	}

	season := episode.SeasonNumber
	number := episode.EpisodeNumber
	if req.SeasonNumber != nil {
		season = *req.SeasonNumber
	}
	if req.EpisodeNumber != nil {
		number = *req.EpisodeNumber
	}
	if season != episode.SeasonNumber || number != episode.EpisodeNumber {
		taken, err := s.episodes.NumberExists(ctx, episode.SeriesID, season, number)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.Conflict("episode S%02dE%02d already exists for series %d",
				season, number, episode.SeriesID)
		}
	}

	episode.SeasonNumber = season
	episode.EpisodeNumber = number
	if req.Title != nil {
		episode.Title = *req.Title
	}
	if req.ReleaseDate != nil {
		episode.ReleaseDate = *req.ReleaseDate
	}
	if req.DurationSec != nil {
		episode.DurationSec = *req.DurationSec
	}

	if err := s.episodes.Update(ctx, episode); err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, seriesCacheKey(episode.SeriesID))
	return s.fetch(ctx, id)
}

func (s *episodeService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id, "episode"); err != nil {
		return err
	}
	episode, err := s.episodes.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "episode %d not found", id)
	}
	if err := s.episodes.Delete(ctx, episode); err != nil {
		return err
	}
	s.cache.Delete(ctx, seriesCacheKey(episode.SeriesID))
	s.logger.Info("episode deleted", "episode_id", id, "series_id", episode.SeriesID)
	return nil
}

func (s *episodeService) GetByID(ctx context.Context, id int64) (*dto.EpisodeResponse, error) {
	if err := requireID(id, "episode"); err != nil {
		return nil, err
	}
	return s.fetch(ctx, id)
}

func (s *episodeService) fetch(ctx context.Context, id int64) (*dto.EpisodeResponse, error) {
	episode, err := s.episodes.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "episode %d not found", id)
	}
	return dto.FromModelToEpisodeResponse(episode), nil
}

func (s *episodeService) GetPaginated(ctx context.Context, page, pageSize int) (*dto.PaginateResponse[dto.EpisodeResponse], error) {
	episodes, total, err := s.episodes.GetPaginated(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EpisodeResponse, 0, len(episodes))
	for i := range episodes {
		out = append(out, *dto.FromModelToEpisodeResponse(&episodes[i]))
	}
	return dto.NewPaginateResponse(out, total, page, pageSize), nil
}

func (s *episodeService) GetBySeriesID(ctx context.Context, seriesID int64) ([]dto.EpisodeResponse, error) {
	if err := requireID(seriesID, "series"); err != nil {
		return nil, err
	}
	if _, err := s.series.GetByID(ctx, seriesID); err != nil {
		return nil, asNotFound(err, "series %d not found", seriesID)
	}
	episodes, err := s.episodes.GetBySeriesID(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EpisodeResponse, 0, len(episodes))
	for i := range episodes {
		out = append(out, *dto.FromModelToEpisodeResponse(&episodes[i]))
	}
	return out, nil
}
