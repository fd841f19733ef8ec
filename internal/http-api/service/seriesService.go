package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cinelog/internal/cache"
	"cinelog/internal/http-api/apperr"
	"cinelog/internal/http-api/dto"
	"cinelog/internal/http-api/models"
	"cinelog/internal/http-api/repository"
	"cinelog/internal/storage"
)

type SeriesService interface {
	Create(ctx context.Context, req *dto.SeriesCreateRequest) (*dto.SeriesResponse, error)
	Update(ctx context.Context, id int64, req *dto.SeriesUpdateRequest) (*dto.SeriesResponse, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*dto.SeriesResponse, error)
	GetAll(ctx context.Context) ([]dto.SeriesResponse, error)
	GetPaginated(ctx context.Context, page, pageSize int) (*dto.PaginateResponse[dto.SeriesResponse], error)
	Search(ctx context.Context, text string) ([]dto.SeriesResponse, error)
	FilterByReleaseYear(ctx context.Context, year int) ([]dto.SeriesResponse, error)
	GetByGenreID(ctx context.Context, genreID int64) ([]dto.SeriesResponse, error)
	GetByActorID(ctx context.Context, actorID int64) ([]dto.SeriesResponse, error)
	GetByDirectorID(ctx context.Context, directorID int64) ([]dto.SeriesResponse, error)
	SortByCreatedDate(ctx context.Context, order string) ([]dto.SeriesResponse, error)
}

type seriesService struct {
	series repository.SeriesRepository
	store  *storage.Store
	cache  *cache.Cache
	logger *slog.Logger
}

func NewSeriesService(series repository.SeriesRepository, store *storage.Store, cache *cache.Cache, logger *slog.Logger) SeriesService {
	return &seriesService{series: series, store: store, cache: cache, logger: logger}
}

func seriesCacheKey(id int64) string {
	return fmt.Sprintf("series:%d", id)
}

func (s *seriesService) Create(ctx context.Context, req *dto.SeriesCreateRequest) (*dto.SeriesResponse, error) {
	series := &models.Series{
		Title:       req.Title,
		Description: req.Description,
		ReleaseDate: req.ReleaseDate,
	}

	if req.Poster != nil {
		name, err := s.store.Save(req.Poster, "series")
		if err != nil {
			return nil, apperr.IOFailure(err, "failed to store poster")
		}
		series.PosterURL = "/images/series/" + name
	}

	if err := s.series.Create(ctx, series); err != nil {
		return nil, err
	}
	if err := s.reconcile(ctx, series.ID, req.GenreIDs, req.DirectorIDs, req.Actors); err != nil {
		return nil, err
	}

	s.logger.Info("series created", "series_id", series.ID, "title", series.Title)
	return s.fetch(ctx, series.ID)
}

// Update applies a sparse patch with the same association rules as the
// movie side: wholesale replacement for genres/directors, per-actor
// upsert for the cast.
func (s *seriesService) Update(ctx context.Context, id int64, req *dto.SeriesUpdateRequest) (*dto.SeriesResponse, error) {
	if err := requireID(id, "series"); err != nil {
		return nil, err
	}
	series, err := s.series.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "series %d not found", id)
	}

	if req.Title != nil {
		series.Title = *req.Title
	}
	if req.Description != nil {
		series.Description = *req.Description
	}
	if req.ReleaseDate != nil {
		series.ReleaseDate = *req.ReleaseDate
	}
	if req.Poster != nil {
		name, err := s.store.Save(req.Poster, "series")
		if err != nil {
			return nil, apperr.IOFailure(err, "failed to store poster")
		}
		series.PosterURL = "/images/series/" + name
	}

	if err := s.series.Update(ctx, series); err != nil {
		return nil, err
	}
	if err := s.reconcile(ctx, id, req.GenreIDs, req.DirectorIDs, req.Actors); err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, seriesCacheKey(id))
	return s.fetch(ctx, id)
}

func (s *seriesService) reconcile(ctx context.Context, seriesID int64, genreIDs, directorIDs []int64, actors []dto.CastEntry) error {
	if len(genreIDs) > 0 {
		if err := s.series.ReplaceGenres(ctx, seriesID, genreIDs); err != nil {
			return err
		}
	}
	if len(directorIDs) > 0 {
		if err := s.series.ReplaceDirectors(ctx, seriesID, directorIDs); err != nil {
			return err
		}
	}
	for _, entry := range actors {
		if entry.CharacterName == "" {
			continue
		}
		link := &models.SeriesActor{
			SeriesID:      seriesID,
			ActorID:       entry.ActorID,
			CharacterName: entry.CharacterName,
		}
		if err := s.series.UpsertActor(ctx, link); err != nil {
			return err
		}
	}
	return nil
}

func (s *seriesService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id, "series"); err != nil {
		return err
	}
	series, err := s.series.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "series %d not found", id)
	}
	if err := s.series.Delete(ctx, series); err != nil {
		return err
	}
	s.cache.Delete(ctx, seriesCacheKey(id))
	s.logger.Info("series deleted", "series_id", id)
	return nil
}

func (s *seriesService) GetByID(ctx context.Context, id int64) (*dto.SeriesResponse, error) {
	if err := requireID(id, "series"); err != nil {
		return nil, err
	}
	var cached dto.SeriesResponse
	if s.cache.GetJSON(ctx, seriesCacheKey(id), &cached) {
		return &cached, nil
	}
	resp, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, seriesCacheKey(id), resp)
	return resp, nil
}

func (s *seriesService) fetch(ctx context.Context, id int64) (*dto.SeriesResponse, error) {
	series, err := s.series.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "series %d not found", id)
	}
	return dto.FromModelToSeriesResponse(series), nil
}

func (s *seriesService) GetAll(ctx context.Context) ([]dto.SeriesResponse, error) {
	series, err := s.series.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toSeriesResponses(series), nil
}

func (s *seriesService) GetPaginated(ctx context.Context, page, pageSize int) (*dto.PaginateResponse[dto.SeriesResponse], error) {
	series, total, err := s.series.GetPaginated(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginateResponse(toSeriesResponses(series), total, page, pageSize), nil
}

func (s *seriesService) Search(ctx context.Context, text string) ([]dto.SeriesResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperr.InvalidArgument("search text must not be empty")
	}
	series, err := s.series.Search(ctx, text)
	if err != nil {
		return nil, err
	}
	return toSeriesResponses(series), nil
}

func (s *seriesService) FilterByReleaseYear(ctx context.Context, year int) ([]dto.SeriesResponse, error) {
	if year < minReleaseYear || year > time.Now().UTC().Year() {
		return nil, apperr.InvalidArgument("year must be between %d and the current year", minReleaseYear)
	}
	series, err := s.series.FilterByReleaseYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return toSeriesResponses(series), nil
}

func (s *seriesService) GetByGenreID(ctx context.Context, genreID int64) ([]dto.SeriesResponse, error) {
	if err := requireID(genreID, "genre"); err != nil {
		return nil, err
	}
	series, err := s.series.GetByGenreID(ctx, genreID)
	if err != nil {
		return nil, err
	}
	return toSeriesResponses(series), nil
}

func (s *seriesService) GetByActorID(ctx context.Context, actorID int64) ([]dto.SeriesResponse, error) {
	if err := requireID(actorID, "actor"); err != nil {
		return nil, err
	}
	series, err := s.series.GetByActorID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return toSeriesResponses(series), nil
}

func (s *seriesService) GetByDirectorID(ctx context.Context, directorID int64) ([]dto.SeriesResponse, error) {
	if err := requireID(directorID, "director"); err != nil {
		return nil, err
	}
	series, err := s.series.GetByDirectorID(ctx, directorID)
	if err != nil {
		return nil, err
	}
	return toSeriesResponses(series), nil
}

func (s *seriesService) SortByCreatedDate(ctx context.Context, order string) ([]dto.SeriesResponse, error) {
	series, err := s.series.SortByCreatedDate(ctx, order)
	if err != nil {
		return nil, err
	}
	return toSeriesResponses(series), nil
}

func toSeriesResponses(series []models.Series) []dto.SeriesResponse {
	out := make([]dto.SeriesResponse, 0, len(series))
	for i := range series {
		out = append(out, *dto.FromModelToSeriesResponse(&series[i]))
	}
	return out
}
