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

// Release years before cinema existed or far in the future are treated
// as caller mistakes.
const minReleaseYear = 1800

type MovieService interface {
	Create(ctx context.Context, req *dto.MovieCreateRequest) (*dto.MovieResponse, error)
	Update(ctx context.Context, id int64, req *dto.MovieUpdateRequest) (*dto.MovieResponse, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*dto.MovieResponse, error)
	GetAll(ctx context.Context) ([]dto.MovieResponse, error)
	GetPaginated(ctx context.Context, page, pageSize int) (*dto.PaginateResponse[dto.MovieResponse], error)
	Search(ctx context.Context, text string) ([]dto.MovieResponse, error)
	FilterByReleaseYear(ctx context.Context, year int) ([]dto.MovieResponse, error)
	GetByGenreID(ctx context.Context, genreID int64) ([]dto.MovieResponse, error)
	GetByActorID(ctx context.Context, actorID int64) ([]dto.MovieResponse, error)
	GetByDirectorID(ctx context.Context, directorID int64) ([]dto.MovieResponse, error)
	SortByCreatedDate(ctx context.Context, order string) ([]dto.MovieResponse, error)
}

type movieService struct {
	movies repository.MovieRepository
	store  *storage.Store
	cache  *cache.Cache
	logger *slog.Logger
}

func NewMovieService(movies repository.MovieRepository, store *storage.Store, cache *cache.Cache, logger *slog.Logger) MovieService {
	return &movieService{movies: movies, store: store, cache: cache, logger: logger}
}

func movieCacheKey(id int64) string {
	return fmt.Sprintf("movie:%d", id)
}

func (s *movieService) Create(ctx context.Context, req *dto.MovieCreateRequest) (*dto.MovieResponse, error) {
	movie := &models.Movie{
		Title:       req.Title,
		Description: req.Description,
		ReleaseDate: req.ReleaseDate,
		DurationSec: req.DurationSec,
	}

	if req.Poster != nil {
		name, err := s.store.Save(req.Poster, "movies")
		if err != nil {
			return nil, apperr.IOFailure(err, "failed to store poster")
		}
		movie.PosterURL = "/images/movies/" + name
	}

	if err := s.movies.Create(ctx, movie); err != nil {
		return nil, err
	}
	if err := s.reconcile(ctx, movie.ID, req.GenreIDs, req.DirectorIDs, req.Actors); err != nil {
		return nil, err
	}

	s.logger.Info("movie created", "movie_id", movie.ID, "title", movie.Title)
	return s.fetch(ctx, movie.ID)
}

// Update applies a sparse patch: nil fields keep the stored value.
// Genres and directors are replaced wholesale when a non-empty list is
// supplied; cast entries are upserted per actor and never removed here.
func (s *movieService) Update(ctx context.Context, id int64, req *dto.MovieUpdateRequest) (*dto.MovieResponse, error) {
	if err := requireID(id, "movie"); err != nil {
		return nil, err
	}
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "movie %d not found", id)
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Description != nil {
		movie.Description = *req.Description
	}
	if req.ReleaseDate != nil {
		movie.ReleaseDate = *req.ReleaseDate
	}
	if req.DurationSec != nil {
		movie.DurationSec = *req.DurationSec
	}
	if req.Poster != nil {
		name, err := s.store.Save(req.Poster, "movies")
		if err != nil {
			return nil, apperr.IOFailure(err, "failed to store poster")
		}
		movie.PosterURL = "/images/movies/" + name
	}

	if err := s.movies.Update(ctx, movie); err != nil {
		return nil, err
	}
	if err := s.reconcile(ctx, id, req.GenreIDs, req.DirectorIDs, req.Actors); err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, movieCacheKey(id))
	return s.fetch(ctx, id)
}

func (s *movieService) reconcile(ctx context.Context, movieID int64, genreIDs, directorIDs []int64, actors []dto.CastEntry) error {
	if len(genreIDs) > 0 {
		if err := s.movies.ReplaceGenres(ctx, movieID, genreIDs); err != nil {
			return err
		}
	}
	if len(directorIDs) > 0 {
		if err := s.movies.ReplaceDirectors(ctx, movieID, directorIDs); err != nil {
			return err
		}
	}
	for _, entry := range actors {
		// A blank name never overwrites a stored character and never
		// creates a nameless cast row.
		if entry.CharacterName == "" {
			continue
		}
		link := &models.MovieActor{
			MovieID:       movieID,
			ActorID:       entry.ActorID,
			CharacterName: entry.CharacterName,
		}
		if err := s.movies.UpsertActor(ctx, link); err != nil {
			return err
		}
	}
	return nil
}

func (s *movieService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id, "movie"); err != nil {
		return err
	}
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "movie %d not found", id)
	}
	if err := s.movies.Delete(ctx, movie); err != nil {
		return err
	}
	s.cache.Delete(ctx, movieCacheKey(id))
	s.logger.Info("movie deleted", "movie_id", id)
	return nil
}

func (s *movieService) GetByID(ctx context.Context, id int64) (*dto.MovieResponse, error) {
	if err := requireID(id, "movie"); err != nil {
		return nil, err
	}
	var cached dto.MovieResponse
	if s.cache.GetJSON(ctx, movieCacheKey(id), &cached) {
		return &cached, nil
	}
	resp, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, movieCacheKey(id), resp)
	return resp, nil
}

func (s *movieService) fetch(ctx context.Context, id int64) (*dto.MovieResponse, error) {
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "movie %d not found", id)
	}
	return dto.FromModelToMovieResponse(movie), nil
}

func (s *movieService) GetAll(ctx context.Context) ([]dto.MovieResponse, error) {
	movies, err := s.movies.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toMovieResponses(movies), nil
}

func (s *movieService) GetPaginated(ctx context.Context, page, pageSize int) (*dto.PaginateResponse[dto.MovieResponse], error) {
	movies, total, err := s.movies.GetPaginated(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginateResponse(toMovieResponses(movies), total, page, pageSize), nil
}

func (s *movieService) Search(ctx context.Context, text string) ([]dto.MovieResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperr.InvalidArgument("search text must not be empty")
	}
	movies, err := s.movies.Search(ctx, text)
	if err != nil {
		return nil, err
	}
	return toMovieResponses(movies), nil
}

func (s *movieService) FilterByReleaseYear(ctx context.Context, year int) ([]dto.MovieResponse, error) {
	if year < minReleaseYear || year > time.Now().UTC().Year() {
		return nil, apperr.InvalidArgument("year must be between %d and the current year", minReleaseYear)
	}
	movies, err := s.movies.FilterByReleaseYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return toMovieResponses(movies), nil
}

func (s *movieService) GetByGenreID(ctx context.Context, genreID int64) ([]dto.MovieResponse, error) {
	if err := requireID(genreID, "genre"); err != nil {
		return nil, err
	}
	movies, err := s.movies.GetByGenreID(ctx, genreID)
	if err != nil {
		return nil, err
	}
	return toMovieResponses(movies), nil
}

func (s *movieService) GetByActorID(ctx context.Context, actorID int64) ([]dto.MovieResponse, error) {
	if err := requireID(actorID, "actor"); err != nil {
		return nil, err
	}
	movies, err := s.movies.GetByActorID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return toMovieResponses(movies), nil
}

func (s *movieService) GetByDirectorID(ctx context.Context, directorID int64) ([]dto.MovieResponse, error) {
	if err := requireID(directorID, "director"); err != nil {
		return nil, err
	}
	movies, err := s.movies.GetByDirectorID(ctx, directorID)
	if err != nil {
		return nil, err
	}
	return toMovieResponses(movies), nil
}

func (s *movieService) SortByCreatedDate(ctx context.Context, order string) ([]dto.MovieResponse, error) {
	movies, err := s.movies.SortByCreatedDate(ctx, order)
	if err != nil {
		return nil, err
	}
	return toMovieResponses(movies), nil
}

func toMovieResponses(movies []models.Movie) []dto.MovieResponse {
	out := make([]dto.MovieResponse, 0, len(movies))
	for i := range movies {
		out = append(out, *dto.FromModelToMovieResponse(&movies[i]))
	}
	return out
}
