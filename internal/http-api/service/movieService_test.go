package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cinelog/internal/http-api/apperr"
	"cinelog/internal/http-api/dto"
	"cinelog/internal/http-api/models"
	"cinelog/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMovieService(t *testing.T, repo *mockMovieRepo) MovieService {
	t.Helper()
	return NewMovieService(repo, storage.NewStore(t.TempDir()), nil, testLogger())
}

func strPtr(s string) *string { return &s }

func TestMovieUpdateReplacesDirectorsWholesale(t *testing.T) {
	repo := new(mockMovieRepo)
	svc := newMovieService(t, repo)
	ctx := context.Background()

	stored := &models.Movie{
		ID:    1,
		Title: "Old Title",
		Directors: []models.Director{
			{ID: 3}, {ID: 4},
		},
	}
	repo.On("GetByID", ctx, int64(1)).Return(stored, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*models.Movie")).Return(nil)
	repo.On("ReplaceDirectors", ctx, int64(1), []int64{5}).Return(nil)

	_, err := svc.Update(ctx, 1, &dto.MovieUpdateRequest{DirectorIDs: []int64{5}})
	require.NoError(t, err)

	repo.AssertCalled(t, "ReplaceDirectors", ctx, int64(1), []int64{5})
	repo.AssertNotCalled(t, "ReplaceGenres", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "UpsertActor", mock.Anything, mock.Anything)
}

func TestMovieUpdateUpsertsActorsWithoutRemoval(t *testing.T) {
	repo := new(mockMovieRepo)
	svc := newMovieService(t, repo)
	ctx := context.Background()

	stored := &models.Movie{
		ID: 1,
		Actors: []models.MovieActor{
			{MovieID: 1, ActorID: 7, CharacterName: "Y"},
			{MovieID: 1, ActorID: 8, CharacterName: "Z"},
		},
	}
	repo.On("GetByID", ctx, int64(1)).Return(stored, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*models.Movie")).Return(nil)
	repo.On("UpsertActor", ctx, &models.MovieActor{MovieID: 1, ActorID: 9, CharacterName: "X"}).Return(nil)

	_, err := svc.Update(ctx, 1, &dto.MovieUpdateRequest{
		Actors: []dto.CastEntry{{ActorID: 9, CharacterName: "X"}},
	})
	require.NoError(t, err)

	// The stored cast is never cleared; only the listed actor is
	// upserted.
	repo.AssertNumberOfCalls(t, "UpsertActor", 1)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestMovieUpdateBlankCastNameLeavesRowUntouched(t *testing.T) {
	repo := new(mockMovieRepo)
	svc := newMovieService(t, repo)
	ctx := context.Background()

	stored := &models.Movie{
		ID: 1,
		Actors: []models.MovieActor{
			{MovieID: 1, ActorID: 7, CharacterName: "Y"},
		},
	}
	repo.On("GetByID", ctx, int64(1)).Return(stored, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*models.Movie")).Return(nil)

	_, err := svc.Update(ctx, 1, &dto.MovieUpdateRequest{
		Actors: []dto.CastEntry{{ActorID: 7, CharacterName: ""}},
	})
	require.NoError(t, err)

	// "Y" survives; no upsert reaches the repository for a blank name.
	repo.AssertNotCalled(t, "UpsertActor", mock.Anything, mock.Anything)
}

func TestMovieUpdateSparsePatch(t *testing.T) {
	repo := new(mockMovieRepo)
	svc := newMovieService(t, repo)
	ctx := context.Background()

	stored := &models.Movie{
		ID:          1,
		Title:       "Original",
		Description: "Keep me",
		DurationSec: 5400,
	}
	repo.On("GetByID", ctx, int64(1)).Return(stored, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(m *models.Movie) bool {
		return m.Title == "Renamed" && m.Description == "Keep me" && m.DurationSec == 5400
	})).Return(nil)

	_, err := svc.Update(ctx, 1, &dto.MovieUpdateRequest{Title: strPtr("Renamed")})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestMovieUpdateNotFound(t *testing.T) {
	repo := new(mockMovieRepo)
	svc := newMovieService(t, repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(ctx, 42, &dto.MovieUpdateRequest{Title: strPtr("x")})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMovieGetByIDRejectsBadID(t *testing.T) {
	repo := new(mockMovieRepo)
	svc := newMovieService(t, repo)

	_, err := svc.GetByID(context.Background(), 0)
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestMovieSearchRejectsEmptyText(t *testing.T) {
	repo := new(mockMovieRepo)
	svc := newMovieService(t, repo)

	for _, text := range []string{"", "   ", "\t"} {
		_, err := svc.Search(context.Background(), text)
		assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
	}
	repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestMovieFilterByReleaseYearBounds(t *testing.T) {
	repo := new(mockMovieRepo)
	svc := newMovieService(t, repo)
	ctx := context.Background()

	_, err := svc.FilterByReleaseYear(ctx, 1799)
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	_, err = svc.FilterByReleaseYear(ctx, time.Now().UTC().Year()+1)
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	repo.On("FilterByReleaseYear", ctx, 1999).Return([]models.Movie{}, nil)
	_, err = svc.FilterByReleaseYear(ctx, 1999)
	assert.NoError(t, err)
}

func TestMovieSortOrderIsPermissive(t *testing.T) {
	repo := new(mockMovieRepo)
	svc := newMovieService(t, repo)
	ctx := context.Background()

	// Any order string reaches the repository untouched; nothing is an
	// error at this layer.
	for _, order := range []string{"ASC", "desc", "bogus", ""} {
		repo.On("SortByCreatedDate", ctx, order).Return([]models.Movie{}, nil).Once()
		_, err := svc.SortByCreatedDate(ctx, order)
		assert.NoError(t, err)
	}
	repo.AssertExpectations(t)
}
