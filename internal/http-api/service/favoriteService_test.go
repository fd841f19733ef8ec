package service

import (
	"context"
	"testing"

	"cinelog/internal/http-api/apperr"
	"cinelog/internal/http-api/dto"
	"cinelog/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFavoriteService(favorites *mockFavoriteRepo, movies *mockMovieRepo, series *mockSeriesRepo) FavoriteService {
	return NewFavoriteService(favorites, movies, series, testLogger())
}

func TestFavoriteAddDuplicateConflicts(t *testing.T) {
	favorites := new(mockFavoriteRepo)
	movies := new(mockMovieRepo)
	svc := newFavoriteService(favorites, movies, new(mockSeriesRepo))
	ctx := context.Background()

	movieID := int64Ptr(1)
	movies.On("GetByID", ctx, int64(1)).Return(&models.Movie{ID: 1}, nil)
	favorites.On("Exists", ctx, "u", movieID, (*int64)(nil)).Return(true, nil)

	_, err := svc.Add(ctx, "u", dto.TargetDTO{MovieID: movieID})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	favorites.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFavoriteAddRejectsNeitherTarget(t *testing.T) {
	favorites := new(mockFavoriteRepo)
	svc := newFavoriteService(favorites, new(mockMovieRepo), new(mockSeriesRepo))

	_, err := svc.Add(context.Background(), "u", dto.TargetDTO{})
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
}

func TestFavoriteRemoveRequiresOwnership(t *testing.T) {
	favorites := new(mockFavoriteRepo)
	svc := newFavoriteService(favorites, new(mockMovieRepo), new(mockSeriesRepo))
	ctx := context.Background()

	stored := &models.Favorite{ID: 4, UserID: "owner", MovieID: int64Ptr(1)}
	favorites.On("GetByID", ctx, int64(4)).Return(stored, nil)

	err := svc.Remove(ctx, "intruder", 4)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	favorites.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestFavoriteListKindFilter(t *testing.T) {
	favorites := new(mockFavoriteRepo)
	svc := newFavoriteService(favorites, new(mockMovieRepo), new(mockSeriesRepo))
	ctx := context.Background()

	all := []models.Favorite{
		{ID: 1, UserID: "u", MovieID: int64Ptr(1)},
		{ID: 2, UserID: "u", SeriesID: int64Ptr(9)},
	}
	favorites.On("GetByUser", ctx, "u").Return(all, nil)

	got, err := svc.List(ctx, "u", "series")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}
