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

func newRatingService(ratings *mockRatingRepo, movies *mockMovieRepo, series *mockSeriesRepo) RatingService {
	return NewRatingService(ratings, movies, series, nil, testLogger())
}

func TestRatingCreateDuplicateConflicts(t *testing.T) {
	ratings := new(mockRatingRepo)
	movies := new(mockMovieRepo)
	series := new(mockSeriesRepo)
	svc := newRatingService(ratings, movies, series)
	ctx := context.Background()

	movieID := int64Ptr(3)
	movies.On("GetByID", ctx, int64(3)).Return(&models.Movie{ID: 3}, nil)
	ratings.On("Exists", ctx, "user-1", movieID, (*int64)(nil)).Return(true, nil)

	_, err := svc.Create(ctx, "user-1", dto.RatingCreateDTO{MovieID: movieID, Score: 8})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	ratings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRatingCreateRejectsBothTargets(t *testing.T) {
	ratings := new(mockRatingRepo)
	svc := newRatingService(ratings, new(mockMovieRepo), new(mockSeriesRepo))

	_, err := svc.Create(context.Background(), "user-1", dto.RatingCreateDTO{
		MovieID:  int64Ptr(1),
		SeriesID: int64Ptr(2),
		Score:    5,
	})
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
	ratings.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRatingDeleteRequiresOwnership(t *testing.T) {
	ratings := new(mockRatingRepo)
	svc := newRatingService(ratings, new(mockMovieRepo), new(mockSeriesRepo))
	ctx := context.Background()

	stored := &models.Rating{ID: 5, UserID: "owner", MovieID: int64Ptr(1), Score: 7}
	ratings.On("GetByID", ctx, int64(5)).Return(stored, nil)

	err := svc.Delete(ctx, "intruder", 5)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	ratings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	ratings.On("Delete", ctx, stored).Return(nil)
	require.NoError(t, svc.Delete(ctx, "owner", 5))
}

func TestRatingAverageRounding(t *testing.T) {
	ratings := new(mockRatingRepo)
	movies := new(mockMovieRepo)
	svc := newRatingService(ratings, movies, new(mockSeriesRepo))
	ctx := context.Background()

	movies.On("GetByID", ctx, mock.Anything).Return(&models.Movie{ID: 1}, nil)

	// Mean of [7, 8] is 7.5; mean of [1, 2, 2] is 1.666... which
	// rounds half away from zero to 1.7.
	ratings.On("AverageForMovie", ctx, int64(1)).Return(7.5, int64(2), nil).Once()
	resp, err := svc.AverageForMovie(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.5, resp.AverageRating)
	assert.Equal(t, int64(2), resp.TotalRatings)

	ratings.On("AverageForMovie", ctx, int64(1)).Return(5.0/3.0, int64(3), nil).Once()
	resp, err = svc.AverageForMovie(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.7, resp.AverageRating)

	// Unrated title reports zero, not an error.
	ratings.On("AverageForMovie", ctx, int64(1)).Return(0.0, int64(0), nil).Once()
	resp, err = svc.AverageForMovie(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.AverageRating)
	assert.Equal(t, int64(0), resp.TotalRatings)
}

func TestRatingGetByUserKindFilter(t *testing.T) {
	ratings := new(mockRatingRepo)
	svc := newRatingService(ratings, new(mockMovieRepo), new(mockSeriesRepo))
	ctx := context.Background()

	all := []models.Rating{
		{ID: 1, UserID: "u", MovieID: int64Ptr(1), Score: 5},
		{ID: 2, UserID: "u", SeriesID: int64Ptr(2), Score: 9},
	}
	ratings.On("GetByUser", ctx, "u").Return(all, nil)

	got, err := svc.GetByUser(ctx, "u", "movie")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	got, err = svc.GetByUser(ctx, "u", "")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
