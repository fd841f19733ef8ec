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
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

func newEpisodeService(episodes *mockEpisodeRepo, series *mockSeriesRepo) EpisodeService {
	return NewEpisodeService(episodes, series, nil, testLogger())
}

func TestEpisodeCreateDuplicateNumberConflicts(t *testing.T) {
	episodes := new(mockEpisodeRepo)
	series := new(mockSeriesRepo)
	svc := newEpisodeService(episodes, series)
	ctx := context.Background()

	series.On("GetByID", ctx, int64(1)).Return(&models.Series{ID: 1}, nil)
	episodes.On("NumberExists", ctx, int64(1), 2, 5).Return(true, nil)

	_, err := svc.Create(ctx, &dto.EpisodeCreateRequest{
		SeriesID:      1,
		SeasonNumber:  2,
		EpisodeNumber: 5,
		Title:         "The One That Already Exists",
		DurationSec:   1800,
	})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	episodes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEpisodeCreateUnknownSeries(t *testing.T) {
	episodes := new(mockEpisodeRepo)
	series := new(mockSeriesRepo)
	svc := newEpisodeService(episodes, series)
	ctx := context.Background()

	series.On("GetByID", ctx, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(ctx, &dto.EpisodeCreateRequest{
		SeriesID:      9,
		SeasonNumber:  1,
		EpisodeNumber: 1,
		Title:         "Pilot",
		DurationSec:   1800,
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestEpisodeUpdateRenumberingRechecked(t *testing.T) {
	episodes := new(mockEpisodeRepo)
	series := new(mockSeriesRepo)
	svc := newEpisodeService(episodes, series)
	ctx := context.Background()

	stored := &models.Episode{ID: 10, SeriesID: 1, SeasonNumber: 1, EpisodeNumber: 3}
	episodes.On("GetByID", ctx, int64(10)).Return(stored, nil)
	episodes.On("NumberExists", ctx, int64(1), 1, 4).Return(true, nil)

	_, err := svc.Update(ctx, 10, &dto.EpisodeUpdateRequest{EpisodeNumber: intPtr(4)})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	episodes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestEpisodeUpdateWithoutRenumberingSkipsCheck(t *testing.T) {
	episodes := new(mockEpisodeRepo)
	series := new(mockSeriesRepo)
	svc := newEpisodeService(episodes, series)
	ctx := context.Background()

	stored := &models.Episode{ID: 10, SeriesID: 1, SeasonNumber: 1, EpisodeNumber: 3}
	episodes.On("GetByID", ctx, int64(10)).Return(stored, nil)
	episodes.On("Update", ctx, mock.AnythingOfType("*models.Episode")).Return(nil)

	title := "Retitled"
	_, err := svc.Update(ctx, 10, &dto.EpisodeUpdateRequest{Title: &title})
	require.NoError(t, err)
	episodes.AssertNotCalled(t, "NumberExists", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
