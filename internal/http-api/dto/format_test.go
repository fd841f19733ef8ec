package dto

import (
	"testing"
	"time"

	"cinelog/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"01:30:00", 5400, false},
		{"00:00:01", 1, false},
		{"02:15:30", 8130, false},
		{"00:00:00", 0, true},
		{"1:75:00", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDuration(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "01:30:00", FormatDuration(5400))
	assert.Equal(t, "00:00:59", FormatDuration(59))
	assert.Equal(t, "10:00:01", FormatDuration(36001))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 7.5, Round1(7.5))
	assert.Equal(t, 1.7, Round1(5.0/3.0))
	assert.Equal(t, 2.5, Round1(2.45))
	assert.Equal(t, 0.0, Round1(0))
}

func TestAverageScore(t *testing.T) {
	assert.Equal(t, 0.0, averageScore(nil))
	assert.Equal(t, 7.5, averageScore([]models.Rating{{Score: 7}, {Score: 8}}))
	assert.Equal(t, 1.7, averageScore([]models.Rating{{Score: 1}, {Score: 2}, {Score: 2}}))
}

func TestMovieResponseFormatting(t *testing.T) {
	release := time.Date(1999, 3, 31, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	movie := &models.Movie{
		ID:          1,
		Title:       "The Matrix",
		ReleaseDate: release,
		DurationSec: 8160,
		CreatedAt:   created,
		Ratings:     []models.Rating{{Score: 9}, {Score: 10}},
	}

	resp := FromModelToMovieResponse(movie)
	assert.Equal(t, "1999-03-31", resp.ReleaseDate)
	assert.Equal(t, "02:16:00", resp.Duration)
	assert.Equal(t, "2024-06-01 09:30", resp.CreatedAt)
	assert.Equal(t, 9.5, resp.AverageRating)
	assert.Empty(t, resp.Genres)
}
