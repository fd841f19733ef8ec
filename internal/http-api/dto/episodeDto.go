package dto

import (
	"time"

	"cinelog/internal/http-api/models"
)

type EpisodeCreateDTO struct {
	SeriesID      int64  `json:"series_id" binding:"required,gt=0"`
	SeasonNumber  int    `json:"season_number" binding:"required,gt=0"`
	EpisodeNumber int    `json:"episode_number" binding:"required,gt=0"`
	Title         string `json:"title" binding:"required,max=100"`
	ReleaseDate   string `json:"release_date" binding:"required"`
	Duration      string `json:"duration" binding:"required"`
}

type EpisodeCreateRequest struct {
	SeriesID      int64
	SeasonNumber  int
	EpisodeNumber int
	Title         string
	ReleaseDate   time.Time
	DurationSec   int64
}

func (d EpisodeCreateDTO) ToRequest() (*EpisodeCreateRequest, error) {
	release, err := ParseDate(d.ReleaseDate, "release_date")
	if err != nil {
		return nil, err
	}
	duration, err := ParseDuration(d.Duration)
	if err != nil {
		return nil, err
	}
	return &EpisodeCreateRequest{
		SeriesID:      d.SeriesID,
		SeasonNumber:  d.SeasonNumber,
		EpisodeNumber: d.EpisodeNumber,
		Title:         d.Title,
		ReleaseDate:   release,
		DurationSec:   duration,
	}, nil
}

// EpisodeUpdateDTO is a sparse patch; renumbering triggers a fresh
// uniqueness check against the (series, season, episode) triple.
type EpisodeUpdateDTO struct {
	SeasonNumber  *int    `json:"season_number" binding:"omitempty,gt=0"`
	EpisodeNumber *int    `json:"episode_number" binding:"omitempty,gt=0"`
	Title         *string `json:"title" binding:"omitempty,max=100"`
	ReleaseDate   *string `json:"release_date"`
	Duration      *string `json:"duration"`
}

type EpisodeUpdateRequest struct {
	SeasonNumber  *int
	EpisodeNumber *int
	Title         *string
	ReleaseDate   *time.Time
	DurationSec   *int64
}

func (d EpisodeUpdateDTO) ToRequest() (*EpisodeUpdateRequest, error) {
	req := &EpisodeUpdateRequest{
		SeasonNumber:  d.SeasonNumber,
		EpisodeNumber: d.EpisodeNumber,
		Title:         d.Title,
	}
	if d.ReleaseDate != nil {
		release, err := ParseDate(*d.ReleaseDate, "release_date")
		if err != nil {
			return nil, err
		}
		req.ReleaseDate = &release
	}
	if d.Duration != nil {
		duration, err := ParseDuration(*d.Duration)
		if err != nil {
			return nil, err
		}
		req.DurationSec = &duration
	}
	return req, nil
}

type EpisodeResponse struct {
	ID            int64  `json:"id"`
	SeriesID      int64  `json:"series_id"`
	SeriesName    string `json:"series_name,omitempty"`
	SeasonNumber  int    `json:"season_number"`
	EpisodeNumber int    `json:"episode_number"`
	Title         string `json:"title"`
	ReleaseDate   string `json:"release_date"`
	Duration      string `json:"duration"`
	CreatedAt     string `json:"created_at"`
}

func FromModelToEpisodeResponse(e *models.Episode) *EpisodeResponse {
	resp := &EpisodeResponse{
		ID:            e.ID,
		SeriesID:      e.SeriesID,
		SeasonNumber:  e.SeasonNumber,
		EpisodeNumber: e.EpisodeNumber,
		Title:         e.Title,
		ReleaseDate:   e.ReleaseDate.Format(DateFormat),
		Duration:      FormatDuration(e.DurationSec),
		CreatedAt:     e.CreatedAt.Format(DateTimeFormat),
	}
	if e.Series != nil {
		resp.SeriesName = e.Series.Title
	}
	return resp
}
