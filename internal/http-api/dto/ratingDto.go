package dto

import "cinelog/internal/http-api/models"

type RatingCreateDTO struct {
	MovieID  *int64 `json:"movie_id"`
	SeriesID *int64 `json:"series_id"`
	Score    int    `json:"score" binding:"required,min=1,max=10"`
}

type RatingResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	MovieID   *int64 `json:"movie_id,omitempty"`
	SeriesID  *int64 `json:"series_id,omitempty"`
	Score     int    `json:"score"`
	CreatedAt string `json:"created_at"`
}

// AverageRatingResponse reports the mean score and vote count for one
// movie or series.
type AverageRatingResponse struct {
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}

func FromModelToRatingResponse(r *models.Rating) *RatingResponse {
	resp := &RatingResponse{
		ID:        r.ID,
		MovieID:   r.MovieID,
		SeriesID:  r.SeriesID,
		Score:     r.Score,
		CreatedAt: r.CreatedAt.Format(DateTimeFormat),
	}
	if r.User != nil {
		resp.Username = r.User.Username
	}
	return resp
}
