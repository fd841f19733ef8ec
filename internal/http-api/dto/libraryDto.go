package dto

import "cinelog/internal/http-api/models"

// TargetDTO is the shared create-request shape for favorites and
// watchlist entries: exactly one of movie_id/series_id.
type TargetDTO struct {
	MovieID  *int64 `json:"movie_id"`
	SeriesID *int64 `json:"series_id"`
}

// MarkResponse covers both favorites and watchlist entries; the two
// differ only in which table they live in.
type MarkResponse struct {
	ID        int64          `json:"id"`
	MovieID   *int64         `json:"movie_id,omitempty"`
	SeriesID  *int64         `json:"series_id,omitempty"`
	Movie     *MovieSummary  `json:"movie,omitempty"`
	Series    *SeriesSummary `json:"series,omitempty"`
	CreatedAt string         `json:"created_at"`
}

func FromModelToFavoriteResponse(f *models.Favorite) *MarkResponse {
	resp := &MarkResponse{
		ID:        f.ID,
		MovieID:   f.MovieID,
		SeriesID:  f.SeriesID,
		CreatedAt: f.CreatedAt.Format(DateTimeFormat),
	}
	if f.Movie != nil {
		summary := FromModelToMovieSummary(f.Movie)
		resp.Movie = &summary
	}
	if f.Series != nil {
		summary := FromModelToSeriesSummary(f.Series)
		resp.Series = &summary
	}
	return resp
}

func FromModelToWatchlistResponse(w *models.Watchlist) *MarkResponse {
	resp := &MarkResponse{
		ID:        w.ID,
		MovieID:   w.MovieID,
		SeriesID:  w.SeriesID,
		CreatedAt: w.CreatedAt.Format(DateTimeFormat),
	}
	if w.Movie != nil {
		summary := FromModelToMovieSummary(w.Movie)
		resp.Movie = &summary
	}
	if w.Series != nil {
		summary := FromModelToSeriesSummary(w.Series)
		resp.Series = &summary
	}
	return resp
}
