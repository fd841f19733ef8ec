package dto

import "cinelog/internal/http-api/models"

// CommentCreateDTO carries no user ID: the owner is always the
// authenticated caller.
type CommentCreateDTO struct {
	MovieID  *int64 `json:"movie_id"`
	SeriesID *int64 `json:"series_id"`
	Content  string `json:"content" binding:"required,max=2000"`
}

type CommentUpdateDTO struct {
	Content string `json:"content" binding:"required,max=2000"`
}

type CommentResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	MovieID   *int64 `json:"movie_id,omitempty"`
	SeriesID  *int64 `json:"series_id,omitempty"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// CommentSummary is the short projection embedded in title responses.
type CommentSummary struct {
	Username  string `json:"username"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func FromModelToCommentResponse(c *models.Comment) *CommentResponse {
	resp := &CommentResponse{
		ID:        c.ID,
		MovieID:   c.MovieID,
		SeriesID:  c.SeriesID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt.Format(DateTimeFormat),
	}
	if c.User != nil {
		resp.Username = c.User.Username
	}
	return resp
}

func FromModelToCommentSummary(c *models.Comment) CommentSummary {
	summary := CommentSummary{
		Content:   c.Content,
		CreatedAt: c.CreatedAt.Format(DateTimeFormat),
	}
	if c.User != nil {
		summary.Username = c.User.Username
	}
	return summary
}
