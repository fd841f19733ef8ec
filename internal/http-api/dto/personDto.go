package dto

import (
	"mime/multipart"
	"time"

	"cinelog/internal/http-api/models"
)

// PersonSummary is the short projection used for directors (and other
// people) embedded in movie/series responses.
type PersonSummary struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

// PersonCreateForm covers actor and director creation; both carry the
// same fields, with an optional portrait image.
type PersonCreateForm struct {
	FullName  string  `form:"full_name" binding:"required,max=30"`
	BirthDate string  `form:"birth_date" binding:"required"`
	Bio       *string `form:"bio" binding:"omitempty,max=1000"`
}

type PersonCreateRequest struct {
	FullName  string
	BirthDate time.Time
	Bio       *string
	Image     *multipart.FileHeader
}

func (f PersonCreateForm) ToRequest(image *multipart.FileHeader) (*PersonCreateRequest, error) {
	birth, err := ParseDate(f.BirthDate, "birth_date")
	if err != nil {
		return nil, err
	}
	return &PersonCreateRequest{
		FullName:  f.FullName,
		BirthDate: birth,
		Bio:       f.Bio,
		Image:     image,
	}, nil
}

type PersonUpdateForm struct {
	FullName  *string `form:"full_name" binding:"omitempty,max=30"`
	BirthDate *string `form:"birth_date"`
	Bio       *string `form:"bio" binding:"omitempty,max=1000"`
}

type PersonUpdateRequest struct {
	FullName  *string
	BirthDate *time.Time
	Bio       *string
	Image     *multipart.FileHeader
}

func (f PersonUpdateForm) ToRequest(image *multipart.FileHeader) (*PersonUpdateRequest, error) {
	req := &PersonUpdateRequest{
		FullName: f.FullName,
		Bio:      f.Bio,
		Image:    image,
	}
	if f.BirthDate != nil {
		birth, err := ParseDate(*f.BirthDate, "birth_date")
		if err != nil {
			return nil, err
		}
		req.BirthDate = &birth
	}
	return req, nil
}

type ActorResponse struct {
	ID        int64           `json:"id"`
	FullName  string          `json:"full_name"`
	BirthDate string          `json:"birth_date"`
	Bio       *string         `json:"bio,omitempty"`
	ImageURL  *string         `json:"image_url,omitempty"`
	CreatedAt string          `json:"created_at"`
	Movies    []MovieSummary  `json:"movies"`
	Series    []SeriesSummary `json:"series"`
}

func FromModelToActorResponse(a *models.Actor) *ActorResponse {
	resp := &ActorResponse{
		ID:        a.ID,
		FullName:  a.FullName,
		BirthDate: a.BirthDate.Format(DateFormat),
		Bio:       a.Bio,
		ImageURL:  a.ImageURL,
		CreatedAt: a.CreatedAt.Format(DateTimeFormat),
		Movies:    make([]MovieSummary, 0, len(a.MovieCredits)),
		Series:    make([]SeriesSummary, 0, len(a.SeriesCredits)),
	}
	for _, credit := range a.MovieCredits {
		if credit.Movie != nil {
			resp.Movies = append(resp.Movies, FromModelToMovieSummary(credit.Movie))
		}
	}
	for _, credit := range a.SeriesCredits {
		if credit.Series != nil {
			resp.Series = append(resp.Series, FromModelToSeriesSummary(credit.Series))
		}
	}
	return resp
}

type DirectorResponse struct {
	ID        int64           `json:"id"`
	FullName  string          `json:"full_name"`
	BirthDate string          `json:"birth_date"`
	Bio       *string         `json:"bio,omitempty"`
	PhotoURL  *string         `json:"photo_url,omitempty"`
	CreatedAt string          `json:"created_at"`
	Movies    []MovieSummary  `json:"movies"`
	Series    []SeriesSummary `json:"series"`
}

func FromModelToDirectorResponse(d *models.Director) *DirectorResponse {
	resp := &DirectorResponse{
		ID:        d.ID,
		FullName:  d.FullName,
		BirthDate: d.BirthDate.Format(DateFormat),
		Bio:       d.Bio,
		PhotoURL:  d.PhotoURL,
		CreatedAt: d.CreatedAt.Format(DateTimeFormat),
		Movies:    make([]MovieSummary, 0, len(d.Movies)),
		Series:    make([]SeriesSummary, 0, len(d.Series)),
	}
	for _, m := range d.Movies {
		resp.Movies = append(resp.Movies, FromModelToMovieSummary(&m))
	}
	for _, s := range d.Series {
		resp.Series = append(resp.Series, FromModelToSeriesSummary(&s))
	}
	return resp
}
