package dto

import (
	"mime/multipart"
	"time"

	"cinelog/internal/http-api/models"
)

type SeriesCreateForm struct {
	Title       string  `form:"title" binding:"required,max=100"`
	Description string  `form:"description" binding:"required"`
	ReleaseDate string  `form:"release_date" binding:"required"`
	GenreIDs    []int64 `form:"genre_ids" binding:"required,min=1,dive,gt=0"`
	DirectorIDs []int64 `form:"director_ids" binding:"required,min=1,dive,gt=0"`
	Actors      string  `form:"actors" binding:"required"`
}

type SeriesCreateRequest struct {
	Title       string
	Description string
	ReleaseDate time.Time
	GenreIDs    []int64
	DirectorIDs []int64
	Actors      []CastEntry
	Poster      *multipart.FileHeader
}

func (f SeriesCreateForm) ToRequest(poster *multipart.FileHeader) (*SeriesCreateRequest, error) {
	release, err := ParseDate(f.ReleaseDate, "release_date")
	if err != nil {
		return nil, err
	}
	actors, err := parseCast(f.Actors)
	if err != nil {
		return nil, err
	}
	return &SeriesCreateRequest{
		Title:       f.Title,
		Description: f.Description,
		ReleaseDate: release,
		GenreIDs:    f.GenreIDs,
		DirectorIDs: f.DirectorIDs,
		Actors:      actors,
		Poster:      poster,
	}, nil
}

type SeriesUpdateForm struct {
	Title       *string `form:"title" binding:"omitempty,max=100"`
	Description *string `form:"description"`
	ReleaseDate *string `form:"release_date"`
	GenreIDs    []int64 `form:"genre_ids" binding:"omitempty,dive,gt=0"`
	DirectorIDs []int64 `form:"director_ids" binding:"omitempty,dive,gt=0"`
	Actors      *string `form:"actors"`
}

// SeriesUpdateRequest is a sparse patch: nil means "leave unchanged".
type SeriesUpdateRequest struct {
	Title       *string
	Description *string
	ReleaseDate *time.Time
	GenreIDs    []int64
	DirectorIDs []int64
	Actors      []CastEntry
	Poster      *multipart.FileHeader
}

func (f SeriesUpdateForm) ToRequest(poster *multipart.FileHeader) (*SeriesUpdateRequest, error) {
	req := &SeriesUpdateRequest{
		Title:       f.Title,
		Description: f.Description,
		GenreIDs:    f.GenreIDs,
		DirectorIDs: f.DirectorIDs,
		Poster:      poster,
	}
	if f.ReleaseDate != nil {
		release, err := ParseDate(*f.ReleaseDate, "release_date")
		if err != nil {
			return nil, err
		}
		req.ReleaseDate = &release
	}
	if f.Actors != nil {
		actors, err := parseCast(*f.Actors)
		if err != nil {
			return nil, err
		}
		req.Actors = actors
	}
	return req, nil
}

type SeriesResponse struct {
	ID            int64             `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	ReleaseDate   string            `json:"release_date"`
	PosterURL     string            `json:"poster_url"`
	CreatedAt     string            `json:"created_at"`
	AverageRating float64           `json:"average_rating"`
	Genres        []GenreResponse   `json:"genres"`
	Directors     []PersonSummary   `json:"directors"`
	Actors        []CastResponse    `json:"actors"`
	Episodes      []EpisodeResponse `json:"episodes"`
	Comments      []CommentSummary  `json:"comments"`
}

type SeriesSummary struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	PosterURL   string `json:"poster_url"`
	ReleaseDate string `json:"release_date"`
}

func FromModelToSeriesResponse(s *models.Series) *SeriesResponse {
	resp := &SeriesResponse{
		ID:            s.ID,
		Title:         s.Title,
		Description:   s.Description,
		ReleaseDate:   s.ReleaseDate.Format(DateFormat),
		PosterURL:     s.PosterURL,
		CreatedAt:     s.CreatedAt.Format(DateTimeFormat),
		AverageRating: averageScore(s.Ratings),
		Genres:        make([]GenreResponse, 0, len(s.Genres)),
		Directors:     make([]PersonSummary, 0, len(s.Directors)),
		Actors:        make([]CastResponse, 0, len(s.Actors)),
		Episodes:      make([]EpisodeResponse, 0, len(s.Episodes)),
		Comments:      make([]CommentSummary, 0, len(s.Comments)),
	}
	for _, g := range s.Genres {
		resp.Genres = append(resp.Genres, GenreResponse{ID: g.ID, Name: g.Name})
	}
	for _, d := range s.Directors {
		resp.Directors = append(resp.Directors, PersonSummary{ID: d.ID, FullName: d.FullName})
	}
	for _, a := range s.Actors {
		cast := CastResponse{ActorID: a.ActorID, CharacterName: a.CharacterName}
		if a.Actor != nil {
			cast.ActorName = a.Actor.FullName
			cast.ImageURL = a.Actor.ImageURL
		}
		resp.Actors = append(resp.Actors, cast)
	}
	for _, e := range s.Episodes {
		resp.Episodes = append(resp.Episodes, *FromModelToEpisodeResponse(&e))
	}
	for _, c := range s.Comments {
		resp.Comments = append(resp.Comments, FromModelToCommentSummary(&c))
	}
	return resp
}

func FromModelToSeriesSummary(s *models.Series) SeriesSummary {
	return SeriesSummary{
		ID:          s.ID,
		Title:       s.Title,
		PosterURL:   s.PosterURL,
		ReleaseDate: s.ReleaseDate.Format(DateFormat),
	}
}
