package dto

import (
	"encoding/json"
	"mime/multipart"
	"time"
	"unicode/utf8"

	"cinelog/internal/http-api/apperr"
	"cinelog/internal/http-api/models"
)

// CastEntry is one (actor, character) pair supplied on create/update.
// The actors form field carries a JSON array of these.
type CastEntry struct {
	ActorID       int64  `json:"actor_id"`
	CharacterName string `json:"character_name"`
}

// MovieCreateForm is the multipart carrier for POST /api/movies.
type MovieCreateForm struct {
	Title       string  `form:"title" binding:"required,max=100"`
	Description string  `form:"description" binding:"required"`
	ReleaseDate string  `form:"release_date" binding:"required"`
	Duration    string  `form:"duration" binding:"required"`
	GenreIDs    []int64 `form:"genre_ids" binding:"required,min=1,dive,gt=0"`
	DirectorIDs []int64 `form:"director_ids" binding:"required,min=1,dive,gt=0"`
	Actors      string  `form:"actors" binding:"required"`
}

// MovieCreateRequest is what the service consumes.
type MovieCreateRequest struct {
	Title       string
	Description string
	ReleaseDate time.Time
	DurationSec int64
	GenreIDs    []int64
	DirectorIDs []int64
	Actors      []CastEntry
	Poster      *multipart.FileHeader
}

func (f MovieCreateForm) ToRequest(poster *multipart.FileHeader) (*MovieCreateRequest, error) {
	release, err := ParseDate(f.ReleaseDate, "release_date")
	if err != nil {
		return nil, err
	}
	duration, err := ParseDuration(f.Duration)
	if err != nil {
		return nil, err
	}
	actors, err := parseCast(f.Actors)
	if err != nil {
		return nil, err
	}
	return &MovieCreateRequest{
		Title:       f.Title,
		Description: f.Description,
		ReleaseDate: release,
		DurationSec: duration,
		GenreIDs:    f.GenreIDs,
		DirectorIDs: f.DirectorIDs,
		Actors:      actors,
		Poster:      poster,
	}, nil
}

// MovieUpdateForm is the multipart carrier for PUT /api/movies/:id.
// Absent fields leave the stored value unchanged.
type MovieUpdateForm struct {
	Title       *string `form:"title" binding:"omitempty,max=100"`
	Description *string `form:"description"`
	ReleaseDate *string `form:"release_date"`
	Duration    *string `form:"duration"`
	GenreIDs    []int64 `form:"genre_ids" binding:"omitempty,dive,gt=0"`
	DirectorIDs []int64 `form:"director_ids" binding:"omitempty,dive,gt=0"`
	Actors      *string `form:"actors"`
}

// MovieUpdateRequest is a sparse patch: nil means "leave unchanged".
type MovieUpdateRequest struct {
	Title       *string
	Description *string
	ReleaseDate *time.Time
	DurationSec *int64
	GenreIDs    []int64
	DirectorIDs []int64
	Actors      []CastEntry
	Poster      *multipart.FileHeader
}

func (f MovieUpdateForm) ToRequest(poster *multipart.FileHeader) (*MovieUpdateRequest, error) {
	req := &MovieUpdateRequest{
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
	if f.Duration != nil {
		duration, err := ParseDuration(*f.Duration)
		if err != nil {
			return nil, err
		}
		req.DurationSec = &duration
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

const maxCharacterNameLen = 100

func parseCast(raw string) ([]CastEntry, error) {
	var entries []CastEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, apperr.InvalidArgument("actors must be a JSON array of {actor_id, character_name}")
	}
	for _, e := range entries {
		if e.ActorID <= 0 {
			return nil, apperr.InvalidArgument("actor_id must be a positive integer")
		}
		if utf8.RuneCountInString(e.CharacterName) > maxCharacterNameLen {
			return nil, apperr.InvalidArgument("character_name must be at most %d characters", maxCharacterNameLen)
		}
	}
	return entries, nil
}

// CastResponse is the flattened actor/character projection.
type CastResponse struct {
	ActorID       int64   `json:"actor_id"`
	ActorName     string  `json:"actor_name"`
	ImageURL      *string `json:"image_url,omitempty"`
	CharacterName string  `json:"character_name"`
}

type MovieResponse struct {
	ID            int64            `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	ReleaseDate   string           `json:"release_date"`
	Duration      string           `json:"duration"`
	PosterURL     string           `json:"poster_url"`
	CreatedAt     string           `json:"created_at"`
	AverageRating float64          `json:"average_rating"`
	Genres        []GenreResponse  `json:"genres"`
	Directors     []PersonSummary  `json:"directors"`
	Actors        []CastResponse   `json:"actors"`
	Comments      []CommentSummary `json:"comments"`
}

// MovieSummary is the short projection embedded in other responses.
type MovieSummary struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	PosterURL   string `json:"poster_url"`
	ReleaseDate string `json:"release_date"`
}

func FromModelToMovieResponse(m *models.Movie) *MovieResponse {
	resp := &MovieResponse{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		ReleaseDate:   m.ReleaseDate.Format(DateFormat),
		Duration:      FormatDuration(m.DurationSec),
		PosterURL:     m.PosterURL,
		CreatedAt:     m.CreatedAt.Format(DateTimeFormat),
		AverageRating: averageScore(m.Ratings),
		Genres:        make([]GenreResponse, 0, len(m.Genres)),
		Directors:     make([]PersonSummary, 0, len(m.Directors)),
		Actors:        make([]CastResponse, 0, len(m.Actors)),
		Comments:      make([]CommentSummary, 0, len(m.Comments)),
	}
	for _, g := range m.Genres {
		resp.Genres = append(resp.Genres, GenreResponse{ID: g.ID, Name: g.Name})
	}
	for _, d := range m.Directors {
		resp.Directors = append(resp.Directors, PersonSummary{ID: d.ID, FullName: d.FullName})
	}
	for _, a := range m.Actors {
		cast := CastResponse{ActorID: a.ActorID, CharacterName: a.CharacterName}
		if a.Actor != nil {
			cast.ActorName = a.Actor.FullName
			cast.ImageURL = a.Actor.ImageURL
		}
		resp.Actors = append(resp.Actors, cast)
	}
	for _, c := range m.Comments {
		resp.Comments = append(resp.Comments, FromModelToCommentSummary(&c))
	}
	return resp
}

func FromModelToMovieSummary(m *models.Movie) MovieSummary {
	return MovieSummary{
		ID:          m.ID,
		Title:       m.Title,
		PosterURL:   m.PosterURL,
		ReleaseDate: m.ReleaseDate.Format(DateFormat),
	}
}

// averageScore is 0 for an unrated title, otherwise the mean rounded
// to one decimal.
func averageScore(ratings []models.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum int
	for _, r := range ratings {
		sum += r.Score
	}
	return Round1(float64(sum) / float64(len(ratings)))
}
