package dto

import "cinelog/internal/http-api/models"

type GenreCreateDTO struct {
	Name string `json:"name" binding:"required,max=100"`
}

type GenreUpdateDTO struct {
	Name string `json:"name" binding:"required,max=100"`
}

type GenreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func FromModelToGenreResponse(g *models.Genre) *GenreResponse {
	return &GenreResponse{ID: g.ID, Name: g.Name}
}
