package handlers

import (
	"log/slog"
	"net/http"

	"cinelog/internal/http-api/dto"
	"cinelog/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type GenreHandler struct {
	genres service.GenresService
	logger *slog.Logger
}

func NewGenreHandler(genres service.GenresService, logger *slog.Logger) *GenreHandler {
	return &GenreHandler{genres: genres, logger: logger}
}

func (h *GenreHandler) Create(c *gin.Context) {
	var req dto.GenreCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.logger, bindError(err))
		return
	}
	genre, err := h.genres.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, genre)
}

func (h *GenreHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	var req dto.GenreUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.logger, bindError(err))
		return
	}
	genre, err := h.genres.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, genre)
}

func (h *GenreHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if err := h.genres.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GenreHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	genre, err := h.genres.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, genre)
}

func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.genres.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, genres)
}
