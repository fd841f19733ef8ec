package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"cinelog/internal/http-api/apperr"
	"cinelog/internal/http-api/dto"
	"cinelog/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	movies service.MovieService
	logger *slog.Logger
}

func NewMovieHandler(movies service.MovieService, logger *slog.Logger) *MovieHandler {
	return &MovieHandler{movies: movies, logger: logger}
}

func (h *MovieHandler) Create(c *gin.Context) {
	var form dto.MovieCreateForm
	if err := c.ShouldBind(&form); err != nil {
		writeError(c, h.logger, bindError(err))
		return
	}
	poster, err := optionalFile(c, "poster")
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	req, err := form.ToRequest(poster)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	movie, err := h.movies.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, movie)
}

func (h *MovieHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	var form dto.MovieUpdateForm
	if err := c.ShouldBind(&form); err != nil {
		writeError(c, h.logger, bindError(err))
		return
	}
	poster, err := optionalFile(c, "poster")
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	req, err := form.ToRequest(poster)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	movie, err := h.movies.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if err := h.movies.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MovieHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	movie, err := h.movies.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

// ListAll returns every movie without pagination.
func (h *MovieHandler) ListAll(c *gin.Context) {
	movies, err := h.movies.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	resp, err := h.movies.GetPaginated(c.Request.Context(), page, pageSize)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MovieHandler) Search(c *gin.Context) {
	movies, err := h.movies.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) FilterByYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		writeError(c, h.logger, apperr.InvalidArgument("year must be an integer"))
		return
	}
	movies, err := h.movies.FilterByReleaseYear(c.Request.Context(), year)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) ByGenre(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	movies, err := h.movies.GetByGenreID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) ByActor(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	movies, err := h.movies.GetByActorID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) ByDirector(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	movies, err := h.movies.GetByDirectorID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) Sort(c *gin.Context) {
	movies, err := h.movies.SortByCreatedDate(c.Request.Context(), c.Query("order"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, movies)
}
