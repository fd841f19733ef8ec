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

type SeriesHandler struct {
	series service.SeriesService
	logger *slog.Logger
}

func NewSeriesHandler(series service.SeriesService, logger *slog.Logger) *SeriesHandler {
	return &SeriesHandler{series: series, logger: logger}
}

func (h *SeriesHandler) Create(c *gin.Context) {
	var form dto.SeriesCreateForm
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
	series, err := h.series.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, series)
}

func (h *SeriesHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	var form dto.SeriesUpdateForm
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
	series, err := h.series.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

func (h *SeriesHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if err := h.series.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SeriesHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	series, err := h.series.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// ListAll returns every series without pagination.
func (h *SeriesHandler) ListAll(c *gin.Context) {
	series, err := h.series.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

func (h *SeriesHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	resp, err := h.series.GetPaginated(c.Request.Context(), page, pageSize)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SeriesHandler) Search(c *gin.Context) {
	series, err := h.series.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

func (h *SeriesHandler) FilterByYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		writeError(c, h.logger, apperr.InvalidArgument("year must be an integer"))
		return
	}
	series, err := h.series.FilterByReleaseYear(c.Request.Context(), year)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

func (h *SeriesHandler) ByGenre(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	series, err := h.series.GetByGenreID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

func (h *SeriesHandler) ByActor(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	series, err := h.series.GetByActorID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

func (h *SeriesHandler) ByDirector(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	series, err := h.series.GetByDirectorID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

func (h *SeriesHandler) Sort(c *gin.Context) {
	series, err := h.series.SortByCreatedDate(c.Request.Context(), c.Query("order"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, series)
}
