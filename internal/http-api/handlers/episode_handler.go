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

type EpisodeHandler struct {
	episodes service.EpisodeService
	logger   *slog.Logger
}

func NewEpisodeHandler(episodes service.EpisodeService, logger *slog.Logger) *EpisodeHandler {
	return &EpisodeHandler{episodes: episodes, logger: logger}
}

func (h *EpisodeHandler) Create(c *gin.Context) {
	var body dto.EpisodeCreateDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, h.logger, bindError(err))
		return
	}
	req, err := body.ToRequest()
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	episode, err := h.episodes.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, episode)
}

func (h *EpisodeHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	var body dto.EpisodeUpdateDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, h.logger, bindError(err))
		return
	}
	req, err := body.ToRequest()
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	episode, err := h.episodes.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, episode)
}

func (h *EpisodeHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if err := h.episodes.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EpisodeHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	episode, err := h.episodes.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, episode)
}

func (h *EpisodeHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	resp, err := h.episodes.GetPaginated(c.Request.Context(), page, pageSize)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BySeries lists all episodes of one series in airing order.
func (h *EpisodeHandler) BySeries(c *gin.Context) {
	seriesID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, h.logger, apperr.InvalidArgument("series id must be an integer"))
		return
	}
	episodes, err := h.episodes.GetBySeriesID(c.Request.Context(), seriesID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, episodes)
}
