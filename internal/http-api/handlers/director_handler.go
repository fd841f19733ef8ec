package handlers

import (
	"log/slog"
	"net/http"

	"cinelog/internal/http-api/dto"
	"cinelog/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type DirectorHandler struct {
	directors service.DirectorService
	logger    *slog.Logger
}

func NewDirectorHandler(directors service.DirectorService, logger *slog.Logger) *DirectorHandler {
	return &DirectorHandler{directors: directors, logger: logger}
}

func (h *DirectorHandler) Create(c *gin.Context) {
	var form dto.PersonCreateForm
	if err := c.ShouldBind(&form); err != nil {
		writeError(c, h.logger, bindError(err))
		return
	}
	image, err := optionalFile(c, "image")
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	req, err := form.ToRequest(image)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	director, err := h.directors.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, director)
}

func (h *DirectorHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	var form dto.PersonUpdateForm
	if err := c.ShouldBind(&form); err != nil {
		writeError(c, h.logger, bindError(err))
		return
	}
	image, err := optionalFile(c, "image")
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	req, err := form.ToRequest(image)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	director, err := h.directors.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, director)
}

func (h *DirectorHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if err := h.directors.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DirectorHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	director, err := h.directors.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, director)
}

func (h *DirectorHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	resp, err := h.directors.GetPaginated(c.Request.Context(), page, pageSize)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
