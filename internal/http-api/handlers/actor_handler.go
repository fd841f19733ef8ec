package handlers

import (
	"log/slog"
	"net/http"

	"cinelog/internal/http-api/dto"
	"cinelog/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ActorHandler struct {
	actors service.ActorService
	logger *slog.Logger
}

func NewActorHandler(actors service.ActorService, logger *slog.Logger) *ActorHandler {
	return &ActorHandler{actors: actors, logger: logger}
}

func (h *ActorHandler) Create(c *gin.Context) {
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
	actor, err := h.actors.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, actor)
}

func (h *ActorHandler) Update(c *gin.Context) {
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
	actor, err := h.actors.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, actor)
}

func (h *ActorHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if err := h.actors.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ActorHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	actor, err := h.actors.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, actor)
}

func (h *ActorHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	resp, err := h.actors.GetPaginated(c.Request.Context(), page, pageSize)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
