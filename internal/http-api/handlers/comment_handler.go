package handlers

import (
	"log/slog"
	"net/http"

	"cinelog/internal/http-api/dto"
	"cinelog/internal/http-api/service"
	"cinelog/internal/middleware/auth"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments service.CommentService
	logger   *slog.Logger
}

func NewCommentHandler(comments service.CommentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{comments: comments, logger: logger}
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.logger, bindError(err))
		return
	}
	comment, err := h.comments.Create(c.Request.Context(), c.GetString(auth.CtxUserID), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	var req dto.CommentUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.logger, bindError(err))
		return
	}
	comment, err := h.comments.Update(c.Request.Context(), c.GetString(auth.CtxUserID), id, req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if err := h.comments.Delete(c.Request.Context(), c.GetString(auth.CtxUserID), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CommentHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	comment, err := h.comments.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// Mine lists the caller's own comments.
func (h *CommentHandler) Mine(c *gin.Context) {
	comments, err := h.comments.GetByUser(c.Request.Context(), c.GetString(auth.CtxUserID))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) ByMovie(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	comments, err := h.comments.GetByMovie(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) BySeries(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	comments, err := h.comments.GetBySeries(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}
