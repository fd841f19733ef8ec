package handlers

import (
	"log/slog"
	"net/http"

	"cinelog/internal/http-api/dto"
	"cinelog/internal/http-api/service"
	"cinelog/internal/middleware/auth"

	"github.com/gin-gonic/gin"
)

// FavoriteHandler and WatchlistHandler share the same request shapes;
// only the backing service differs.
type FavoriteHandler struct {
	favorites service.FavoriteService
	logger    *slog.Logger
}

func NewFavoriteHandler(favorites service.FavoriteService, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, logger: logger}
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	var req dto.TargetDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.logger, bindError(err))
		return
	}
	mark, err := h.favorites.Add(c.Request.Context(), c.GetString(auth.CtxUserID), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, mark)
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if err := h.favorites.Remove(c.Request.Context(), c.GetString(auth.CtxUserID), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FavoriteHandler) List(c *gin.Context) {
	marks, err := h.favorites.List(c.Request.Context(), c.GetString(auth.CtxUserID), c.Query("type"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, marks)
}

func (h *FavoriteHandler) Contains(c *gin.Context) {
	req, err := targetFromQuery(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	found, err := h.favorites.Contains(c.Request.Context(), c.GetString(auth.CtxUserID), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contains": found})
}

type WatchlistHandler struct {
	watchlist service.WatchlistService
	logger    *slog.Logger
}

func NewWatchlistHandler(watchlist service.WatchlistService, logger *slog.Logger) *WatchlistHandler {
	return &WatchlistHandler{watchlist: watchlist, logger: logger}
}

func (h *WatchlistHandler) Add(c *gin.Context) {
	var req dto.TargetDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.logger, bindError(err))
		return
	}
	mark, err := h.watchlist.Add(c.Request.Context(), c.GetString(auth.CtxUserID), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, mark)
}

func (h *WatchlistHandler) Remove(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if err := h.watchlist.Remove(c.Request.Context(), c.GetString(auth.CtxUserID), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WatchlistHandler) List(c *gin.Context) {
	marks, err := h.watchlist.List(c.Request.Context(), c.GetString(auth.CtxUserID), c.Query("type"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, marks)
}

func (h *WatchlistHandler) Contains(c *gin.Context) {
	req, err := targetFromQuery(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	found, err := h.watchlist.Contains(c.Request.Context(), c.GetString(auth.CtxUserID), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contains": found})
}
