package handlers

import (
	"log/slog"
	"net/http"

	"cinelog/internal/http-api/dto"
	"cinelog/internal/http-api/service"
	"cinelog/internal/middleware/auth"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratings service.RatingService
	logger  *slog.Logger
}

func NewRatingHandler(ratings service.RatingService, logger *slog.Logger) *RatingHandler {
	return &RatingHandler{ratings: ratings, logger: logger}
}

func (h *RatingHandler) Create(c *gin.Context) {
	var req dto.RatingCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.logger, bindError(err))
		return
	}
	rating, err := h.ratings.Create(c.Request.Context(), c.GetString(auth.CtxUserID), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, rating)
}

func (h *RatingHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if err := h.ratings.Delete(c.Request.Context(), c.GetString(auth.CtxUserID), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Mine lists the caller's own ratings; ?type=movie or ?type=series
// narrows the listing.
func (h *RatingHandler) Mine(c *gin.Context) {
	ratings, err := h.ratings.GetByUser(c.Request.Context(), c.GetString(auth.CtxUserID), c.Query("type"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// Check reports whether the caller already rated the given title.
func (h *RatingHandler) Check(c *gin.Context) {
	req, err := targetFromQuery(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	rated, err := h.ratings.IsRated(c.Request.Context(), c.GetString(auth.CtxUserID), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rated": rated})
}

func (h *RatingHandler) MovieAverage(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	avg, err := h.ratings.AverageForMovie(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, avg)
}

func (h *RatingHandler) SeriesAverage(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	avg, err := h.ratings.AverageForSeries(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, avg)
}
