package handlers

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"cinelog/internal/http-api/apperr"
	"cinelog/internal/http-api/dto"

	"github.com/gin-gonic/gin"
)

// maxPageSize caps how many rows one page may request.
const maxPageSize = 100

// writeError renders the error as an RFC 7807 problem document.
// Unclassified errors are logged and reported without internals.
func writeError(c *gin.Context, logger *slog.Logger, err error) {
	status := apperr.Status(err)
	detail := err.Error()
	if apperr.KindOf(err) == apperr.KindUnknown || apperr.KindOf(err) == apperr.KindIOFailure {
		logger.Error("request failed", "path", c.Request.URL.Path, "error", err)
		detail = "an unexpected error occurred"
	}
	c.AbortWithStatusJSON(status, apperr.ProblemDetails{
		Status:   status,
		Title:    apperr.Title(err),
		Detail:   detail,
		Instance: c.Request.URL.Path,
	})
}

// bindError wraps gin binding failures into the error taxonomy.
func bindError(err error) error {
	return apperr.InvalidArgument("invalid request body: %v", err)
}

// pathID parses the :id path segment.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperr.InvalidArgument("id must be an integer")
	}
	return id, nil
}

// pageParams reads page/page_size query values and clamps them into
// the supported window instead of failing the request.
func pageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// targetFromQuery reads movie_id/series_id query parameters into the
// shared target shape. Validation of the one-of rule happens in the
// service layer.
func targetFromQuery(c *gin.Context) (dto.TargetDTO, error) {
	var target dto.TargetDTO
	if raw := c.Query("movie_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return target, apperr.InvalidArgument("movie_id must be an integer")
		}
		target.MovieID = &id
	}
	if raw := c.Query("series_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return target, apperr.InvalidArgument("series_id must be an integer")
		}
		target.SeriesID = &id
	}
	return target, nil
}

// optionalFile returns the named upload, or nil when the field is
// absent.
func optionalFile(c *gin.Context, field string) (*multipart.FileHeader, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, apperr.InvalidArgument("invalid %s upload: %v", field, err)
	}
	return file, nil
}
