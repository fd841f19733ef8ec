package service

import (
	"context"
	"errors"
	"strings"

	"cinelog/internal/cache"
	"cinelog/internal/http-api/apperr"
	"cinelog/internal/http-api/repository"

	"gorm.io/gorm"
)

// validateTarget enforces the exactly-one-of rule every user content
// record follows: a comment, rating, favorite or watchlist entry points
// at one movie or one series, never both and never neither.
func validateTarget(movieID, seriesID *int64) error {
	if movieID == nil && seriesID == nil {
		return apperr.InvalidArgument("either movie_id or series_id must be set")
	}
	if movieID != nil && seriesID != nil {
		return apperr.InvalidArgument("only one of movie_id and series_id may be set")
	}
	if movieID != nil && *movieID <= 0 {
		return apperr.InvalidArgument("movie_id must be positive")
	}
	if seriesID != nil && *seriesID <= 0 {
		return apperr.InvalidArgument("series_id must be positive")
	}
	return nil
}

// requireID rejects non-positive identifiers before they hit the
// database.
func requireID(id int64, what string) error {
	if id <= 0 {
		return apperr.InvalidArgument("%s id must be positive", what)
	}
	return nil
}

// asNotFound translates gorm's record-not-found into the service error
// taxonomy; every other error passes through unchanged.
func asNotFound(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(format, args...)
	}
	return err
}

// targetChecker verifies the movie or series a user content record
// points at actually exists. Embedded by the comment, rating, favorite
// and watchlist services.
type targetChecker struct {
	movies repository.MovieRepository
	series repository.SeriesRepository
}

func (t targetChecker) ensureTargetExists(ctx context.Context, movieID, seriesID *int64) error {
	if movieID != nil {
		if _, err := t.movies.GetByID(ctx, *movieID); err != nil {
			return asNotFound(err, "movie %d not found", *movieID)
		}
	}
	if seriesID != nil {
		if _, err := t.series.GetByID(ctx, *seriesID); err != nil {
			return asNotFound(err, "series %d not found", *seriesID)
		}
	}
	return nil
}

// matchesKind reports whether a record pointing at the given target
// fits the requested filter: "movie", "series", or anything else for
// no filtering. Permissive like the sort order parameter.
func matchesKind(kind string, movieID, seriesID *int64) bool {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "movie":
		return movieID != nil
	case "series":
		return seriesID != nil
	default:
		return true
	}
}

// invalidateTarget drops the cached detail payload for whichever title
// the record points at.
func invalidateTarget(ctx context.Context, c *cache.Cache, movieID, seriesID *int64) {
	if movieID != nil {
		c.Delete(ctx, movieCacheKey(*movieID))
	}
	if seriesID != nil {
		c.Delete(ctx, seriesCacheKey(*seriesID))
	}
}
