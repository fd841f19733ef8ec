package dto

import (
	"fmt"
	"math"
	"time"

	"cinelog/internal/http-api/apperr"
)

// Wire formats for dates. Timestamps carry minutes, calendar dates do
// not.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04"
)

// ParseDate parses a calendar date in DateFormat.
func ParseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, apperr.InvalidArgument("%s must be a valid date in format %s", field, DateFormat)
	}
	return t, nil
}

// ParseDuration parses an hh:mm:ss duration into seconds.
func ParseDuration(value string) (int64, error) {
	var h, m, s int64
	if _, err := fmt.Sscanf(value, "%d:%d:%d", &h, &m, &s); err != nil {
		return 0, apperr.InvalidArgument("duration must be in format hh:mm:ss")
	}
	if h < 0 || m < 0 || m > 59 || s < 0 || s > 59 {
		return 0, apperr.InvalidArgument("duration must be in format hh:mm:ss")
	}
	total := h*3600 + m*60 + s
	if total <= 0 {
		return 0, apperr.InvalidArgument("duration must be positive")
	}
	return total, nil
}

// FormatDuration renders seconds as hh:mm:ss.
func FormatDuration(seconds int64) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

// Round1 rounds to one decimal place, halves away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
