package service

import (
	"testing"

	"cinelog/internal/http-api/apperr"
	"cinelog/internal/http-api/models"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func TestValidateTarget(t *testing.T) {
	tests := []struct {
		name     string
		movieID  *int64
		seriesID *int64
		wantErr  bool
	}{
		{"movie only", int64Ptr(1), nil, false},
		{"series only", nil, int64Ptr(2), false},
		{"neither", nil, nil, true},
		{"both", int64Ptr(1), int64Ptr(2), true},
		{"zero movie id", int64Ptr(0), nil, true},
		{"negative series id", nil, int64Ptr(-5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTarget(tt.movieID, tt.seriesID)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequireID(t *testing.T) {
	assert.NoError(t, requireID(1, "movie"))
	assert.Error(t, requireID(0, "movie"))
	assert.Error(t, requireID(-3, "movie"))
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(requireID(0, "movie")))
}

func TestMatchesKind(t *testing.T) {
	movie := int64Ptr(1)

	assert.True(t, matchesKind("movie", movie, nil))
	assert.False(t, matchesKind("movie", nil, int64Ptr(2)))
	assert.True(t, matchesKind("SERIES", nil, int64Ptr(2)))
	assert.True(t, matchesKind("", movie, nil))
	assert.True(t, matchesKind("bogus", nil, int64Ptr(2)))
}

func TestAuthorizeOwner(t *testing.T) {
	comment := &models.Comment{UserID: "owner-uuid"}

	assert.NoError(t, authorizeOwner(comment, "owner-uuid"))

	err := authorizeOwner(comment, "someone-else")
	assert.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	err = authorizeOwner(comment, "")
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}
