package service

import (
	"context"
	"testing"

	"cinelog/internal/http-api/apperr"
	"cinelog/internal/http-api/dto"
	"cinelog/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCommentService(comments *mockCommentRepo, movies *mockMovieRepo, series *mockSeriesRepo) CommentService {
	return NewCommentService(comments, movies, series, nil, testLogger())
}

func TestCommentCreateValidatesTarget(t *testing.T) {
	comments := new(mockCommentRepo)
	svc := newCommentService(comments, new(mockMovieRepo), new(mockSeriesRepo))
	ctx := context.Background()

	_, err := svc.Create(ctx, "u", dto.CommentCreateDTO{Content: "no target"})
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	_, err = svc.Create(ctx, "u", dto.CommentCreateDTO{
		MovieID:  int64Ptr(1),
		SeriesID: int64Ptr(2),
		Content:  "both targets",
	})
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
	comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommentCreateUnknownTarget(t *testing.T) {
	comments := new(mockCommentRepo)
	movies := new(mockMovieRepo)
	svc := newCommentService(comments, movies, new(mockSeriesRepo))
	ctx := context.Background()

	movies.On("GetByID", ctx, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(ctx, "u", dto.CommentCreateDTO{MovieID: int64Ptr(404), Content: "hi"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCommentCreateOwnerIsCaller(t *testing.T) {
	comments := new(mockCommentRepo)
	movies := new(mockMovieRepo)
	svc := newCommentService(comments, movies, new(mockSeriesRepo))
	ctx := context.Background()

	movies.On("GetByID", ctx, int64(1)).Return(&models.Movie{ID: 1}, nil)
	comments.On("Create", ctx, mock.MatchedBy(func(c *models.Comment) bool {
		return c.UserID == "caller-uuid" && *c.MovieID == 1
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Comment).ID = 11
	}).Return(nil)
	comments.On("GetByID", ctx, int64(11)).Return(&models.Comment{ID: 11, UserID: "caller-uuid", MovieID: int64Ptr(1), Content: "hi"}, nil)

	resp, err := svc.Create(ctx, "caller-uuid", dto.CommentCreateDTO{MovieID: int64Ptr(1), Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
	comments.AssertExpectations(t)
}

func TestCommentUpdateForbiddenForNonOwner(t *testing.T) {
	comments := new(mockCommentRepo)
	svc := newCommentService(comments, new(mockMovieRepo), new(mockSeriesRepo))
	ctx := context.Background()

	stored := &models.Comment{ID: 7, UserID: "owner", MovieID: int64Ptr(1), Content: "original"}
	comments.On("GetByID", ctx, int64(7)).Return(stored, nil)

	_, err := svc.Update(ctx, "intruder", 7, dto.CommentUpdateDTO{Content: "hijacked"})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	// The record is never written when authorization fails.
	comments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Equal(t, "original", stored.Content)
}

func TestCommentDeleteByOwner(t *testing.T) {
	comments := new(mockCommentRepo)
	svc := newCommentService(comments, new(mockMovieRepo), new(mockSeriesRepo))
	ctx := context.Background()

	stored := &models.Comment{ID: 7, UserID: "owner", SeriesID: int64Ptr(2)}
	comments.On("GetByID", ctx, int64(7)).Return(stored, nil)
	comments.On("Delete", ctx, stored).Return(nil)

	require.NoError(t, svc.Delete(ctx, "owner", 7))
	comments.AssertExpectations(t)
}
