package repository

import (
	"context"
	"fmt"

	"cinelog/internal/http-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, c *models.Comment) error
	Update(ctx context.Context, c *models.Comment) error
	Delete(ctx context.Context, c *models.Comment) error
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	GetByUser(ctx context.Context, userID string) ([]models.Comment, error)
	GetByMovie(ctx context.Context, movieID int64) ([]models.Comment, error)
	GetBySeries(ctx context.Context, seriesID int64) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) withRefs(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Movie").
		Preload("Series")
}

func (r *commentRepository) Create(ctx context.Context, c *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

func (r *commentRepository) Update(ctx context.Context, c *models.Comment) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, c *models.Comment) error {
	if err := r.db.WithContext(ctx).Delete(c).Error; err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	var c models.Comment
	if err := r.withRefs(r.db.WithContext(ctx)).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commentRepository) GetByUser(ctx context.Context, userID string) ([]models.Comment, error) {
	var list []models.Comment
	err := r.withRefs(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *commentRepository) GetByMovie(ctx context.Context, movieID int64) ([]models.Comment, error) {
	var list []models.Comment
	err := r.withRefs(r.db.WithContext(ctx)).
		Where("movie_id = ?", movieID).
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *commentRepository) GetBySeries(ctx context.Context, seriesID int64) ([]models.Comment, error) {
	var list []models.Comment
	err := r.withRefs(r.db.WithContext(ctx)).
		Where("series_id = ?", seriesID).
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
