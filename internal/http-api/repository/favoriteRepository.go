package repository

import (
	"context"
	"fmt"

	"cinelog/internal/http-api/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Create(ctx context.Context, f *models.Favorite) error
	Delete(ctx context.Context, f *models.Favorite) error
	GetByID(ctx context.Context, id int64) (*models.Favorite, error)
	GetByUser(ctx context.Context, userID string) ([]models.Favorite, error)
	Exists(ctx context.Context, userID string, movieID, seriesID *int64) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, f *models.Favorite) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		return fmt.Errorf("create favorite: %w", err)
	}
	return nil
}

func (r *favoriteRepository) Delete(ctx context.Context, f *models.Favorite) error {
	if err := r.db.WithContext(ctx).Delete(f).Error; err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}

func (r *favoriteRepository) GetByID(ctx context.Context, id int64) (*models.Favorite, error) {
	var f models.Favorite
	err := r.db.WithContext(ctx).
		Preload("Movie").
		Preload("Series").
		First(&f, id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *favoriteRepository) GetByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	var list []models.Favorite
	err := r.db.WithContext(ctx).
		Preload("Movie").
		Preload("Series").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID string, movieID, seriesID *int64) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.Favorite{}).Where("user_id = ?", userID)
	if movieID != nil {
		q = q.Where("movie_id = ?", *movieID)
	}
	if seriesID != nil {
		q = q.Where("series_id = ?", *seriesID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
