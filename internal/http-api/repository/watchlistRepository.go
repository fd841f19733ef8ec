package repository

import (
	"context"
	"fmt"

	"cinelog/internal/http-api/models"

	"gorm.io/gorm"
)

type WatchlistRepository interface {
	Create(ctx context.Context, w *models.Watchlist) error
	Delete(ctx context.Context, w *models.Watchlist) error
	GetByID(ctx context.Context, id int64) (*models.Watchlist, error)
	GetByUser(ctx context.Context, userID string) ([]models.Watchlist, error)
	Exists(ctx context.Context, userID string, movieID, seriesID *int64) (bool, error)
}

type watchlistRepository struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) WatchlistRepository {
	return &watchlistRepository{db: db}
}

func (r *watchlistRepository) Create(ctx context.Context, w *models.Watchlist) error {
	if err := r.db.WithContext(ctx).Create(w).Error; err != nil {
		return fmt.Errorf("create watchlist entry: %w", err)
	}
	return nil
}

func (r *watchlistRepository) Delete(ctx context.Context, w *models.Watchlist) error {
	if err := r.db.WithContext(ctx).Delete(w).Error; err != nil {
		return fmt.Errorf("delete watchlist entry: %w", err)
	}
	return nil
}

func (r *watchlistRepository) GetByID(ctx context.Context, id int64) (*models.Watchlist, error) {
	var w models.Watchlist
	err := r.db.WithContext(ctx).
		Preload("Movie").
		Preload("Series").
		First(&w, id).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *watchlistRepository) GetByUser(ctx context.Context, userID string) ([]models.Watchlist, error) {
	var list []models.Watchlist
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

func (r *watchlistRepository) Exists(ctx context.Context, userID string, movieID, seriesID *int64) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.Watchlist{}).Where("user_id = ?", userID)
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
