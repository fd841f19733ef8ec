package repository

import (
	"context"
	"fmt"

	"cinelog/internal/http-api/models"

	"gorm.io/gorm"
)

type EpisodeRepository interface {
	Create(ctx context.Context, e *models.Episode) error
	Update(ctx context.Context, e *models.Episode) error
	Delete(ctx context.Context, e *models.Episode) error
	GetByID(ctx context.Context, id int64) (*models.Episode, error)
	GetPaginated(ctx context.Context, page, pageSize int) ([]models.Episode, int64, error)
	GetBySeriesID(ctx context.Context, seriesID int64) ([]models.Episode, error)
	NumberExists(ctx context.Context, seriesID int64, season, episode int) (bool, error)
}

type episodeRepository struct {
	db *gorm.DB
}

func NewEpisodeRepository(db *gorm.DB) EpisodeRepository {
	return &episodeRepository{db: db}
}

func (r *episodeRepository) Create(ctx context.Context, e *models.Episode) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("create episode: %w", err)
	}
	return nil
}

func (r *episodeRepository) Update(ctx context.Context, e *models.Episode) error {
	if err := r.db.WithContext(ctx).Save(e).Error; err != nil {
		return fmt.Errorf("update episode: %w", err)
	}
	return nil
}

func (r *episodeRepository) Delete(ctx context.Context, e *models.Episode) error {
	if err := r.db.WithContext(ctx).Delete(e).Error; err != nil {
		return fmt.Errorf("delete episode: %w", err)
	}
	return nil
}

func (r *episodeRepository) GetByID(ctx context.Context, id int64) (*models.Episode, error) {
	var e models.Episode
	if err := r.db.WithContext(ctx).Preload("Series").First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *episodeRepository) GetPaginated(ctx context.Context, page, pageSize int) ([]models.Episode, int64, error) {
	var list []models.Episode
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Episode{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := page*pageSize - pageSize
	if err := r.db.WithContext(ctx).
		Preload("Series").
		Order("series_id, season_number, episode_number").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *episodeRepository) GetBySeriesID(ctx context.Context, seriesID int64) ([]models.Episode, error) {
	var list []models.Episode
	err := r.db.WithContext(ctx).
		Preload("Series").
		Where("series_id = ?", seriesID).
		Order("season_number, episode_number").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// NumberExists reports whether the (series, season, episode) triple is
// already taken.
func (r *episodeRepository) NumberExists(ctx context.Context, seriesID int64, season, episode int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Episode{}).
		Where("series_id = ? AND season_number = ? AND episode_number = ?", seriesID, season, episode).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
