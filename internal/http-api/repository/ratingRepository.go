package repository

import (
	"context"
	"fmt"

	"cinelog/internal/http-api/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(ctx context.Context, rt *models.Rating) error
	Update(ctx context.Context, rt *models.Rating) error
	Delete(ctx context.Context, rt *models.Rating) error
	GetByID(ctx context.Context, id int64) (*models.Rating, error)
	GetByUser(ctx context.Context, userID string) ([]models.Rating, error)
	Exists(ctx context.Context, userID string, movieID, seriesID *int64) (bool, error)
	AverageForMovie(ctx context.Context, movieID int64) (float64, int64, error)
	AverageForSeries(ctx context.Context, seriesID int64) (float64, int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) withRefs(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Movie").
		Preload("Series")
}

func (r *ratingRepository) Create(ctx context.Context, rt *models.Rating) error {
	if err := r.db.WithContext(ctx).Create(rt).Error; err != nil {
		return fmt.Errorf("create rating: %w", err)
	}
	return nil
}

func (r *ratingRepository) Update(ctx context.Context, rt *models.Rating) error {
	if err := r.db.WithContext(ctx).Save(rt).Error; err != nil {
		return fmt.Errorf("update rating: %w", err)
	}
	return nil
}

func (r *ratingRepository) Delete(ctx context.Context, rt *models.Rating) error {
	if err := r.db.WithContext(ctx).Delete(rt).Error; err != nil {
		return fmt.Errorf("delete rating: %w", err)
	}
	return nil
}

func (r *ratingRepository) GetByID(ctx context.Context, id int64) (*models.Rating, error) {
	var rt models.Rating
	if err := r.withRefs(r.db.WithContext(ctx)).First(&rt, id).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *ratingRepository) GetByUser(ctx context.Context, userID string) ([]models.Rating, error) {
	var list []models.Rating
	err := r.withRefs(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Exists reports whether the user already rated the given target.
// Exactly one of movieID/seriesID is expected to be set.
func (r *ratingRepository) Exists(ctx context.Context, userID string, movieID, seriesID *int64) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.Rating{}).Where("user_id = ?", userID)
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

func (r *ratingRepository) AverageForMovie(ctx context.Context, movieID int64) (float64, int64, error) {
	return r.average(ctx, "movie_id", movieID)
}

func (r *ratingRepository) AverageForSeries(ctx context.Context, seriesID int64) (float64, int64, error) {
	return r.average(ctx, "series_id", seriesID)
}

func (r *ratingRepository) average(ctx context.Context, column string, id int64) (float64, int64, error) {
	var row struct {
		Avg   *float64
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("AVG(score) AS avg, COUNT(*) AS count").
		Where(column+" = ?", id).
		Scan(&row).Error
	if err != nil {
		return 0, 0, fmt.Errorf("average rating: %w", err)
	}
	if row.Avg == nil {
		return 0, 0, nil
	}
	return *row.Avg, row.Count, nil
}
