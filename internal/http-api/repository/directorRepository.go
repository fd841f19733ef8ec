package repository

import (
	"context"
	"fmt"

	"cinelog/internal/http-api/models"

	"gorm.io/gorm"
)

type DirectorRepository interface {
	Create(ctx context.Context, d *models.Director) error
	Update(ctx context.Context, d *models.Director) error
	Delete(ctx context.Context, d *models.Director) error
	GetByID(ctx context.Context, id int64) (*models.Director, error)
	GetPaginated(ctx context.Context, page, pageSize int) ([]models.Director, int64, error)
}

type directorRepository struct {
	db *gorm.DB
}

func NewDirectorRepository(db *gorm.DB) DirectorRepository {
	return &directorRepository{db: db}
}

func (r *directorRepository) withWorks(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Movies").
		Preload("Series")
}

func (r *directorRepository) Create(ctx context.Context, d *models.Director) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return fmt.Errorf("create director: %w", err)
	}
	return nil
}

func (r *directorRepository) Update(ctx context.Context, d *models.Director) error {
	if err := r.db.WithContext(ctx).Save(d).Error; err != nil {
		return fmt.Errorf("update director: %w", err)
	}
	return nil
}

func (r *directorRepository) Delete(ctx context.Context, d *models.Director) error {
	if err := r.db.WithContext(ctx).Delete(d).Error; err != nil {
		return fmt.Errorf("delete director: %w", err)
	}
	return nil
}

func (r *directorRepository) GetByID(ctx context.Context, id int64) (*models.Director, error) {
	var d models.Director
	if err := r.withWorks(r.db.WithContext(ctx)).First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *directorRepository) GetPaginated(ctx context.Context, page, pageSize int) ([]models.Director, int64, error) {
	var list []models.Director
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Director{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := page*pageSize - pageSize
	if err := r.withWorks(r.db.WithContext(ctx)).
		Order("full_name").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
