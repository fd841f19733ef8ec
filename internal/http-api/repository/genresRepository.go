package repository

import (
	"context"
	"fmt"

	"cinelog/internal/http-api/models"

	"gorm.io/gorm"
)

type GenresRepository interface {
	Create(ctx context.Context, g *models.Genre) error
	Update(ctx context.Context, g *models.Genre) error
	Delete(ctx context.Context, g *models.Genre) error
	GetByID(ctx context.Context, id int64) (*models.Genre, error)
	GetAll(ctx context.Context) ([]models.Genre, error)
	FindByNameFold(ctx context.Context, name string) (*models.Genre, error)
}

type genresRepository struct {
	db *gorm.DB
}

func NewGenresRepository(db *gorm.DB) GenresRepository {
	return &genresRepository{db: db}
}

func (r *genresRepository) Create(ctx context.Context, g *models.Genre) error {
	if err := r.db.WithContext(ctx).Create(g).Error; err != nil {
		return fmt.Errorf("create genre: %w", err)
	}
	return nil
}

func (r *genresRepository) Update(ctx context.Context, g *models.Genre) error {
	if err := r.db.WithContext(ctx).Save(g).Error; err != nil {
		return fmt.Errorf("update genre: %w", err)
	}
	return nil
}

func (r *genresRepository) Delete(ctx context.Context, g *models.Genre) error {
	if err := r.db.WithContext(ctx).Delete(g).Error; err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}
	return nil
}

func (r *genresRepository) GetByID(ctx context.Context, id int64) (*models.Genre, error) {
	var g models.Genre
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *genresRepository) GetAll(ctx context.Context) ([]models.Genre, error) {
	var list []models.Genre
	if err := r.db.WithContext(ctx).Order("name").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// FindByNameFold looks a genre up by name ignoring case.
func (r *genresRepository) FindByNameFold(ctx context.Context, name string) (*models.Genre, error) {
	var g models.Genre
	if err := r.db.WithContext(ctx).First(&g, "LOWER(name) = LOWER(?)", name).Error; err != nil {
		return nil, err
	}
	return &g, nil
}
