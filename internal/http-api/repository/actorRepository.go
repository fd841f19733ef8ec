package repository

import (
	"context"
	"fmt"

	"cinelog/internal/http-api/models"

	"gorm.io/gorm"
)

type ActorRepository interface {
	Create(ctx context.Context, a *models.Actor) error
	Update(ctx context.Context, a *models.Actor) error
	Delete(ctx context.Context, a *models.Actor) error
	GetByID(ctx context.Context, id int64) (*models.Actor, error)
	GetPaginated(ctx context.Context, page, pageSize int) ([]models.Actor, int64, error)
}

type actorRepository struct {
	db *gorm.DB
}

func NewActorRepository(db *gorm.DB) ActorRepository {
	return &actorRepository{db: db}
}

func (r *actorRepository) withCredits(db *gorm.DB) *gorm.DB {
	return db.
		Preload("MovieCredits.Movie").
		Preload("SeriesCredits.Series")
}

func (r *actorRepository) Create(ctx context.Context, a *models.Actor) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create actor: %w", err)
	}
	return nil
}

func (r *actorRepository) Update(ctx context.Context, a *models.Actor) error {
	if err := r.db.WithContext(ctx).Save(a).Error; err != nil {
		return fmt.Errorf("update actor: %w", err)
	}
	return nil
}

func (r *actorRepository) Delete(ctx context.Context, a *models.Actor) error {
	if err := r.db.WithContext(ctx).Delete(a).Error; err != nil {
		return fmt.Errorf("delete actor: %w", err)
	}
	return nil
}

func (r *actorRepository) GetByID(ctx context.Context, id int64) (*models.Actor, error) {
	var a models.Actor
	if err := r.withCredits(r.db.WithContext(ctx)).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *actorRepository) GetPaginated(ctx context.Context, page, pageSize int) ([]models.Actor, int64, error) {
	var list []models.Actor
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Actor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := page*pageSize - pageSize
	if err := r.withCredits(r.db.WithContext(ctx)).
		Order("full_name").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
