package repository

import (
	"context"
	"fmt"
	"strings"

	"cinelog/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SeriesRepository interface {
	Create(ctx context.Context, s *models.Series) error
	Update(ctx context.Context, s *models.Series) error
	Delete(ctx context.Context, s *models.Series) error
	GetByID(ctx context.Context, id int64) (*models.Series, error)
	GetAll(ctx context.Context) ([]models.Series, error)
	GetPaginated(ctx context.Context, page, pageSize int) ([]models.Series, int64, error)
	Search(ctx context.Context, text string) ([]models.Series, error)
	FilterByReleaseYear(ctx context.Context, year int) ([]models.Series, error)
	GetByGenreID(ctx context.Context, genreID int64) ([]models.Series, error)
	GetByActorID(ctx context.Context, actorID int64) ([]models.Series, error)
	GetByDirectorID(ctx context.Context, directorID int64) ([]models.Series, error)
	SortByCreatedDate(ctx context.Context, order string) ([]models.Series, error)
	ReplaceGenres(ctx context.Context, seriesID int64, genreIDs []int64) error
	ReplaceDirectors(ctx context.Context, seriesID int64, directorIDs []int64) error
	UpsertActor(ctx context.Context, link *models.SeriesActor) error
}

type seriesRepository struct {
	db *gorm.DB
}

func NewSeriesRepository(db *gorm.DB) SeriesRepository {
	return &seriesRepository{db: db}
}

func (r *seriesRepository) withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Genres").
		Preload("Directors").
		Preload("Actors.Actor").
		Preload("Episodes").
		Preload("Comments.User").
		Preload("Ratings")
}

func (r *seriesRepository) Create(ctx context.Context, s *models.Series) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("create series: %w", err)
	}
	return nil
}

// Update persists scalar columns only; association changes go through
// ReplaceGenres/ReplaceDirectors/UpsertActor.
func (r *seriesRepository) Update(ctx context.Context, s *models.Series) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(s).Error; err != nil {
		return fmt.Errorf("update series: %w", err)
	}
	return nil
}

func (r *seriesRepository) Delete(ctx context.Context, s *models.Series) error {
	if err := r.db.WithContext(ctx).Select(clause.Associations).Delete(s).Error; err != nil {
		return fmt.Errorf("delete series: %w", err)
	}
	return nil
}

func (r *seriesRepository) GetByID(ctx context.Context, id int64) (*models.Series, error) {
	var s models.Series
	if err := r.withAssociations(r.db.WithContext(ctx)).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *seriesRepository) GetAll(ctx context.Context) ([]models.Series, error) {
	var list []models.Series
	if err := r.withAssociations(r.db.WithContext(ctx)).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *seriesRepository) GetPaginated(ctx context.Context, page, pageSize int) ([]models.Series, int64, error) {
	var list []models.Series
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Series{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := page*pageSize - pageSize
	if err := r.withAssociations(r.db.WithContext(ctx)).
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *seriesRepository) Search(ctx context.Context, text string) ([]models.Series, error) {
	var list []models.Series
	p := "%" + text + "%"
	err := r.withAssociations(r.db.WithContext(ctx)).
		Where(`title ILIKE ? OR EXISTS (
			SELECT 1 FROM series_genres sg
			JOIN genres g ON g.id = sg.genre_id
			WHERE sg.series_id = series.id AND g.name ILIKE ?)`, p, p).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("search series: %w", err)
	}
	return list, nil
}

func (r *seriesRepository) FilterByReleaseYear(ctx context.Context, year int) ([]models.Series, error) {
	var list []models.Series
	err := r.withAssociations(r.db.WithContext(ctx)).
		Where("EXTRACT(YEAR FROM release_date) = ?", year).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *seriesRepository) GetByGenreID(ctx context.Context, genreID int64) ([]models.Series, error) {
	var list []models.Series
	err := r.withAssociations(r.db.WithContext(ctx)).
		Joins("JOIN series_genres sg ON sg.series_id = series.id").
		Where("sg.genre_id = ?", genreID).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *seriesRepository) GetByActorID(ctx context.Context, actorID int64) ([]models.Series, error) {
	var list []models.Series
	err := r.withAssociations(r.db.WithContext(ctx)).
		Joins("JOIN series_actors sa ON sa.series_id = series.id").
		Where("sa.actor_id = ?", actorID).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *seriesRepository) GetByDirectorID(ctx context.Context, directorID int64) ([]models.Series, error) {
	var list []models.Series
	err := r.withAssociations(r.db.WithContext(ctx)).
		Joins("JOIN series_directors sd ON sd.series_id = series.id").
		Where("sd.director_id = ?", directorID).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *seriesRepository) SortByCreatedDate(ctx context.Context, order string) ([]models.Series, error) {
	db := r.withAssociations(r.db.WithContext(ctx))
	switch strings.ToLower(strings.TrimSpace(order)) {
	case "asc":
		db = db.Order("created_at asc")
	case "desc":
		db = db.Order("created_at desc")
	}
	var list []models.Series
	if err := db.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *seriesRepository) ReplaceGenres(ctx context.Context, seriesID int64, genreIDs []int64) error {
	genres := make([]models.Genre, 0, len(genreIDs))
	for _, id := range genreIDs {
		genres = append(genres, models.Genre{ID: id})
	}
	s := models.Series{ID: seriesID}
	if err := r.db.WithContext(ctx).Model(&s).Association("Genres").Replace(&genres); err != nil {
		return fmt.Errorf("replace series genres: %w", err)
	}
	return nil
}

func (r *seriesRepository) ReplaceDirectors(ctx context.Context, seriesID int64, directorIDs []int64) error {
	directors := make([]models.Director, 0, len(directorIDs))
	for _, id := range directorIDs {
		directors = append(directors, models.Director{ID: id})
	}
	s := models.Series{ID: seriesID}
	if err := r.db.WithContext(ctx).Model(&s).Association("Directors").Replace(&directors); err != nil {
		return fmt.Errorf("replace series directors: %w", err)
	}
	return nil
}

func (r *seriesRepository) UpsertActor(ctx context.Context, link *models.SeriesActor) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "series_id"}, {Name: "actor_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"character_name"}),
	}).Create(link).Error
	if err != nil {
		return fmt.Errorf("upsert series actor: %w", err)
	}
	return nil
}
