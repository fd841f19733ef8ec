package repository

import (
	"context"
	"fmt"
	"strings"

	"cinelog/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MovieRepository interface {
	Create(ctx context.Context, m *models.Movie) error
	Update(ctx context.Context, m *models.Movie) error
	Delete(ctx context.Context, m *models.Movie) error
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	GetAll(ctx context.Context) ([]models.Movie, error)
	GetPaginated(ctx context.Context, page, pageSize int) ([]models.Movie, int64, error)
	Search(ctx context.Context, text string) ([]models.Movie, error)
	FilterByReleaseYear(ctx context.Context, year int) ([]models.Movie, error)
	GetByGenreID(ctx context.Context, genreID int64) ([]models.Movie, error)
	GetByActorID(ctx context.Context, actorID int64) ([]models.Movie, error)
	GetByDirectorID(ctx context.Context, directorID int64) ([]models.Movie, error)
	SortByCreatedDate(ctx context.Context, order string) ([]models.Movie, error)
	ReplaceGenres(ctx context.Context, movieID int64, genreIDs []int64) error
	ReplaceDirectors(ctx context.Context, movieID int64, directorIDs []int64) error
	UpsertActor(ctx context.Context, link *models.MovieActor) error
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Genres").
		Preload("Directors").
		Preload("Actors.Actor").
		Preload("Comments.User").
		Preload("Ratings")
}

func (r *movieRepository) Create(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	return nil
}

// Update persists scalar columns only; association changes go through
// ReplaceGenres/ReplaceDirectors/UpsertActor.
func (r *movieRepository) Update(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error; err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	return nil
}

func (r *movieRepository) Delete(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Select(clause.Associations).Delete(m).Error; err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	return nil
}

func (r *movieRepository) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	if err := r.withAssociations(r.db.WithContext(ctx)).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *movieRepository) GetAll(ctx context.Context) ([]models.Movie, error) {
	var list []models.Movie
	if err := r.withAssociations(r.db.WithContext(ctx)).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *movieRepository) GetPaginated(ctx context.Context, page, pageSize int) ([]models.Movie, int64, error) {
	var list []models.Movie
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Movie{}).Count(&total).Error; err != nil {
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

// Search matches the title or any attached genre name,
// case-insensitively.
func (r *movieRepository) Search(ctx context.Context, text string) ([]models.Movie, error) {
	var list []models.Movie
	p := "%" + text + "%"
	err := r.withAssociations(r.db.WithContext(ctx)).
		Where(`title ILIKE ? OR EXISTS (
			SELECT 1 FROM movie_genres mg
			JOIN genres g ON g.id = mg.genre_id
			WHERE mg.movie_id = movies.id AND g.name ILIKE ?)`, p, p).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	return list, nil
}

func (r *movieRepository) FilterByReleaseYear(ctx context.Context, year int) ([]models.Movie, error) {
	var list []models.Movie
	err := r.withAssociations(r.db.WithContext(ctx)).
		Where("EXTRACT(YEAR FROM release_date) = ?", year).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *movieRepository) GetByGenreID(ctx context.Context, genreID int64) ([]models.Movie, error) {
	var list []models.Movie
	err := r.withAssociations(r.db.WithContext(ctx)).
		Joins("JOIN movie_genres mg ON mg.movie_id = movies.id").
		Where("mg.genre_id = ?", genreID).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *movieRepository) GetByActorID(ctx context.Context, actorID int64) ([]models.Movie, error) {
	var list []models.Movie
	err := r.withAssociations(r.db.WithContext(ctx)).
		Joins("JOIN movie_actors ma ON ma.movie_id = movies.id").
		Where("ma.actor_id = ?", actorID).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *movieRepository) GetByDirectorID(ctx context.Context, directorID int64) ([]models.Movie, error) {
	var list []models.Movie
	err := r.withAssociations(r.db.WithContext(ctx)).
		Joins("JOIN movie_directors md ON md.movie_id = movies.id").
		Where("md.director_id = ?", directorID).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// SortByCreatedDate is permissive: anything other than asc/desc falls
// back to natural order.
func (r *movieRepository) SortByCreatedDate(ctx context.Context, order string) ([]models.Movie, error) {
	db := r.withAssociations(r.db.WithContext(ctx))
	switch strings.ToLower(strings.TrimSpace(order)) {
	case "asc":
		db = db.Order("created_at asc")
	case "desc":
		db = db.Order("created_at desc")
	}
	var list []models.Movie
	if err := db.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ReplaceGenres rebuilds the genre association set from the given IDs.
func (r *movieRepository) ReplaceGenres(ctx context.Context, movieID int64, genreIDs []int64) error {
	genres := make([]models.Genre, 0, len(genreIDs))
	for _, id := range genreIDs {
		genres = append(genres, models.Genre{ID: id})
	}
	m := models.Movie{ID: movieID}
	if err := r.db.WithContext(ctx).Model(&m).Association("Genres").Replace(&genres); err != nil {
		return fmt.Errorf("replace movie genres: %w", err)
	}
	return nil
}

func (r *movieRepository) ReplaceDirectors(ctx context.Context, movieID int64, directorIDs []int64) error {
	directors := make([]models.Director, 0, len(directorIDs))
	for _, id := range directorIDs {
		directors = append(directors, models.Director{ID: id})
	}
	m := models.Movie{ID: movieID}
	if err := r.db.WithContext(ctx).Model(&m).Association("Directors").Replace(&directors); err != nil {
		return fmt.Errorf("replace movie directors: %w", err)
	}
	return nil
}

// UpsertActor inserts the cast link or updates its character name when
// the (movie, actor) pair already exists.
func (r *movieRepository) UpsertActor(ctx context.Context, link *models.MovieActor) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "movie_id"}, {Name: "actor_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"character_name"}),
	}).Create(link).Error
	if err != nil {
		return fmt.Errorf("upsert movie actor: %w", err)
	}
	return nil
}
