package database

import (
	"database/sql"
	"fmt"

	"cinelog/internal/http-api/models"

	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres pool through the pgx stdlib driver and
// hands it to gorm.
func Connect(databaseURL string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("init gorm: %w", err)
	}
	return db, nil
}

// Migrate applies the schema and the constraints AutoMigrate cannot
// express.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Genre{},
		&models.Actor{},
		&models.Director{},
		&models.Movie{},
		&models.Series{},
		&models.Episode{},
		&models.MovieActor{},
		&models.SeriesActor{},
		&models.Comment{},
		&models.Rating{},
		&models.Favorite{},
		&models.Watchlist{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// One rating per user per title. Partial indexes because exactly
	// one of movie_id/series_id is NULL on every row.
	indexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_ratings_user_movie
			ON ratings (user_id, movie_id) WHERE movie_id IS NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_ratings_user_series
			ON ratings (user_id, series_id) WHERE series_id IS NOT NULL`,
	}
	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
