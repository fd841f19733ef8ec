package models

import "time"

type Movie struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	ReleaseDate time.Time `json:"release_date" gorm:"type:date;not null"`
	DurationSec int64     `json:"duration_sec" gorm:"not null;check:duration_sec > 0"`
	PosterURL   string    `json:"poster_url"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// associations
	Genres    []Genre      `json:"genres,omitempty" gorm:"many2many:movie_genres;constraint:OnDelete:CASCADE;"`
	Directors []Director   `json:"directors,omitempty" gorm:"many2many:movie_directors;constraint:OnDelete:CASCADE;"`
	Actors    []MovieActor `json:"actors,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`

	Comments   []Comment   `json:"comments,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
	Ratings    []Rating    `json:"ratings,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
	Favorites  []Favorite  `json:"favorites,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
	Watchlists []Watchlist `json:"watchlists,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (Movie) TableName() string {
	return "movies"
}
