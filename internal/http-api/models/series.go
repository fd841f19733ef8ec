package models

import "time"

type Series struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	ReleaseDate time.Time `json:"release_date" gorm:"type:date;not null"`
	PosterURL   string    `json:"poster_url"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// associations
	Genres    []Genre       `json:"genres,omitempty" gorm:"many2many:series_genres;constraint:OnDelete:CASCADE;"`
	Directors []Director    `json:"directors,omitempty" gorm:"many2many:series_directors;constraint:OnDelete:CASCADE;"`
	Actors    []SeriesActor `json:"actors,omitempty" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE;"`
	Episodes  []Episode     `json:"episodes,omitempty" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE;"`

	Comments   []Comment   `json:"comments,omitempty" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE;"`
	Ratings    []Rating    `json:"ratings,omitempty" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE;"`
	Favorites  []Favorite  `json:"favorites,omitempty" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE;"`
	Watchlists []Watchlist `json:"watchlists,omitempty" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE;"`
}

func (Series) TableName() string {
	return "series"
}
