package models

import "time"

type Watchlist struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"`
	MovieID   *int64    `json:"movie_id,omitempty" gorm:"index"`
	SeriesID  *int64    `json:"series_id,omitempty" gorm:"index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Movie  *Movie  `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
	Series *Series `json:"series,omitempty" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE;"`
}

func (Watchlist) TableName() string {
	return "watchlist"
}

func (w *Watchlist) OwnerID() string { return w.UserID }
