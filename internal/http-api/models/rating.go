package models

import "time"

// Rating targets exactly one of MovieID/SeriesID. A user rates a given
// movie or series at most once; partial unique indexes back the
// service-level conflict check (see database.Connect).
type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"`
	MovieID   *int64    `json:"movie_id,omitempty" gorm:"index"`
	SeriesID  *int64    `json:"series_id,omitempty" gorm:"index"`
	Score     int       `json:"score" gorm:"not null;check:score >= 1 AND score <= 10"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Movie  *Movie  `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
	Series *Series `json:"series,omitempty" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}

func (r *Rating) OwnerID() string { return r.UserID }
