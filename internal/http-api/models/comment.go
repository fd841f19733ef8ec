package models

import "time"

// Comment targets exactly one of MovieID/SeriesID; the service rejects
// both-set and neither-set before a row ever reaches the database.
type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"`
	MovieID   *int64    `json:"movie_id,omitempty" gorm:"index"`
	SeriesID  *int64    `json:"series_id,omitempty" gorm:"index"`
	Content   string    `json:"content" gorm:"size:2000;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Movie  *Movie  `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
	Series *Series `json:"series,omitempty" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE;"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) OwnerID() string { return c.UserID }
