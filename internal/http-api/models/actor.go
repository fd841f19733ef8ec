package models

import "time"

type Actor struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FullName  string    `json:"full_name" gorm:"size:30;not null"`
	BirthDate time.Time `json:"birth_date" gorm:"type:date;not null"`
	Bio       *string   `json:"bio,omitempty" gorm:"size:1000"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	MovieCredits  []MovieActor  `json:"movie_credits,omitempty" gorm:"foreignKey:ActorID;constraint:OnDelete:CASCADE;"`
	SeriesCredits []SeriesActor `json:"series_credits,omitempty" gorm:"foreignKey:ActorID;constraint:OnDelete:CASCADE;"`
}

func (Actor) TableName() string {
	return "actors"
}
