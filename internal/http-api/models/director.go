package models

import "time"

type Director struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FullName  string    `json:"full_name" gorm:"size:30;not null"`
	BirthDate time.Time `json:"birth_date" gorm:"type:date;not null"`
	Bio       *string   `json:"bio,omitempty" gorm:"size:1000"`
	PhotoURL  *string   `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Movies []Movie  `json:"movies,omitempty" gorm:"many2many:movie_directors;"`
	Series []Series `json:"series,omitempty" gorm:"many2many:series_directors;"`
}

func (Director) TableName() string {
	return "directors"
}
