package models

import "time"

// Episode belongs to exactly one series. The (series, season, episode)
// triple is unique.
type Episode struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	SeriesID      int64     `json:"series_id" gorm:"not null;uniqueIndex:idx_episode_number"`
	SeasonNumber  int       `json:"season_number" gorm:"not null;uniqueIndex:idx_episode_number;check:season_number > 0"`
	EpisodeNumber int       `json:"episode_number" gorm:"not null;uniqueIndex:idx_episode_number;check:episode_number > 0"`
	Title         string    `json:"title" gorm:"size:100;not null"`
	ReleaseDate   time.Time `json:"release_date" gorm:"type:date;not null"`
	DurationSec   int64     `json:"duration_sec" gorm:"not null;check:duration_sec > 0"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Series *Series `json:"series,omitempty" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE;"`
}

func (Episode) TableName() string {
	return "episodes"
}
