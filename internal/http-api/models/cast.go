package models

// MovieActor is a join record carrying the character name as an edge
// attribute, so movie-actor links are explicit rows rather than a
// plain many2many table.
type MovieActor struct {
	MovieID       int64  `json:"movie_id" gorm:"primaryKey"`
	ActorID       int64  `json:"actor_id" gorm:"primaryKey"`
	CharacterName string `json:"character_name" gorm:"size:100;not null"`

	Movie *Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
	Actor *Actor `json:"actor,omitempty" gorm:"foreignKey:ActorID;constraint:OnDelete:CASCADE;"`
}

func (MovieActor) TableName() string {
	return "movie_actors"
}

type SeriesActor struct {
	SeriesID      int64  `json:"series_id" gorm:"primaryKey"`
	ActorID       int64  `json:"actor_id" gorm:"primaryKey"`
	CharacterName string `json:"character_name" gorm:"size:100;not null"`

	Series *Series `json:"series,omitempty" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE;"`
	Actor  *Actor  `json:"actor,omitempty" gorm:"foreignKey:ActorID;constraint:OnDelete:CASCADE;"`
}

func (SeriesActor) TableName() string {
	return "series_actors"
}
