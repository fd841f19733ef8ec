package models

// Genre names are unique case-insensitively; the service checks with a
// LOWER(name) lookup before insert.
type Genre struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:100;unique;not null"`
}

func (Genre) TableName() string {
	return "genres"
}
