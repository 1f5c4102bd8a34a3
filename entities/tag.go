package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tag struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name  string    `gorm:"type:varchar(10);uniqueIndex:idx_tags_name;not null" json:"name"`
	Color string    `gorm:"type:varchar(10);uniqueIndex:idx_tags_color;not null" json:"color"`
	Slug  string    `gorm:"type:varchar(200);uniqueIndex:idx_tags_slug;not null" json:"slug"`

	Timestamp
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	newID(&t.ID)
	return nil
}
