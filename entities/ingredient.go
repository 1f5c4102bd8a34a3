package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is reference data; the same name may exist under several units.
type Ingredient struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name            string    `gorm:"type:varchar(200);not null;uniqueIndex:idx_ingredients_name_unit" json:"name"`
	MeasurementUnit string    `gorm:"type:varchar(200);not null;uniqueIndex:idx_ingredients_name_unit" json:"measurement_unit"`

	Timestamp
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	newID(&i.ID)
	return nil
}
