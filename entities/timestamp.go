package entities

import (
	"time"

	"github.com/google/uuid"
)

type Timestamp struct {
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// newID fills an empty primary key; ids are generated in Go so the schema
// works on both postgres and sqlite.
func newID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
