package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email     string    `gorm:"type:varchar(254);uniqueIndex:idx_users_email;not null" json:"email"`
	Username  string    `gorm:"type:varchar(150);uniqueIndex:idx_users_username;not null" json:"username"`
	FirstName string    `gorm:"type:varchar(150);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(150);not null" json:"last_name"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null" json:"role"`

	Timestamp
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	newID(&u.ID)
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
