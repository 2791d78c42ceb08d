package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is the authorization level attached to a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Profile maps a user to a role, 1:1 with User. Created with role "user"
// at signup; promotion to admin happens out of band (seed script or SQL).
type Profile struct {
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);primaryKey"`
	Role      Role      `json:"role" gorm:"type:varchar(20);not null;default:'user'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
