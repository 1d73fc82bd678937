package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is the single authorization tag attached to a user.
type Role string

const (
	RoleClinic Role = "clinic"
	RoleAdmin  Role = "admin"
)

// UserRole is the role-assignment table: at most one row per user.
// Rows are written by the server only; clinic accounts get their row at
// registration, admin rows are seeded out of band.
type UserRole struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Role      Role      `gorm:"type:varchar(20);not null;index" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

// IsValid reports whether r is one of the known role tags.
func (r Role) IsValid() bool {
	return r == RoleClinic || r == RoleAdmin
}
