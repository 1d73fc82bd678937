package repository

import (
	"medequip-rental-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRoleRepository resolves and assigns role tags. Lookups are read-only
// and idempotent; assignment happens only inside the registration
// transaction, never on behalf of a caller-chosen role.
type UserRoleRepository interface {
	Assign(db *gorm.DB, userRole *entity.UserRole) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.UserRole, error)
}
