package repository

import (
	"errors"

	"medequip-rental-backend/internal/domain/entity"
	domainRepo "medequip-rental-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRoleRepository struct{}

func NewUserRoleRepository() domainRepo.UserRoleRepository {
	return &userRoleRepository{}
}

func (r *userRoleRepository) Assign(db *gorm.DB, userRole *entity.UserRole) error {
	return db.Create(userRole).Error
}

func (r *userRoleRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.UserRole, error) {
	var userRole entity.UserRole
	err := db.Where("user_id = ?", userID).First(&userRole).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &userRole, nil
}
