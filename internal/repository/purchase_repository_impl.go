package repository

import (
	"context"
	"errors"

	"medequip-rental-backend/internal/domain/entity"
	domainRepo "medequip-rental-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type purchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) domainRepo.PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

func (r *purchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	var purchase entity.Purchase
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&purchase).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Purchase, error) {
	var purchases []entity.Purchase
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&purchases).Error
	if err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *purchaseRepository) FindAll(ctx context.Context) ([]entity.Purchase, error) {
	var purchases []entity.Purchase
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&purchases).Error
	if err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *purchaseRepository) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entity.PurchaseStatus) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Purchase{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}
