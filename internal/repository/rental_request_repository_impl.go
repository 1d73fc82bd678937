package repository

import (
	"context"
	"errors"

	"medequip-rental-backend/internal/domain/entity"
	domainRepo "medequip-rental-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type rentalRequestRepository struct {
	db *gorm.DB
}

func NewRentalRequestRepository(db *gorm.DB) domainRepo.RentalRequestRepository {
	return &rentalRequestRepository{db: db}
}

func (r *rentalRequestRepository) Create(ctx context.Context, request *entity.RentalRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *rentalRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RentalRequest, error) {
	var request entity.RentalRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *rentalRequestRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.RentalRequest, error) {
	var requests []entity.RentalRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *rentalRequestRepository) FindAll(ctx context.Context) ([]entity.RentalRequest, error) {
	var requests []entity.RentalRequest
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateStatusFrom applies the transition atomically: the row changes only
// if it still holds the expected status, so a lost race reports 0 rows
// instead of double-applying.
func (r *rentalRequestRepository) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entity.RequestStatus) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.RentalRequest{}).
		Where("id = ? AND admin_status = ?", id, from).
		Update("admin_status", to)
	return result.RowsAffected, result.Error
}
