package repository

import (
	"context"
	"errors"

	"medequip-rental-backend/internal/domain/entity"
	domainRepo "medequip-rental-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type rentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) domainRepo.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rental *entity.Rental) error {
	return r.db.WithContext(ctx).Create(rental).Error
}

func (r *rentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error) {
	var rental entity.Rental
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rental).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rental, nil
}

func (r *rentalRepository) FindByRequestID(ctx context.Context, requestID uuid.UUID) (*entity.Rental, error) {
	var rental entity.Rental
	err := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&rental).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rental, nil
}

func (r *rentalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Rental, error) {
	var rentals []entity.Rental
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rentals).Error
	if err != nil {
		return nil, err
	}
	return rentals, nil
}

func (r *rentalRepository) FindAll(ctx context.Context) ([]entity.Rental, error) {
	var rentals []entity.Rental
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rentals).Error
	if err != nil {
		return nil, err
	}
	return rentals, nil
}

func (r *rentalRepository) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entity.RentalStatus) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Rental{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}
