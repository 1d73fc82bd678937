package repository

import (
	"context"

	"medequip-rental-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type RentalRepository interface {
	Create(ctx context.Context, rental *entity.Rental) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error)
	FindByRequestID(ctx context.Context, requestID uuid.UUID) (*entity.Rental, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Rental, error)
	FindAll(ctx context.Context) ([]entity.Rental, error)
	// UpdateStatusFrom transitions status only when the row currently holds
	// from. Returns affected rows; 0 means no legal transition applied.
	UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entity.RentalStatus) (int64, error)
}
