package repository

import (
	"context"

	"medequip-rental-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Purchase, error)
	FindAll(ctx context.Context) ([]entity.Purchase, error)
	UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entity.PurchaseStatus) (int64, error)
}
