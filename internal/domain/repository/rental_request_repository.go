package repository

import (
	"context"

	"medequip-rental-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type RentalRequestRepository interface {
	Create(ctx context.Context, request *entity.RentalRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RentalRequest, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.RentalRequest, error)
	FindAll(ctx context.Context) ([]entity.RentalRequest, error)
	// UpdateStatusFrom transitions admin_status only when the row currently
	// holds from. Returns affected rows: 0 means the request was not in the
	// expected state (lost race or illegal transition).
	UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entity.RequestStatus) (int64, error)
}
