package repository

import (
	"context"

	"medequip-rental-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// MachineRepository persists the equipment catalog. FindAll returns the
// whole catalog in stable creation order; filtering happens in memory
// above this layer.
type MachineRepository interface {
	Create(ctx context.Context, machine *entity.Machine) error
	FindAll(ctx context.Context) ([]entity.Machine, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Machine, error)
	Update(ctx context.Context, machine *entity.Machine) error
	Delete(ctx context.Context, id uuid.UUID) error
}
