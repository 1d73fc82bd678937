package repository

import (
	"context"
	"errors"

	"medequip-rental-backend/internal/domain/entity"
	domainRepo "medequip-rental-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type machineRepository struct {
	db *gorm.DB
}

func NewMachineRepository(db *gorm.DB) domainRepo.MachineRepository {
	return &machineRepository{db: db}
}

func (r *machineRepository) Create(ctx context.Context, machine *entity.Machine) error {
	return r.db.WithContext(ctx).Create(machine).Error
}

func (r *machineRepository) FindAll(ctx context.Context) ([]entity.Machine, error) {
	var machines []entity.Machine
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&machines).Error
	if err != nil {
		return nil, err
	}
	return machines, nil
}

func (r *machineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Machine, error) {
	var machine entity.Machine
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&machine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &machine, nil
}

func (r *machineRepository) Update(ctx context.Context, machine *entity.Machine) error {
	return r.db.WithContext(ctx).Save(machine).Error
}

func (r *machineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Machine{}).Error
}
