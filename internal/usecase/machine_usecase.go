package usecase

import (
	"context"
	"errors"

	"medequip-rental-backend/internal/converter"
	"medequip-rental-backend/internal/delivery/dto"
	"medequip-rental-backend/internal/domain/entity"
	"medequip-rental-backend/internal/domain/repository"
	"medequip-rental-backend/internal/service"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

var (
	ErrMachineNotFound  = errors.New("machine not found")
	ErrInvalidCondition = errors.New("invalid machine condition")
)

const machineCacheKey = "machines:all"

type MachineUsecase interface {
	List(ctx context.Context, filter entity.MachineFilter) (*dto.MachineListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.MachineResponse, error)
	Create(ctx context.Context, adminID uuid.UUID, req *dto.CreateMachineRequest) (*dto.MachineResponse, error)
	Update(ctx context.Context, adminID uuid.UUID, id uuid.UUID, req *dto.UpdateMachineRequest) (*dto.MachineResponse, error)
	Delete(ctx context.Context, adminID uuid.UUID, id uuid.UUID) error
}

type machineUsecase struct {
	log          *logrus.Logger
	machineRepo  repository.MachineRepository
	cache        *gocache.Cache
	auditService service.AuditService
}

func NewMachineUsecase(
	log *logrus.Logger,
	machineRepo repository.MachineRepository,
	cache *gocache.Cache,
	auditService service.AuditService,
) MachineUsecase {
	return &machineUsecase{
		log:          log,
		machineRepo:  machineRepo,
		cache:        cache,
		auditService: auditService,
	}
}

// List loads the full catalog (cached) and applies the filter in memory.
// Total counts the whole catalog, Filtered the matching subset.
func (u *machineUsecase) List(ctx context.Context, filter entity.MachineFilter) (*dto.MachineListResponse, error) {
	machines, err := u.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	filtered := entity.FilterMachines(machines, filter)

	return &dto.MachineListResponse{
		Machines: converter.MachinesToResponses(filtered),
		Total:    len(machines),
		Filtered: len(filtered),
	}, nil
}

func (u *machineUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.MachineResponse, error) {
	machine, err := u.machineRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find machine by ID: %+v", err)
		return nil, err
	}
	if machine == nil {
		return nil, ErrMachineNotFound
	}

	return converter.MachineToResponse(machine), nil
}

func (u *machineUsecase) Create(ctx context.Context, adminID uuid.UUID, req *dto.CreateMachineRequest) (*dto.MachineResponse, error) {
	condition := entity.ConditionGood
	if req.Condition != "" {
		condition = entity.MachineCondition(req.Condition)
		if !condition.IsValid() {
			return nil, ErrInvalidCondition
		}
	}

	// New listings default to available unless the request says otherwise
	availability := true
	if req.Availability != nil {
		availability = *req.Availability
	}

	machine := &entity.Machine{
		Name:               req.Name,
		Type:               req.Type,
		Category:           req.Category,
		Condition:          condition,
		Description:        req.Description,
		Price:              req.Price,
		ImageURL:           req.ImageURL,
		Availability:       availability,
		RepairHistory:      entity.StringList(req.RepairHistory),
		SparePartsReplaced: entity.StringList(req.SparePartsReplaced),
		WarrantyInfo:       req.WarrantyInfo,
		RentalPricing: entity.RentalPricing{
			PerDay:   req.RentalPricing.PerDay,
			PerWeek:  req.RentalPricing.PerWeek,
			PerMonth: req.RentalPricing.PerMonth,
		},
	}
	if machine.RepairHistory == nil {
		machine.RepairHistory = entity.StringList{}
	}
	if machine.SparePartsReplaced == nil {
		machine.SparePartsReplaced = entity.StringList{}
	}

	if err := u.machineRepo.Create(ctx, machine); err != nil {
		u.log.Warnf("Failed to create machine: %+v", err)
		return nil, err
	}

	u.invalidateCatalog()
	u.auditService.LogCreate(ctx, &adminID, entity.AuditActionMachineCreate, "machine", machine.ID.String(), machine)

	return converter.MachineToResponse(machine), nil
}

// Update replaces every editable field of the machine. The ID is never
// taken from the request body, so a listing cannot be re-keyed.
func (u *machineUsecase) Update(ctx context.Context, adminID uuid.UUID, id uuid.UUID, req *dto.UpdateMachineRequest) (*dto.MachineResponse, error) {
	machine, err := u.machineRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find machine by ID: %+v", err)
		return nil, err
	}
	if machine == nil {
		return nil, ErrMachineNotFound
	}

	condition := machine.Condition
	if req.Condition != "" {
		condition = entity.MachineCondition(req.Condition)
		if !condition.IsValid() {
			return nil, ErrInvalidCondition
		}
	}

	oldValue := *machine

	machine.Name = req.Name
	machine.Type = req.Type
	machine.Category = req.Category
	machine.Condition = condition
	machine.Description = req.Description
	machine.Price = req.Price
	machine.ImageURL = req.ImageURL
	if req.Availability != nil {
		machine.Availability = *req.Availability
	}
	if req.RepairHistory != nil {
		machine.RepairHistory = entity.StringList(req.RepairHistory)
	}
	if req.SparePartsReplaced != nil {
		machine.SparePartsReplaced = entity.StringList(req.SparePartsReplaced)
	}
	machine.WarrantyInfo = req.WarrantyInfo
	machine.RentalPricing = entity.RentalPricing{
		PerDay:   req.RentalPricing.PerDay,
		PerWeek:  req.RentalPricing.PerWeek,
		PerMonth: req.RentalPricing.PerMonth,
	}

	if err := u.machineRepo.Update(ctx, machine); err != nil {
		u.log.Warnf("Failed to update machine: %+v", err)
		return nil, err
	}

	u.invalidateCatalog()
	u.auditService.LogUpdate(ctx, &adminID, entity.AuditActionMachineUpdate, "machine", machine.ID.String(), oldValue, machine)

	return converter.MachineToResponse(machine), nil
}

func (u *machineUsecase) Delete(ctx context.Context, adminID uuid.UUID, id uuid.UUID) error {
	machine, err := u.machineRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find machine by ID: %+v", err)
		return err
	}
	if machine == nil {
		return ErrMachineNotFound
	}

	if err := u.machineRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete machine: %+v", err)
		return err
	}

	u.invalidateCatalog()
	u.auditService.LogDelete(ctx, &adminID, entity.AuditActionMachineDelete, "machine", id.String(), machine)

	return nil
}

func (u *machineUsecase) loadCatalog(ctx context.Context) ([]entity.Machine, error) {
	if cached, found := u.cache.Get(machineCacheKey); found {
		if machines, ok := cached.([]entity.Machine); ok {
			return machines, nil
		}
	}

	machines, err := u.machineRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load machine catalog: %+v", err)
		return nil, err
	}

	u.cache.Set(machineCacheKey, machines, gocache.DefaultExpiration)
	return machines, nil
}

func (u *machineUsecase) invalidateCatalog() {
	u.cache.Delete(machineCacheKey)
}
