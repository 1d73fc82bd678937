package usecase

import (
	"context"
	"errors"

	"medequip-rental-backend/internal/converter"
	"medequip-rental-backend/internal/delivery/dto"
	"medequip-rental-backend/internal/domain/entity"
	"medequip-rental-backend/internal/domain/repository"
	"medequip-rental-backend/internal/metrics"
	"medequip-rental-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPurchaseNotFound   = errors.New("purchase not found")
	ErrPurchaseNotPending = errors.New("purchase is not awaiting payment")
	ErrNotPurchaseOwner   = errors.New("not the owner of this purchase")
)

type PurchaseUsecase interface {
	CreatePurchase(ctx context.Context, userID uuid.UUID, req *dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error)
	Pay(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.PurchaseResponse, error)
	ListPurchases(ctx context.Context, userID uuid.UUID, role entity.Role) (*dto.PurchaseListResponse, error)
}

type purchaseUsecase struct {
	log          *logrus.Logger
	purchaseRepo repository.PurchaseRepository
	machineRepo  repository.MachineRepository
	auditService service.AuditService
}

func NewPurchaseUsecase(
	log *logrus.Logger,
	purchaseRepo repository.PurchaseRepository,
	machineRepo repository.MachineRepository,
	auditService service.AuditService,
) PurchaseUsecase {
	return &purchaseUsecase{
		log:          log,
		purchaseRepo: purchaseRepo,
		machineRepo:  machineRepo,
		auditService: auditService,
	}
}

// CreatePurchase opens a pending-payment order at the machine's current
// sale price. Name and price are snapshotted so later catalog edits do
// not change an existing order.
func (u *purchaseUsecase) CreatePurchase(ctx context.Context, userID uuid.UUID, req *dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	machine, err := u.machineRepo.FindByID(ctx, req.MachineID)
	if err != nil {
		u.log.Warnf("Failed to find machine by ID: %+v", err)
		return nil, err
	}
	if machine == nil {
		return nil, ErrMachineNotFound
	}
	if !machine.Availability {
		return nil, ErrMachineUnavailable
	}

	purchase := &entity.Purchase{
		UserID:      userID,
		MachineID:   machine.ID,
		MachineName: machine.Name,
		Price:       machine.Price,
		Status:      entity.PurchaseStatusPendingPayment,
	}

	if err := u.purchaseRepo.Create(ctx, purchase); err != nil {
		u.log.Warnf("Failed to create purchase: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, &userID, entity.AuditActionPurchaseCreate, "purchase", purchase.ID.String(), purchase)

	return converter.PurchaseToResponse(purchase), nil
}

// Pay settles a pending purchase. Only the purchase owner may pay, and
// the guarded update keeps paid terminal even under concurrent calls.
func (u *purchaseUsecase) Pay(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.PurchaseResponse, error) {
	purchase, err := u.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find purchase by ID: %+v", err)
		return nil, err
	}
	if purchase == nil {
		return nil, ErrPurchaseNotFound
	}
	if purchase.UserID != userID {
		return nil, ErrNotPurchaseOwner
	}

	affected, err := u.purchaseRepo.UpdateStatusFrom(ctx, id, entity.PurchaseStatusPendingPayment, entity.PurchaseStatusPaid)
	if err != nil {
		u.log.Warnf("Failed to update purchase status: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrPurchaseNotPending
	}

	purchase.Status = entity.PurchaseStatusPaid

	metrics.IncPurchasePaid()
	u.auditService.LogUpdate(ctx, &userID, entity.AuditActionPurchasePaid, "purchase", id.String(), entity.PurchaseStatusPendingPayment, entity.PurchaseStatusPaid)

	return converter.PurchaseToResponse(purchase), nil
}

// ListPurchases returns the caller's own purchases, or all for admins.
func (u *purchaseUsecase) ListPurchases(ctx context.Context, userID uuid.UUID, role entity.Role) (*dto.PurchaseListResponse, error) {
	var purchases []entity.Purchase
	var err error

	if role == entity.RoleAdmin {
		purchases, err = u.purchaseRepo.FindAll(ctx)
	} else {
		purchases, err = u.purchaseRepo.FindByUserID(ctx, userID)
	}
	if err != nil {
		u.log.Warnf("Failed to list purchases: %+v", err)
		return nil, err
	}

	return &dto.PurchaseListResponse{
		Purchases: converter.PurchasesToResponses(purchases),
		Total:     len(purchases),
	}, nil
}
