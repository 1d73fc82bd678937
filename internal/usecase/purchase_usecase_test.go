package usecase

import (
	"context"
	"testing"

	"medequip-rental-backend/internal/delivery/dto"
	"medequip-rental-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPurchaseFixture() (*fakeMachineRepo, *fakePurchaseRepo, *fakeAuditRepo, PurchaseUsecase, entity.Machine) {
	machine := entity.Machine{
		ID:           uuid.New(),
		Name:         "Autoclave AC-40",
		Type:         "Sterilizer",
		Category:     "Sterilization",
		Condition:    entity.ConditionExcellent,
		Description:  "Refurbished tabletop autoclave",
		Price:        decimal.NewFromInt(4200),
		Availability: true,
	}

	machineRepo := &fakeMachineRepo{machines: []entity.Machine{machine}}
	purchaseRepo := newFakePurchaseRepo()
	auditRepo := &fakeAuditRepo{}

	uc := NewPurchaseUsecase(testLogger(), purchaseRepo, machineRepo, testAuditService(auditRepo))
	return machineRepo, purchaseRepo, auditRepo, uc, machine
}

func TestCreatePurchase_SnapshotsPrice(t *testing.T) {
	machineRepo, _, auditRepo, uc, machine := newPurchaseFixture()
	userID := uuid.New()

	purchase, err := uc.CreatePurchase(context.Background(), userID, &dto.CreatePurchaseRequest{MachineID: machine.ID})
	require.NoError(t, err)

	assert.Equal(t, string(entity.PurchaseStatusPendingPayment), purchase.Status)
	assert.Equal(t, machine.Name, purchase.MachineName)
	assert.True(t, machine.Price.Equal(purchase.Price))

	// Catalog repricing does not touch an open order.
	machineRepo.machines[0].Price = decimal.NewFromInt(9000)
	paid, err := uc.Pay(context.Background(), userID, purchase.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(4200).Equal(paid.Price))

	assert.Equal(t, []string{entity.AuditActionPurchaseCreate, entity.AuditActionPurchasePaid}, auditRepo.actions())
}

func TestCreatePurchase_UnknownMachine(t *testing.T) {
	_, _, _, uc, _ := newPurchaseFixture()

	_, err := uc.CreatePurchase(context.Background(), uuid.New(), &dto.CreatePurchaseRequest{MachineID: uuid.New()})
	assert.ErrorIs(t, err, ErrMachineNotFound)
}

func TestCreatePurchase_UnavailableMachine(t *testing.T) {
	machineRepo, _, _, uc, machine := newPurchaseFixture()
	machineRepo.machines[0].Availability = false

	_, err := uc.CreatePurchase(context.Background(), uuid.New(), &dto.CreatePurchaseRequest{MachineID: machine.ID})
	assert.ErrorIs(t, err, ErrMachineUnavailable)
}

func TestPay_OwnerOnly(t *testing.T) {
	_, _, _, uc, machine := newPurchaseFixture()
	userID := uuid.New()

	purchase, err := uc.CreatePurchase(context.Background(), userID, &dto.CreatePurchaseRequest{MachineID: machine.ID})
	require.NoError(t, err)

	_, err = uc.Pay(context.Background(), uuid.New(), purchase.ID)
	assert.ErrorIs(t, err, ErrNotPurchaseOwner)
}

func TestPay_PaidIsTerminal(t *testing.T) {
	_, _, _, uc, machine := newPurchaseFixture()
	userID := uuid.New()

	purchase, err := uc.CreatePurchase(context.Background(), userID, &dto.CreatePurchaseRequest{MachineID: machine.ID})
	require.NoError(t, err)

	_, err = uc.Pay(context.Background(), userID, purchase.ID)
	require.NoError(t, err)

	_, err = uc.Pay(context.Background(), userID, purchase.ID)
	assert.ErrorIs(t, err, ErrPurchaseNotPending)
}

func TestPay_NotFound(t *testing.T) {
	_, _, _, uc, _ := newPurchaseFixture()

	_, err := uc.Pay(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrPurchaseNotFound)
}

func TestListPurchases_ScopedByRole(t *testing.T) {
	_, _, _, uc, machine := newPurchaseFixture()
	alice := uuid.New()
	bob := uuid.New()

	_, err := uc.CreatePurchase(context.Background(), alice, &dto.CreatePurchaseRequest{MachineID: machine.ID})
	require.NoError(t, err)
	_, err = uc.CreatePurchase(context.Background(), bob, &dto.CreatePurchaseRequest{MachineID: machine.ID})
	require.NoError(t, err)

	own, err := uc.ListPurchases(context.Background(), alice, entity.RoleClinic)
	require.NoError(t, err)
	assert.Equal(t, 1, own.Total)

	all, err := uc.ListPurchases(context.Background(), alice, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)
}
