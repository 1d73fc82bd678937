package usecase

import (
	"context"
	"io"

	"medequip-rental-backend/internal/domain/entity"
	"medequip-rental-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeMachineRepo is an in-memory MachineRepository preserving insertion
// order, with an optional forced error.
type fakeMachineRepo struct {
	machines []entity.Machine
	findAlls int
	err      error
}

func (r *fakeMachineRepo) Create(ctx context.Context, machine *entity.Machine) error {
	if r.err != nil {
		return r.err
	}
	if machine.ID == uuid.Nil {
		machine.ID = uuid.New()
	}
	r.machines = append(r.machines, *machine)
	return nil
}

func (r *fakeMachineRepo) FindAll(ctx context.Context) ([]entity.Machine, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.findAlls++
	out := make([]entity.Machine, len(r.machines))
	copy(out, r.machines)
	return out, nil
}

func (r *fakeMachineRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Machine, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.machines {
		if r.machines[i].ID == id {
			m := r.machines[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (r *fakeMachineRepo) Update(ctx context.Context, machine *entity.Machine) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.machines {
		if r.machines[i].ID == machine.ID {
			r.machines[i] = *machine
			return nil
		}
	}
	return nil
}

func (r *fakeMachineRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.machines {
		if r.machines[i].ID == id {
			r.machines = append(r.machines[:i], r.machines[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeRequestRepo struct {
	requests map[uuid.UUID]*entity.RentalRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[uuid.UUID]*entity.RentalRequest)}
}

func (r *fakeRequestRepo) Create(ctx context.Context, request *entity.RentalRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	stored := *request
	r.requests[request.ID] = &stored
	return nil
}

func (r *fakeRequestRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.RentalRequest, error) {
	if request, ok := r.requests[id]; ok {
		out := *request
		return &out, nil
	}
	return nil, nil
}

func (r *fakeRequestRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.RentalRequest, error) {
	var out []entity.RentalRequest
	for _, request := range r.requests {
		if request.UserID == userID {
			out = append(out, *request)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) FindAll(ctx context.Context) ([]entity.RentalRequest, error) {
	var out []entity.RentalRequest
	for _, request := range r.requests {
		out = append(out, *request)
	}
	return out, nil
}

func (r *fakeRequestRepo) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entity.RequestStatus) (int64, error) {
	request, ok := r.requests[id]
	if !ok || request.AdminStatus != from {
		return 0, nil
	}
	request.AdminStatus = to
	return 1, nil
}

type fakeRentalRepo struct {
	rentals   map[uuid.UUID]*entity.Rental
	createErr error
}

func newFakeRentalRepo() *fakeRentalRepo {
	return &fakeRentalRepo{rentals: make(map[uuid.UUID]*entity.Rental)}
}

func (r *fakeRentalRepo) Create(ctx context.Context, rental *entity.Rental) error {
	if r.createErr != nil {
		return r.createErr
	}
	if rental.ID == uuid.Nil {
		rental.ID = uuid.New()
	}
	stored := *rental
	r.rentals[rental.ID] = &stored
	return nil
}

func (r *fakeRentalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error) {
	if rental, ok := r.rentals[id]; ok {
		out := *rental
		return &out, nil
	}
	return nil, nil
}

func (r *fakeRentalRepo) FindByRequestID(ctx context.Context, requestID uuid.UUID) (*entity.Rental, error) {
	for _, rental := range r.rentals {
		if rental.RequestID == requestID {
			out := *rental
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeRentalRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Rental, error) {
	var out []entity.Rental
	for _, rental := range r.rentals {
		if rental.UserID == userID {
			out = append(out, *rental)
		}
	}
	return out, nil
}

func (r *fakeRentalRepo) FindAll(ctx context.Context) ([]entity.Rental, error) {
	var out []entity.Rental
	for _, rental := range r.rentals {
		out = append(out, *rental)
	}
	return out, nil
}

func (r *fakeRentalRepo) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entity.RentalStatus) (int64, error) {
	rental, ok := r.rentals[id]
	if !ok || rental.Status != from {
		return 0, nil
	}
	rental.Status = to
	return 1, nil
}

type fakePurchaseRepo struct {
	purchases map[uuid.UUID]*entity.Purchase
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{purchases: make(map[uuid.UUID]*entity.Purchase)}
}

func (r *fakePurchaseRepo) Create(ctx context.Context, purchase *entity.Purchase) error {
	if purchase.ID == uuid.Nil {
		purchase.ID = uuid.New()
	}
	stored := *purchase
	r.purchases[purchase.ID] = &stored
	return nil
}

func (r *fakePurchaseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	if purchase, ok := r.purchases[id]; ok {
		out := *purchase
		return &out, nil
	}
	return nil, nil
}

func (r *fakePurchaseRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Purchase, error) {
	var out []entity.Purchase
	for _, purchase := range r.purchases {
		if purchase.UserID == userID {
			out = append(out, *purchase)
		}
	}
	return out, nil
}

func (r *fakePurchaseRepo) FindAll(ctx context.Context) ([]entity.Purchase, error) {
	var out []entity.Purchase
	for _, purchase := range r.purchases {
		out = append(out, *purchase)
	}
	return out, nil
}

func (r *fakePurchaseRepo) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entity.PurchaseStatus) (int64, error) {
	purchase, ok := r.purchases[id]
	if !ok || purchase.Status != from {
		return 0, nil
	}
	purchase.Status = to
	return 1, nil
}

type fakeAuditRepo struct {
	entries []entity.AuditLog
}

func (r *fakeAuditRepo) Create(ctx context.Context, auditLog *entity.AuditLog) error {
	r.entries = append(r.entries, *auditLog)
	return nil
}

func (r *fakeAuditRepo) FindAll(ctx context.Context, limit, offset int) ([]entity.AuditLog, int64, error) {
	total := int64(len(r.entries))
	if offset >= len(r.entries) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(r.entries) {
		end = len(r.entries)
	}
	return r.entries[offset:end], total, nil
}

func (r *fakeAuditRepo) actions() []string {
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

func testAuditService(repo *fakeAuditRepo) service.AuditService {
	return service.NewAuditService(testLogger(), repo)
}
