package usecase

import (
	"context"
	"errors"
	"time"

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
	ErrRentalRequestNotFound   = errors.New("rental request not found")
	ErrRentalNotFound          = errors.New("rental not found")
	ErrInvalidDuration         = errors.New("invalid rental duration")
	ErrMachineUnavailable      = errors.New("machine is not available")
	ErrRequestNotPending       = errors.New("rental request is not pending")
	ErrRequestNotApproved      = errors.New("rental request is not approved")
	ErrRequestAlreadyConfirmed = errors.New("rental request already confirmed")
	ErrInvalidStatusTransition = errors.New("invalid rental status transition")
	ErrNotRequestOwner         = errors.New("not the owner of this rental request")
)

type RentalUsecase interface {
	CreateRequest(ctx context.Context, userID uuid.UUID, req *dto.CreateRentalRequestRequest) (*dto.RentalRequestResponse, error)
	ListRequests(ctx context.Context, userID uuid.UUID, role entity.Role) (*dto.RentalRequestListResponse, error)
	ApproveRequest(ctx context.Context, adminID uuid.UUID, id uuid.UUID) (*dto.RentalRequestResponse, error)
	RejectRequest(ctx context.Context, adminID uuid.UUID, id uuid.UUID) (*dto.RentalRequestResponse, error)
	ConfirmRental(ctx context.Context, userID uuid.UUID, requestID uuid.UUID) (*dto.RentalResponse, error)
	ListRentals(ctx context.Context, userID uuid.UUID, role entity.Role) (*dto.RentalListResponse, error)
	UpdateRentalStatus(ctx context.Context, adminID uuid.UUID, id uuid.UUID, req *dto.UpdateRentalStatusRequest) (*dto.RentalResponse, error)
}

type rentalUsecase struct {
	log          *logrus.Logger
	requestRepo  repository.RentalRequestRepository
	rentalRepo   repository.RentalRepository
	machineRepo  repository.MachineRepository
	auditService service.AuditService
}

func NewRentalUsecase(
	log *logrus.Logger,
	requestRepo repository.RentalRequestRepository,
	rentalRepo repository.RentalRepository,
	machineRepo repository.MachineRepository,
	auditService service.AuditService,
) RentalUsecase {
	return &rentalUsecase{
		log:          log,
		requestRepo:  requestRepo,
		rentalRepo:   rentalRepo,
		machineRepo:  machineRepo,
		auditService: auditService,
	}
}

// CreateRequest opens a pending rental request. The total price is
// computed server-side from the machine's current rental rates and the
// duration token; client-supplied amounts are never trusted.
func (u *rentalUsecase) CreateRequest(ctx context.Context, userID uuid.UUID, req *dto.CreateRentalRequestRequest) (*dto.RentalRequestResponse, error) {
	if !entity.IsValidDurationToken(req.Duration) {
		return nil, ErrInvalidDuration
	}

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

	request := &entity.RentalRequest{
		UserID:      userID,
		MachineID:   machine.ID,
		MachineName: machine.Name,
		UserName:    req.UserName,
		Phone:       req.Phone,
		Location:    req.Location,
		Duration:    req.Duration,
		TotalPrice:  machine.RentalPricing.PriceFor(req.Duration),
		AdminStatus: entity.RequestStatusPending,
	}

	if err := u.requestRepo.Create(ctx, request); err != nil {
		u.log.Warnf("Failed to create rental request: %+v", err)
		return nil, err
	}

	metrics.IncRentalRequest("created")
	u.auditService.LogCreate(ctx, &userID, entity.AuditActionRequestCreate, "rental_request", request.ID.String(), request)

	return converter.RentalRequestToResponse(request), nil
}

// ListRequests returns the caller's own requests, or every request when
// the caller holds the admin role.
func (u *rentalUsecase) ListRequests(ctx context.Context, userID uuid.UUID, role entity.Role) (*dto.RentalRequestListResponse, error) {
	var requests []entity.RentalRequest
	var err error

	if role == entity.RoleAdmin {
		requests, err = u.requestRepo.FindAll(ctx)
	} else {
		requests, err = u.requestRepo.FindByUserID(ctx, userID)
	}
	if err != nil {
		u.log.Warnf("Failed to list rental requests: %+v", err)
		return nil, err
	}

	return &dto.RentalRequestListResponse{
		Requests: converter.RentalRequestsToResponses(requests),
		Total:    len(requests),
	}, nil
}

func (u *rentalUsecase) ApproveRequest(ctx context.Context, adminID uuid.UUID, id uuid.UUID) (*dto.RentalRequestResponse, error) {
	return u.disposeRequest(ctx, adminID, id, entity.RequestStatusApproved)
}

func (u *rentalUsecase) RejectRequest(ctx context.Context, adminID uuid.UUID, id uuid.UUID) (*dto.RentalRequestResponse, error) {
	return u.disposeRequest(ctx, adminID, id, entity.RequestStatusRejected)
}

// disposeRequest moves a pending request to approved or rejected with a
// guarded update, so two admins racing on the same request cannot both
// win and a settled request can never be re-disposed.
func (u *rentalUsecase) disposeRequest(ctx context.Context, adminID uuid.UUID, id uuid.UUID, to entity.RequestStatus) (*dto.RentalRequestResponse, error) {
	affected, err := u.requestRepo.UpdateStatusFrom(ctx, id, entity.RequestStatusPending, to)
	if err != nil {
		u.log.Warnf("Failed to update rental request status: %+v", err)
		return nil, err
	}

	if affected == 0 {
		request, err := u.requestRepo.FindByID(ctx, id)
		if err != nil {
			u.log.Warnf("Failed to find rental request by ID: %+v", err)
			return nil, err
		}
		if request == nil {
			return nil, ErrRentalRequestNotFound
		}
		return nil, ErrRequestNotPending
	}

	request, err := u.requestRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find rental request by ID: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRentalRequestNotFound
	}

	action := entity.AuditActionRequestApprove
	outcome := "approved"
	if to == entity.RequestStatusRejected {
		action = entity.AuditActionRequestReject
		outcome = "rejected"
	}
	metrics.IncRentalRequest(outcome)
	u.auditService.LogUpdate(ctx, &adminID, action, "rental_request", id.String(), entity.RequestStatusPending, to)

	return converter.RentalRequestToResponse(request), nil
}

// ConfirmRental materializes an approved request into an active rental.
// Only the request owner may confirm, and each request confirms at most
// once: the unique request_id index backstops the read-then-create check.
func (u *rentalUsecase) ConfirmRental(ctx context.Context, userID uuid.UUID, requestID uuid.UUID) (*dto.RentalResponse, error) {
	request, err := u.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		u.log.Warnf("Failed to find rental request by ID: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRentalRequestNotFound
	}
	if request.UserID != userID {
		return nil, ErrNotRequestOwner
	}
	if !request.CanConfirm() {
		return nil, ErrRequestNotApproved
	}

	existing, err := u.rentalRepo.FindByRequestID(ctx, requestID)
	if err != nil {
		u.log.Warnf("Failed to find rental by request ID: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrRequestAlreadyConfirmed
	}

	// Duration and price are copied from the request: catalog edits after
	// approval do not reprice a confirmed rental.
	rental := &entity.Rental{
		RequestID:   request.ID,
		UserID:      request.UserID,
		MachineID:   request.MachineID,
		MachineName: request.MachineName,
		Duration:    request.Duration,
		TotalPrice:  request.TotalPrice,
		Status:      entity.RentalStatusOngoing,
		StartDate:   time.Now().UTC(),
	}

	if err := u.rentalRepo.Create(ctx, rental); err != nil {
		if isDuplicateKeyError(err, "request_id") {
			return nil, ErrRequestAlreadyConfirmed
		}
		u.log.Warnf("Failed to create rental: %+v", err)
		return nil, err
	}

	metrics.IncRentalConfirmed()
	u.auditService.LogCreate(ctx, &userID, entity.AuditActionRentalConfirm, "rental", rental.ID.String(), rental)

	return converter.RentalToResponse(rental), nil
}

// ListRentals returns the caller's own rentals, or every rental for admins.
func (u *rentalUsecase) ListRentals(ctx context.Context, userID uuid.UUID, role entity.Role) (*dto.RentalListResponse, error) {
	var rentals []entity.Rental
	var err error

	if role == entity.RoleAdmin {
		rentals, err = u.rentalRepo.FindAll(ctx)
	} else {
		rentals, err = u.rentalRepo.FindByUserID(ctx, userID)
	}
	if err != nil {
		u.log.Warnf("Failed to list rentals: %+v", err)
		return nil, err
	}

	return &dto.RentalListResponse{
		Rentals: converter.RentalsToResponses(rentals),
		Total:   len(rentals),
	}, nil
}

// UpdateRentalStatus closes an ongoing rental as completed or returned.
// The guarded update only fires while the rental is still ongoing, so
// terminal states cannot be overwritten.
func (u *rentalUsecase) UpdateRentalStatus(ctx context.Context, adminID uuid.UUID, id uuid.UUID, req *dto.UpdateRentalStatusRequest) (*dto.RentalResponse, error) {
	next := entity.RentalStatus(req.Status)
	if next != entity.RentalStatusCompleted && next != entity.RentalStatusReturned {
		return nil, ErrInvalidStatusTransition
	}

	affected, err := u.rentalRepo.UpdateStatusFrom(ctx, id, entity.RentalStatusOngoing, next)
	if err != nil {
		u.log.Warnf("Failed to update rental status: %+v", err)
		return nil, err
	}

	if affected == 0 {
		rental, err := u.rentalRepo.FindByID(ctx, id)
		if err != nil {
			u.log.Warnf("Failed to find rental by ID: %+v", err)
			return nil, err
		}
		if rental == nil {
			return nil, ErrRentalNotFound
		}
		return nil, ErrInvalidStatusTransition
	}

	rental, err := u.rentalRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find rental by ID: %+v", err)
		return nil, err
	}
	if rental == nil {
		return nil, ErrRentalNotFound
	}

	u.auditService.LogUpdate(ctx, &adminID, entity.AuditActionRentalStatus, "rental", id.String(), entity.RentalStatusOngoing, next)

	return converter.RentalToResponse(rental), nil
}
