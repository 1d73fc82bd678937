package handler

import (
	"encoding/json"
	"net/http"

	"medequip-rental-backend/internal/delivery/dto"
	"medequip-rental-backend/internal/delivery/http/middleware"
	"medequip-rental-backend/internal/usecase"
	"medequip-rental-backend/pkg/response"
	"medequip-rental-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type RentalHandler struct {
	rentalUsecase usecase.RentalUsecase
	validator     *validator.CustomValidator
}

func NewRentalHandler(rentalUsecase usecase.RentalUsecase, validator *validator.CustomValidator) *RentalHandler {
	return &RentalHandler{
		rentalUsecase: rentalUsecase,
		validator:     validator,
	}
}

// CreateRequest handles opening a rental request
// @Summary Create rental request
// @Description Open a pending rental request for a machine; the total price is computed server-side
// @Tags Rentals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateRentalRequestRequest true "Create Rental Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /rental-requests [post]
func (h *RentalHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateRentalRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.rentalUsecase.CreateRequest(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDuration:
			response.Error(w, http.StatusBadRequest, "Duration must look like 3-day, 2-week, or 1-month", nil)
		case usecase.ErrMachineNotFound:
			response.NotFound(w, "Machine not found")
		case usecase.ErrMachineUnavailable:
			response.Error(w, http.StatusConflict, "Machine is not available for rental", nil)
		default:
			response.InternalServerError(w, "Failed to create rental request")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Rental request created successfully", request)
}

// ListRequests handles listing rental requests
// @Summary List rental requests
// @Description Clinic users see their own requests; admins see all
// @Tags Rentals
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /rental-requests [get]
func (h *RentalHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	role, _ := middleware.GetRoleFromContext(r.Context())

	result, err := h.rentalUsecase.ListRequests(r.Context(), userID, role)
	if err != nil {
		response.InternalServerError(w, "Failed to list rental requests")
		return
	}

	response.Success(w, http.StatusOK, "Rental requests retrieved successfully", result)
}

// ApproveRequest handles admin approval of a pending request
// @Summary Approve rental request
// @Description Move a pending request to approved (admin only)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Rental Request ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/rental-requests/{id}/approve [put]
func (h *RentalHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	h.disposeRequest(w, r, true)
}

// RejectRequest handles admin rejection of a pending request
// @Summary Reject rental request
// @Description Move a pending request to rejected; rejected is terminal (admin only)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Rental Request ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/rental-requests/{id}/reject [put]
func (h *RentalHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	h.disposeRequest(w, r, false)
}

func (h *RentalHandler) disposeRequest(w http.ResponseWriter, r *http.Request, approve bool) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid rental request ID", nil)
		return
	}

	var request *dto.RentalRequestResponse
	if approve {
		request, err = h.rentalUsecase.ApproveRequest(r.Context(), adminID, id)
	} else {
		request, err = h.rentalUsecase.RejectRequest(r.Context(), adminID, id)
	}
	if err != nil {
		switch err {
		case usecase.ErrRentalRequestNotFound:
			response.NotFound(w, "Rental request not found")
		case usecase.ErrRequestNotPending:
			response.Error(w, http.StatusConflict, "Rental request has already been settled", nil)
		default:
			response.InternalServerError(w, "Failed to update rental request")
		}
		return
	}

	message := "Rental request approved successfully"
	if !approve {
		message = "Rental request rejected successfully"
	}
	response.Success(w, http.StatusOK, message, request)
}

// ConfirmRental handles confirming an approved request into a rental
// @Summary Confirm rental
// @Description Materialize an approved request into an ongoing rental; each request confirms at most once
// @Tags Rentals
// @Security BearerAuth
// @Produce json
// @Param id path string true "Rental Request ID"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /rental-requests/{id}/confirm [post]
func (h *RentalHandler) ConfirmRental(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	requestID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid rental request ID", nil)
		return
	}

	rental, err := h.rentalUsecase.ConfirmRental(r.Context(), userID, requestID)
	if err != nil {
		switch err {
		case usecase.ErrRentalRequestNotFound:
			response.NotFound(w, "Rental request not found")
		case usecase.ErrNotRequestOwner:
			response.Forbidden(w, "Only the request owner can confirm this rental")
		case usecase.ErrRequestNotApproved:
			response.Error(w, http.StatusConflict, "Rental request is not approved", nil)
		case usecase.ErrRequestAlreadyConfirmed:
			response.Error(w, http.StatusConflict, "Rental request has already been confirmed", nil)
		default:
			response.InternalServerError(w, "Failed to confirm rental")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Rental confirmed successfully", rental)
}

// ListRentals handles listing rentals
// @Summary List rentals
// @Description Clinic users see their own rentals; admins see all
// @Tags Rentals
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /rentals [get]
func (h *RentalHandler) ListRentals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	role, _ := middleware.GetRoleFromContext(r.Context())

	result, err := h.rentalUsecase.ListRentals(r.Context(), userID, role)
	if err != nil {
		response.InternalServerError(w, "Failed to list rentals")
		return
	}

	response.Success(w, http.StatusOK, "Rentals retrieved successfully", result)
}

// UpdateRentalStatus handles closing an ongoing rental
// @Summary Update rental status
// @Description Move an ongoing rental to completed or returned; both are terminal (admin only)
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Rental ID"
// @Param request body dto.UpdateRentalStatusRequest true "Update Rental Status Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/rentals/{id}/status [put]
func (h *RentalHandler) UpdateRentalStatus(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid rental ID", nil)
		return
	}

	var req dto.UpdateRentalStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	rental, err := h.rentalUsecase.UpdateRentalStatus(r.Context(), adminID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrRentalNotFound:
			response.NotFound(w, "Rental not found")
		case usecase.ErrInvalidStatusTransition:
			response.Error(w, http.StatusConflict, "Rental is not in a state that allows this transition", nil)
		default:
			response.InternalServerError(w, "Failed to update rental status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Rental status updated successfully", rental)
}
