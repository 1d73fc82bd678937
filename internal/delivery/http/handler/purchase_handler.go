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

type PurchaseHandler struct {
	purchaseUsecase usecase.PurchaseUsecase
	validator       *validator.CustomValidator
}

func NewPurchaseHandler(purchaseUsecase usecase.PurchaseUsecase, validator *validator.CustomValidator) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUsecase: purchaseUsecase,
		validator:       validator,
	}
}

// Create handles opening a purchase order
// @Summary Create purchase
// @Description Open a pending-payment order at the machine's current price
// @Tags Purchases
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePurchaseRequest true "Create Purchase Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /purchases [post]
func (h *PurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	purchase, err := h.purchaseUsecase.CreatePurchase(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMachineNotFound:
			response.NotFound(w, "Machine not found")
		case usecase.ErrMachineUnavailable:
			response.Error(w, http.StatusConflict, "Machine is not available for purchase", nil)
		default:
			response.InternalServerError(w, "Failed to create purchase")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Purchase created successfully", purchase)
}

// Pay handles settling a pending purchase
// @Summary Pay purchase
// @Description Move a pending-payment purchase to paid; paid is terminal
// @Tags Purchases
// @Security BearerAuth
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /purchases/{id}/pay [post]
func (h *PurchaseHandler) Pay(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid purchase ID", nil)
		return
	}

	purchase, err := h.purchaseUsecase.Pay(r.Context(), userID, id)
	if err != nil {
		switch err {
		case usecase.ErrPurchaseNotFound:
			response.NotFound(w, "Purchase not found")
		case usecase.ErrNotPurchaseOwner:
			response.Forbidden(w, "Only the purchase owner can pay for this order")
		case usecase.ErrPurchaseNotPending:
			response.Error(w, http.StatusConflict, "Purchase is not awaiting payment", nil)
		default:
			response.InternalServerError(w, "Failed to pay purchase")
		}
		return
	}

	response.Success(w, http.StatusOK, "Purchase paid successfully", purchase)
}

// List handles listing purchases
// @Summary List purchases
// @Description Clinic users see their own purchases; admins see all
// @Tags Purchases
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /purchases [get]
func (h *PurchaseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	role, _ := middleware.GetRoleFromContext(r.Context())

	result, err := h.purchaseUsecase.ListPurchases(r.Context(), userID, role)
	if err != nil {
		response.InternalServerError(w, "Failed to list purchases")
		return
	}

	response.Success(w, http.StatusOK, "Purchases retrieved successfully", result)
}
