package handler

import (
	"encoding/json"
	"net/http"

	"medequip-rental-backend/internal/delivery/dto"
	"medequip-rental-backend/internal/delivery/http/middleware"
	"medequip-rental-backend/internal/domain/entity"
	"medequip-rental-backend/internal/usecase"
	"medequip-rental-backend/pkg/response"
	"medequip-rental-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type MachineHandler struct {
	machineUsecase usecase.MachineUsecase
	validator      *validator.CustomValidator
}

func NewMachineHandler(machineUsecase usecase.MachineUsecase, validator *validator.CustomValidator) *MachineHandler {
	return &MachineHandler{
		machineUsecase: machineUsecase,
		validator:      validator,
	}
}

// List handles browsing the machine catalog with filters
// @Summary List machines
// @Description List the catalog filtered by search, category, condition, price range, and availability
// @Tags Machines
// @Security BearerAuth
// @Produce json
// @Param search query string false "Substring match over name, type, description"
// @Param category query string false "Category ('all' passes everything)"
// @Param condition query string false "Condition grade" Enums(Excellent, Good, Fair)
// @Param min_price query number false "Inclusive lower price bound"
// @Param max_price query number false "Inclusive upper price bound"
// @Param availability query string false "Availability" Enums(all, available, unavailable)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /machines [get]
func (h *MachineHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseMachineFilter(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	result, err := h.machineUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list machines")
		return
	}

	response.Success(w, http.StatusOK, "Machines retrieved successfully", result)
}

// Get handles fetching a single machine
// @Summary Get machine by ID
// @Tags Machines
// @Security BearerAuth
// @Produce json
// @Param id path string true "Machine ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /machines/{id} [get]
func (h *MachineHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid machine ID", nil)
		return
	}

	machine, err := h.machineUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrMachineNotFound:
			response.NotFound(w, "Machine not found")
		default:
			response.InternalServerError(w, "Failed to get machine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Machine retrieved successfully", machine)
}

// Create handles adding a machine to the catalog
// @Summary Create machine
// @Description Add a refurbished machine listing (admin only)
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateMachineRequest true "Create Machine Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/machines [post]
func (h *MachineHandler) Create(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateMachineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	machine, err := h.machineUsecase.Create(r.Context(), adminID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCondition:
			response.Error(w, http.StatusBadRequest, "Invalid machine condition", nil)
		default:
			response.InternalServerError(w, "Failed to create machine")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Machine created successfully", machine)
}

// Update handles editing a machine listing
// @Summary Update machine
// @Description Replace every editable field of a listing; the ID is immutable (admin only)
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Machine ID"
// @Param request body dto.UpdateMachineRequest true "Update Machine Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/machines/{id} [put]
func (h *MachineHandler) Update(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid machine ID", nil)
		return
	}

	var req dto.UpdateMachineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	machine, err := h.machineUsecase.Update(r.Context(), adminID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrMachineNotFound:
			response.NotFound(w, "Machine not found")
		case usecase.ErrInvalidCondition:
			response.Error(w, http.StatusBadRequest, "Invalid machine condition", nil)
		default:
			response.InternalServerError(w, "Failed to update machine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Machine updated successfully", machine)
}

// Delete handles removing a machine listing
// @Summary Delete machine
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Machine ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/machines/{id} [delete]
func (h *MachineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid machine ID", nil)
		return
	}

	if err := h.machineUsecase.Delete(r.Context(), adminID, id); err != nil {
		switch err {
		case usecase.ErrMachineNotFound:
			response.NotFound(w, "Machine not found")
		default:
			response.InternalServerError(w, "Failed to delete machine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Machine deleted successfully", nil)
}

// parseMachineFilter builds a catalog filter from query parameters.
// Absent parameters leave their predicate open.
func parseMachineFilter(r *http.Request) (entity.MachineFilter, error) {
	q := r.URL.Query()

	filter := entity.MachineFilter{
		Search:       q.Get("search"),
		Category:     q.Get("category"),
		Availability: q.Get("availability"),
	}

	if cond := q.Get("condition"); cond != "" {
		condition := entity.MachineCondition(cond)
		if !condition.IsValid() {
			return entity.MachineFilter{}, errInvalidFilter("condition must be Excellent, Good, or Fair")
		}
		filter.Condition = condition
	}

	if raw := q.Get("min_price"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return entity.MachineFilter{}, errInvalidFilter("min_price must be a number")
		}
		filter.MinPrice = &min
	}

	if raw := q.Get("max_price"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return entity.MachineFilter{}, errInvalidFilter("max_price must be a number")
		}
		filter.MaxPrice = &max
	}

	switch filter.Availability {
	case "", entity.FilterAll, entity.AvailabilityAvailable, entity.AvailabilityUnavailable:
	default:
		return entity.MachineFilter{}, errInvalidFilter("availability must be all, available, or unavailable")
	}

	return filter, nil
}

type errInvalidFilter string

func (e errInvalidFilter) Error() string { return string(e) }
