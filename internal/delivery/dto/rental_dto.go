package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateRentalRequestRequest struct {
	MachineID uuid.UUID `json:"machine_id" validate:"required"`
	UserName  string    `json:"user_name" validate:"required,min=2"`
	Phone     string    `json:"phone" validate:"required,min=6"`
	Location  string    `json:"location" validate:"required"`
	Duration  string    `json:"duration" validate:"required"`
}

type UpdateRentalStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed returned"`
}

// Response DTOs

type RentalRequestResponse struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	MachineID   uuid.UUID       `json:"machine_id"`
	MachineName string          `json:"machine_name"`
	UserName    string          `json:"user_name"`
	Phone       string          `json:"phone"`
	Location    string          `json:"location"`
	Duration    string          `json:"duration"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	AdminStatus string          `json:"admin_status"`
	CreatedAt   time.Time       `json:"created_at"`
}

type RentalRequestListResponse struct {
	Requests []RentalRequestResponse `json:"requests"`
	Total    int                     `json:"total"`
}

type RentalResponse struct {
	ID          uuid.UUID       `json:"id"`
	RequestID   uuid.UUID       `json:"request_id"`
	UserID      uuid.UUID       `json:"user_id"`
	MachineID   uuid.UUID       `json:"machine_id"`
	MachineName string          `json:"machine_name"`
	Duration    string          `json:"duration"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Status      string          `json:"status"`
	StartDate   time.Time       `json:"start_date"`
}

type RentalListResponse struct {
	Rentals []RentalResponse `json:"rentals"`
	Total   int              `json:"total"`
}
