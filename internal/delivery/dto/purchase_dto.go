package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePurchaseRequest struct {
	MachineID uuid.UUID `json:"machine_id" validate:"required"`
}

// Response DTOs

type PurchaseResponse struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	MachineID   uuid.UUID       `json:"machine_id"`
	MachineName string          `json:"machine_name"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

type PurchaseListResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
	Total     int                `json:"total"`
}
