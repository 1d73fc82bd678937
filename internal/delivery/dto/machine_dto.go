package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type RentalPricingRequest struct {
	PerDay   decimal.Decimal `json:"per_day" validate:"gte=0"`
	PerWeek  decimal.Decimal `json:"per_week" validate:"gte=0"`
	PerMonth decimal.Decimal `json:"per_month" validate:"gte=0"`
}

type CreateMachineRequest struct {
	Name               string               `json:"name" validate:"required,min=2"`
	Type               string               `json:"type" validate:"required"`
	Category           string               `json:"category" validate:"required"`
	Condition          string               `json:"condition" validate:"omitempty,oneof=Excellent Good Fair"`
	Description        string               `json:"description" validate:"required"`
	Price              decimal.Decimal      `json:"price" validate:"required"`
	ImageURL           string               `json:"image_url"`
	Availability       *bool                `json:"availability"`
	RepairHistory      []string             `json:"repair_history"`
	SparePartsReplaced []string             `json:"spare_parts_replaced"`
	WarrantyInfo       string               `json:"warranty_info"`
	RentalPricing      RentalPricingRequest `json:"rental_pricing"`
}

type UpdateMachineRequest struct {
	Name               string               `json:"name" validate:"required,min=2"`
	Type               string               `json:"type" validate:"required"`
	Category           string               `json:"category" validate:"required"`
	Condition          string               `json:"condition" validate:"omitempty,oneof=Excellent Good Fair"`
	Description        string               `json:"description" validate:"required"`
	Price              decimal.Decimal      `json:"price" validate:"required"`
	ImageURL           string               `json:"image_url"`
	Availability       *bool                `json:"availability"`
	RepairHistory      []string             `json:"repair_history"`
	SparePartsReplaced []string             `json:"spare_parts_replaced"`
	WarrantyInfo       string               `json:"warranty_info"`
	RentalPricing      RentalPricingRequest `json:"rental_pricing"`
}

// Response DTOs

type RentalPricingResponse struct {
	PerDay   decimal.Decimal `json:"per_day"`
	PerWeek  decimal.Decimal `json:"per_week"`
	PerMonth decimal.Decimal `json:"per_month"`
}

type MachineResponse struct {
	ID                 uuid.UUID             `json:"id"`
	Name               string                `json:"name"`
	Type               string                `json:"type"`
	Category           string                `json:"category"`
	Condition          string                `json:"condition"`
	Description        string                `json:"description"`
	Price              decimal.Decimal       `json:"price"`
	ImageURL           string                `json:"image_url,omitempty"`
	Availability       bool                  `json:"availability"`
	RepairHistory      []string              `json:"repair_history"`
	SparePartsReplaced []string              `json:"spare_parts_replaced"`
	WarrantyInfo       string                `json:"warranty_info,omitempty"`
	RentalPricing      RentalPricingResponse `json:"rental_pricing"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

type MachineListResponse struct {
	Machines []MachineResponse `json:"machines"`
	Total    int               `json:"total"`
	Filtered int               `json:"filtered"`
}
