package converter

import (
	"medequip-rental-backend/internal/delivery/dto"
	"medequip-rental-backend/internal/domain/entity"
)

// MachineToResponse converts a Machine entity to MachineResponse DTO
func MachineToResponse(machine *entity.Machine) *dto.MachineResponse {
	if machine == nil {
		return nil
	}

	return &dto.MachineResponse{
		ID:                 machine.ID,
		Name:               machine.Name,
		Type:               machine.Type,
		Category:           machine.Category,
		Condition:          string(machine.Condition),
		Description:        machine.Description,
		Price:              machine.Price,
		ImageURL:           machine.ImageURL,
		Availability:       machine.Availability,
		RepairHistory:      machine.RepairHistory,
		SparePartsReplaced: machine.SparePartsReplaced,
		WarrantyInfo:       machine.WarrantyInfo,
		RentalPricing: dto.RentalPricingResponse{
			PerDay:   machine.RentalPricing.PerDay,
			PerWeek:  machine.RentalPricing.PerWeek,
			PerMonth: machine.RentalPricing.PerMonth,
		},
		CreatedAt: machine.CreatedAt,
		UpdatedAt: machine.UpdatedAt,
	}
}

// MachinesToResponses converts a slice of Machine entities to slice of MachineResponse DTOs
func MachinesToResponses(machines []entity.Machine) []dto.MachineResponse {
	responses := make([]dto.MachineResponse, len(machines))
	for i := range machines {
		responses[i] = *MachineToResponse(&machines[i])
	}
	return responses
}
