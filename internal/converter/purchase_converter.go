package converter

import (
	"medequip-rental-backend/internal/delivery/dto"
	"medequip-rental-backend/internal/domain/entity"
)

// PurchaseToResponse converts a Purchase entity to PurchaseResponse DTO
func PurchaseToResponse(purchase *entity.Purchase) *dto.PurchaseResponse {
	if purchase == nil {
		return nil
	}

	return &dto.PurchaseResponse{
		ID:          purchase.ID,
		UserID:      purchase.UserID,
		MachineID:   purchase.MachineID,
		MachineName: purchase.MachineName,
		Price:       purchase.Price,
		Status:      string(purchase.Status),
		CreatedAt:   purchase.CreatedAt,
	}
}

// PurchasesToResponses converts a slice of Purchase entities to DTOs
func PurchasesToResponses(purchases []entity.Purchase) []dto.PurchaseResponse {
	responses := make([]dto.PurchaseResponse, len(purchases))
	for i := range purchases {
		responses[i] = *PurchaseToResponse(&purchases[i])
	}
	return responses
}
