package converter

import (
	"medequip-rental-backend/internal/delivery/dto"
	"medequip-rental-backend/internal/domain/entity"
)

// RentalRequestToResponse converts a RentalRequest entity to its DTO
func RentalRequestToResponse(request *entity.RentalRequest) *dto.RentalRequestResponse {
	if request == nil {
		return nil
	}

	return &dto.RentalRequestResponse{
		ID:          request.ID,
		UserID:      request.UserID,
		MachineID:   request.MachineID,
		MachineName: request.MachineName,
		UserName:    request.UserName,
		Phone:       request.Phone,
		Location:    request.Location,
		Duration:    request.Duration,
		TotalPrice:  request.TotalPrice,
		AdminStatus: string(request.AdminStatus),
		CreatedAt:   request.CreatedAt,
	}
}

// RentalRequestsToResponses converts a slice of RentalRequest entities to DTOs
func RentalRequestsToResponses(requests []entity.RentalRequest) []dto.RentalRequestResponse {
	responses := make([]dto.RentalRequestResponse, len(requests))
	for i := range requests {
		responses[i] = *RentalRequestToResponse(&requests[i])
	}
	return responses
}

// RentalToResponse converts a Rental entity to RentalResponse DTO
func RentalToResponse(rental *entity.Rental) *dto.RentalResponse {
	if rental == nil {
		return nil
	}

	return &dto.RentalResponse{
		ID:          rental.ID,
		RequestID:   rental.RequestID,
		UserID:      rental.UserID,
		MachineID:   rental.MachineID,
		MachineName: rental.MachineName,
		Duration:    rental.Duration,
		TotalPrice:  rental.TotalPrice,
		Status:      string(rental.Status),
		StartDate:   rental.StartDate,
	}
}

// RentalsToResponses converts a slice of Rental entities to DTOs
func RentalsToResponses(rentals []entity.Rental) []dto.RentalResponse {
	responses := make([]dto.RentalResponse, len(rentals))
	for i := range rentals {
		responses[i] = *RentalToResponse(&rentals[i])
	}
	return responses
}
