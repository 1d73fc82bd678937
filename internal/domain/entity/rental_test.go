package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRental_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		name     string
		current  RentalStatus
		next     RentalStatus
		expected bool
	}{
		{name: "ongoing to completed", current: RentalStatusOngoing, next: RentalStatusCompleted, expected: true},
		{name: "ongoing to returned", current: RentalStatusOngoing, next: RentalStatusReturned, expected: true},
		{name: "ongoing to ongoing", current: RentalStatusOngoing, next: RentalStatusOngoing, expected: false},
		{name: "completed is terminal", current: RentalStatusCompleted, next: RentalStatusReturned, expected: false},
		{name: "completed cannot reopen", current: RentalStatusCompleted, next: RentalStatusOngoing, expected: false},
		{name: "returned is terminal", current: RentalStatusReturned, next: RentalStatusCompleted, expected: false},
		{name: "returned cannot reopen", current: RentalStatusReturned, next: RentalStatusOngoing, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rental := &Rental{Status: tc.current}
			assert.Equal(t, tc.expected, rental.CanTransitionTo(tc.next))
		})
	}
}

func TestRental_IsTerminal(t *testing.T) {
	assert.False(t, (&Rental{Status: RentalStatusOngoing}).IsTerminal())
	assert.True(t, (&Rental{Status: RentalStatusCompleted}).IsTerminal())
	assert.True(t, (&Rental{Status: RentalStatusReturned}).IsTerminal())
}

func TestRentalRequest_CanConfirm(t *testing.T) {
	testCases := []struct {
		name     string
		status   RequestStatus
		expected bool
	}{
		{name: "pending cannot confirm", status: RequestStatusPending, expected: false},
		{name: "approved can confirm", status: RequestStatusApproved, expected: true},
		{name: "rejected cannot confirm", status: RequestStatusRejected, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			request := &RentalRequest{AdminStatus: tc.status}
			assert.Equal(t, tc.expected, request.CanConfirm())
		})
	}
}

func TestPurchase_StatusPredicates(t *testing.T) {
	pending := &Purchase{Status: PurchaseStatusPendingPayment}
	assert.True(t, pending.IsPendingPayment())
	assert.False(t, pending.IsPaid())

	paid := &Purchase{Status: PurchaseStatusPaid}
	assert.False(t, paid.IsPendingPayment())
	assert.True(t, paid.IsPaid())
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleClinic.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("").IsValid())
	assert.False(t, Role("superuser").IsValid())
}
