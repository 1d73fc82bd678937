package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequestStatus represents the admin disposition of a rental request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// RentalRequest is a clinic user's ask to rent a machine, pending admin
// disposition. The machine name is denormalized so history survives
// catalog edits.
type RentalRequest struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	MachineID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"machine_id"`
	MachineName string          `gorm:"type:varchar(255);not null" json:"machine_name"`
	UserName    string          `gorm:"type:varchar(255);not null" json:"user_name"`
	Phone       string          `gorm:"type:varchar(20);not null" json:"phone"`
	Location    string          `gorm:"type:varchar(255);not null" json:"location"`
	Duration    string          `gorm:"type:varchar(20);not null" json:"duration"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_price"`
	AdminStatus RequestStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"admin_status"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RentalRequest) TableName() string {
	return "rental_requests"
}

// IsPending checks if the request still awaits admin disposition
func (r *RentalRequest) IsPending() bool {
	return r.AdminStatus == RequestStatusPending
}

// IsApproved checks if the request was approved by an admin
func (r *RentalRequest) IsApproved() bool {
	return r.AdminStatus == RequestStatusApproved
}

// IsRejected checks if the request was rejected; rejected is terminal
func (r *RentalRequest) IsRejected() bool {
	return r.AdminStatus == RequestStatusRejected
}

// CanConfirm reports whether the owner may materialize this request into a
// Rental. Only an approved request can be confirmed; pending and rejected
// requests never produce a Rental directly.
func (r *RentalRequest) CanConfirm() bool {
	return r.IsApproved()
}
