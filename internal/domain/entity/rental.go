package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RentalStatus represents the status of an activated rental
type RentalStatus string

const (
	RentalStatusOngoing   RentalStatus = "ongoing"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusReturned  RentalStatus = "returned"
)

// Rental is an activated booking, created only when a clinic user confirms
// an approved rental request. RequestID is unique so a request can be
// materialized at most once.
type Rental struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RequestID   uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"request_id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	MachineID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"machine_id"`
	MachineName string          `gorm:"type:varchar(255);not null" json:"machine_name"`
	Duration    string          `gorm:"type:varchar(20);not null" json:"duration"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_price"`
	Status      RentalStatus    `gorm:"type:varchar(20);not null;default:'ongoing';index" json:"status"`
	StartDate   time.Time       `gorm:"not null" json:"start_date"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Rental) TableName() string {
	return "rentals"
}

// IsOngoing checks if the rental is still active
func (r *Rental) IsOngoing() bool {
	return r.Status == RentalStatusOngoing
}

// IsTerminal checks if the rental reached a terminal state
func (r *Rental) IsTerminal() bool {
	return r.Status == RentalStatusCompleted || r.Status == RentalStatusReturned
}

// CanTransitionTo reports whether the rental may move to next. The only
// legal transitions are ongoing -> completed and ongoing -> returned;
// neither is reversible.
func (r *Rental) CanTransitionTo(next RentalStatus) bool {
	if !r.IsOngoing() {
		return false
	}
	return next == RentalStatusCompleted || next == RentalStatusReturned
}
