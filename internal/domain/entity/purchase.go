package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseStatus represents the payment status of a purchase
type PurchaseStatus string

const (
	PurchaseStatusPendingPayment PurchaseStatus = "pending_payment"
	PurchaseStatusPaid           PurchaseStatus = "paid"
)

// Purchase is a buy-now order for a machine. Paid is terminal.
type Purchase struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	MachineID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"machine_id"`
	MachineName string          `gorm:"type:varchar(255);not null" json:"machine_name"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Status      PurchaseStatus  `gorm:"type:varchar(20);not null;default:'pending_payment';index" json:"status"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Purchase) TableName() string {
	return "purchases"
}

// IsPendingPayment checks if the purchase still awaits payment
func (p *Purchase) IsPendingPayment() bool {
	return p.Status == PurchaseStatusPendingPayment
}

// IsPaid checks if the purchase has been paid
func (p *Purchase) IsPaid() bool {
	return p.Status == PurchaseStatusPaid
}
