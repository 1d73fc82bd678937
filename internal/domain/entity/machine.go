package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MachineCondition represents the refurbishment grade of a machine
type MachineCondition string

const (
	ConditionExcellent MachineCondition = "Excellent"
	ConditionGood      MachineCondition = "Good"
	ConditionFair      MachineCondition = "Fair"
)

// IsValid reports whether c is one of the known condition grades.
func (c MachineCondition) IsValid() bool {
	return c == ConditionExcellent || c == ConditionGood || c == ConditionFair
}

// StringList type for GORM JSONB support of ordered string lists
type StringList []string

// Value returns json value, implement driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan scan value into StringList, implements sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := StringList{}
	err := json.Unmarshal(bytes, &result)
	*l = result
	return err
}

// Machine represents a refurbished medical equipment record
type Machine struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name               string           `gorm:"type:varchar(255);not null" json:"name"`
	Type               string           `gorm:"type:varchar(100);not null" json:"type"`
	Category           string           `gorm:"type:varchar(100);not null;index" json:"category"`
	Condition          MachineCondition `gorm:"type:varchar(20);not null;default:'Good'" json:"condition"`
	Description        string           `gorm:"type:text;not null" json:"description"`
	Price              decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"price"`
	ImageURL           string           `gorm:"type:text" json:"image_url,omitempty"`
	Availability       bool             `gorm:"not null;default:true;index" json:"availability"`
	RepairHistory      StringList       `gorm:"type:jsonb" json:"repair_history"`
	SparePartsReplaced StringList       `gorm:"type:jsonb" json:"spare_parts_replaced"`
	WarrantyInfo       string           `gorm:"type:text" json:"warranty_info,omitempty"`
	RentalPricing      RentalPricing    `gorm:"embedded;embeddedPrefix:rental_" json:"rental_pricing"`
	CreatedAt          time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Machine) TableName() string {
	return "machines"
}
