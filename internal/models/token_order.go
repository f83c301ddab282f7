package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentStatusSuccess is the sentinel written by the simulated payment flow.
// A real gateway webhook would move orders between pending/success/failed.
const PaymentStatusSuccess = "success"

type TokenOrder struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber    string    `gorm:"unique;not null" json:"order_number"`
	CustomerName   string    `gorm:"not null" json:"customer_name"`
	CustomerPhone  string    `gorm:"not null" json:"customer_phone"`
	VehicleNumber  *string   `json:"vehicle_number,omitempty"`
	FuelTypeID     uuid.UUID `gorm:"type:uuid;not null;index" json:"fuel_type_id"`
	FuelType       FuelType  `gorm:"foreignKey:FuelTypeID" json:"-"`
	QuantityLiters float64   `gorm:"not null" json:"quantity_liters"`
	Amount         float64   `gorm:"not null" json:"amount"`
	PaymentStatus  string    `gorm:"not null" json:"payment_status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (order *TokenOrder) BeforeCreate(tx *gorm.DB) (err error) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	return
}
