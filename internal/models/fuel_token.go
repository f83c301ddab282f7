package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TokenStatus string

const (
	TokenStatusPaid      TokenStatus = "paid"
	TokenStatusUsed      TokenStatus = "used"
	TokenStatusExpired   TokenStatus = "expired"
	TokenStatusCancelled TokenStatus = "cancelled"
)

type FuelToken struct {
	ID         uuid.UUID   `gorm:"type:uuid;primary_key" json:"id"`
	OrderID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"order_id"`
	Order      TokenOrder  `gorm:"foreignKey:OrderID" json:"-"`
	TokenCode  string      `gorm:"unique;not null;index" json:"token_code"`
	FuelTypeID uuid.UUID   `gorm:"type:uuid;not null;index" json:"fuel_type_id"`
	FuelType   FuelType    `gorm:"foreignKey:FuelTypeID" json:"-"`
	Quantity   float64     `gorm:"not null" json:"quantity"`
	Amount     float64     `gorm:"not null" json:"amount"`
	Status     TokenStatus `gorm:"type:varchar(16);not null;default:'paid'" json:"status"`
	ExpiresAt  time.Time   `gorm:"not null" json:"expires_at"`
	UsedAt     *time.Time  `json:"used_at,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func (token *FuelToken) BeforeCreate(tx *gorm.DB) (err error) {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	return
}
