package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FuelType struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Code      string    `gorm:"unique;not null" json:"code"`
	Name      string    `gorm:"not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (fuelType *FuelType) BeforeCreate(tx *gorm.DB) (err error) {
	if fuelType.ID == uuid.Nil {
		fuelType.ID = uuid.New()
	}
	return
}
