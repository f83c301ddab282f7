// Package store is the persistence client for orders, tokens and the fuel
// type catalog.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/adityaraj/fuelflow/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row. Callers map it to a
// distinct not-found display state; any other error is a persistence failure.
var ErrNotFound = errors.New("record not found")

type Store interface {
	ListActiveFuelTypes(ctx context.Context) ([]models.FuelType, error)
	GetActiveFuelType(ctx context.Context, id uuid.UUID) (*models.FuelType, error)
	// CreatePurchase inserts the order and its token in one transaction.
	// Either both rows land or neither does; no orphaned orders.
	CreatePurchase(ctx context.Context, order *models.TokenOrder, token *models.FuelToken) error
	// GetTokenByCode returns the token with FuelType and Order populated.
	GetTokenByCode(ctx context.Context, code string) (*models.FuelToken, error)
	// ExpireOverdueTokens persists status "expired" on paid tokens whose
	// deadline has passed and reports how many rows changed.
	ExpireOverdueTokens(ctx context.Context, now time.Time) (int64, error)
}

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) ListActiveFuelTypes(ctx context.Context) ([]models.FuelType, error) {
	var fuelTypes []models.FuelType
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("price").Find(&fuelTypes).Error; err != nil {
		return nil, err
	}
	return fuelTypes, nil
}

func (s *gormStore) GetActiveFuelType(ctx context.Context, id uuid.UUID) (*models.FuelType, error) {
	var fuelType models.FuelType
	err := s.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&fuelType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &fuelType, nil
}

func (s *gormStore) CreatePurchase(ctx context.Context, order *models.TokenOrder, token *models.FuelToken) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		token.OrderID = order.ID
		return tx.Create(token).Error
	})
}

func (s *gormStore) GetTokenByCode(ctx context.Context, code string) (*models.FuelToken, error) {
	var token models.FuelToken
	err := s.db.WithContext(ctx).
		Preload("FuelType").
		Preload("Order").
		Where("token_code = ?", code).
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (s *gormStore) ExpireOverdueTokens(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&models.FuelToken{}).
		Where("status = ? AND expires_at <= ?", models.TokenStatusPaid, now).
		Update("status", models.TokenStatusExpired)
	return result.RowsAffected, result.Error
}
