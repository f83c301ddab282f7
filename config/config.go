package config

import (
	"fmt"
	"os"

	"github.com/adityaraj/fuelflow/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

// LoadConfig reads the database connection parameters. Missing parameters are
// a startup failure, not something to discover on the first request.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
	}
	if cfg.DBPort == "" {
		cfg.DBPort = "5432"
	}

	required := map[string]string{
		"DB_HOST": cfg.DBHost,
		"DB_USER": cfg.DBUser,
		"DB_NAME": cfg.DBName,
	}
	for name, value := range required {
		if value == "" {
			return nil, fmt.Errorf("missing required environment variable %s", name)
		}
	}

	return cfg, nil
}

func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := enableUUIDExtension(db); err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&models.FuelType{}, &models.TokenOrder{}, &models.FuelToken{})
	if err != nil {
		return nil, err
	}

	seedFuelTypes(db)

	return db, nil
}

func seedFuelTypes(db *gorm.DB) {
	fuelTypes := []models.FuelType{
		{Code: "PET", Name: "Petrol", Price: 96.72, IsActive: true},
		{Code: "DSL", Name: "Diesel", Price: 89.62, IsActive: true},
		{Code: "XPP", Name: "Power Petrol", Price: 104.40, IsActive: true},
	}

	for _, fuelType := range fuelTypes {
		var existing models.FuelType
		result := db.Where("code = ?", fuelType.Code).First(&existing)
		if result.Error != nil {
			db.Create(&fuelType)
		}
	}
}
