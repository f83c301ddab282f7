package handlers

import (
	"net/http"
	"strings"

	"github.com/adityaraj/fuelflow/internal/helpers"
	"github.com/adityaraj/fuelflow/internal/middleware"
	"github.com/adityaraj/fuelflow/internal/models"
	"github.com/adityaraj/fuelflow/internal/store"
	"github.com/adityaraj/fuelflow/internal/tokens"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PurchaseRequest struct {
	FuelTypeID    uuid.UUID `json:"fuel_type_id" binding:"required"`
	Amount        float64   `json:"amount" binding:"required,gt=0"`
	CustomerName  string    `json:"customer_name" binding:"required"`
	Phone         string    `json:"phone" binding:"required"`
	VehicleNumber string    `json:"vehicle_number"`
}

func normalizePhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return digits.String()
}

func CreatePurchase(c *gin.Context) {
	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Please fill all required fields.")
		return
	}

	phone := normalizePhone(req.Phone)
	if len(phone) != 10 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Please enter a valid 10-digit phone number.")
		return
	}

	st := middleware.GetStore(c)
	if st == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Store connection not found.")
		return
	}
	gen := middleware.GetGenerator(c)
	gateway := middleware.GetPaymentGateway(c)
	logger := middleware.GetLogger(c)

	fuelType, err := st.GetActiveFuelType(c.Request.Context(), req.FuelTypeID)
	if err != nil {
		if err == store.ErrNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Fuel type not found.")
			return
		}
		logger.Error("failed to fetch fuel type", zap.Error(err))
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving fuel type.")
		return
	}

	paymentStatus, err := gateway.Charge(c.Request.Context(), req.Amount, uuid.New())
	if err != nil {
		logger.Error("payment charge failed", zap.Error(err))
		helpers.RespondWithError(c, http.StatusInternalServerError, "Payment failed. Please try again.")
		return
	}

	quantity := tokens.CalculateQuantity(req.Amount, fuelType.Price)

	var vehicleNumber *string
	if v := strings.ToUpper(strings.TrimSpace(req.VehicleNumber)); v != "" {
		vehicleNumber = &v
	}

	order := &models.TokenOrder{
		OrderNumber:    gen.OrderNumber(),
		CustomerName:   name,
		CustomerPhone:  phone,
		VehicleNumber:  vehicleNumber,
		FuelTypeID:     fuelType.ID,
		QuantityLiters: quantity,
		Amount:         req.Amount,
		PaymentStatus:  paymentStatus,
	}
	token := &models.FuelToken{
		TokenCode:  gen.TokenCode(),
		FuelTypeID: fuelType.ID,
		Quantity:   quantity,
		Amount:     req.Amount,
		Status:     models.TokenStatusPaid,
		ExpiresAt:  tokens.ExpiryTime(gen.Now(), tokens.DefaultExpiryMinutes),
	}

	if err := st.CreatePurchase(c.Request.Context(), order, token); err != nil {
		logger.Error("failed to create purchase",
			zap.String("order_number", order.OrderNumber),
			zap.Error(err),
		)
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create purchase.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Payment successful. Your fuel token is ready.",
		"order_number": order.OrderNumber,
		"token_code":   token.TokenCode,
	})
}
