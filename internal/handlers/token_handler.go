package handlers

import (
	"encoding/base64"
	"net/http"

	"github.com/adityaraj/fuelflow/internal/helpers"
	"github.com/adityaraj/fuelflow/internal/middleware"
	"github.com/adityaraj/fuelflow/internal/models"
	"github.com/adityaraj/fuelflow/internal/store"
	"github.com/adityaraj/fuelflow/internal/tokens"
	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const qrSize = 280

func GetToken(c *gin.Context) {
	st := middleware.GetStore(c)
	if st == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Store connection not found.")
		return
	}
	logger := middleware.GetLogger(c)

	token, err := st.GetTokenByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if err == store.ErrNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Token not found.")
			return
		}
		logger.Error("failed to fetch token", zap.Error(err))
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving token.")
		return
	}

	now := middleware.GetGenerator(c).Now()
	effectiveStatus := tokens.EffectiveStatus(token, now)

	resp := gin.H{
		"token_code":       token.TokenCode,
		"status":           token.Status,
		"effective_status": effectiveStatus,
		"quantity":         token.Quantity,
		"quantity_display": helpers.FormatQuantity(token.Quantity),
		"amount":           token.Amount,
		"amount_display":   helpers.FormatCurrency(token.Amount),
		"expires_at":       token.ExpiresAt,
		"created_at":       token.CreatedAt,
		"fuel_type": gin.H{
			"code":  token.FuelType.Code,
			"name":  token.FuelType.Name,
			"price": token.FuelType.Price,
		},
		"order": gin.H{
			"order_number":   token.Order.OrderNumber,
			"customer_name":  token.Order.CustomerName,
			"customer_phone": token.Order.CustomerPhone,
			"vehicle_number": token.Order.VehicleNumber,
			"payment_status": token.Order.PaymentStatus,
		},
	}

	// Countdown is recomputed on every read; the stored status may still say
	// paid after the deadline.
	if token.Status == models.TokenStatusPaid {
		resp["time_remaining"] = tokens.TimeRemaining(now, token.ExpiresAt)
	}
	if token.UsedAt != nil {
		resp["used_at"] = token.UsedAt
		resp["used_at_display"] = helpers.FormatDateTime(*token.UsedAt)
	}

	// QR only while redeemable. A render failure degrades the response, it
	// does not fail it.
	if effectiveStatus == models.TokenStatusPaid {
		png, err := qrcode.Encode(token.TokenCode, qrcode.Medium, qrSize)
		if err != nil {
			logger.Error("failed to generate QR code",
				zap.String("token_code", token.TokenCode),
				zap.Error(err),
			)
		} else {
			resp["qr"] = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
		}
	}

	c.JSON(http.StatusOK, resp)
}

func GetTokenQR(c *gin.Context) {
	st := middleware.GetStore(c)
	if st == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Store connection not found.")
		return
	}
	logger := middleware.GetLogger(c)

	token, err := st.GetTokenByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if err == store.ErrNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Token not found.")
			return
		}
		logger.Error("failed to fetch token", zap.Error(err))
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving token.")
		return
	}

	now := middleware.GetGenerator(c).Now()
	if tokens.EffectiveStatus(token, now) != models.TokenStatusPaid {
		helpers.RespondWithError(c, http.StatusGone, "Token is no longer active.")
		return
	}

	png, err := qrcode.Encode(token.TokenCode, qrcode.Medium, qrSize)
	if err != nil {
		logger.Error("failed to generate QR code",
			zap.String("token_code", token.TokenCode),
			zap.Error(err),
		)
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate QR code.")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
