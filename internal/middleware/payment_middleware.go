package middleware

import (
	"github.com/adityaraj/fuelflow/internal/payment"
	"github.com/gin-gonic/gin"
)

func PaymentMiddleware(gateway payment.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("payment_gateway", gateway)
		c.Next()
	}
}

func GetPaymentGateway(c *gin.Context) payment.Gateway {
	gateway, exists := c.Get("payment_gateway")
	if !exists {
		return nil
	}
	return gateway.(payment.Gateway)
}
