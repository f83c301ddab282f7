package handlers

import (
	"net/http"

	"github.com/adityaraj/fuelflow/internal/helpers"
	"github.com/adityaraj/fuelflow/internal/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ListFuelTypes(c *gin.Context) {
	st := middleware.GetStore(c)
	if st == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Store connection not found.")
		return
	}

	fuelTypes, err := st.ListActiveFuelTypes(c.Request.Context())
	if err != nil {
		middleware.GetLogger(c).Error("failed to list fuel types", zap.Error(err))
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving fuel types.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fuel_types": fuelTypes,
	})
}
