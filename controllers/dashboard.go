package controllers

import (
	"net/http"

	"crm-backend/config"
	"crm-backend/models"
	"crm-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardProps struct {
	CustomerCount int64 `json:"customerCount"`
	ContactCount  int64 `json:"contactCount"`
}

// GetDashboard recomputes the aggregate counts on every request.
func GetDashboard(c *gin.Context) {
	var props DashboardProps

	if err := config.DB.Model(&models.Customer{}).Count(&props.CustomerCount).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if err := config.DB.Model(&models.Contact{}).Count(&props.ContactCount).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	utils.RenderPage(c, "Dashboard", props)
}
